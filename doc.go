// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pirateoled is a container for the packages driving an SSD1306
// OLED panel through a Bus Pirate used as a USB to I²C bridge.
//
// buspirate speaks the bridge text console, ssd1306 implements the display
// controller on top of it, and preview mirrors the panel in a terminal. The
// pirateoled command ties them together.
package pirateoled
