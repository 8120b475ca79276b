// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306 controls a monochrome OLED display via a SSD1306
// controller reached through a Bus Pirate I²C bridge.
//
// Dev wraps the controller command set: initialization, addressing, contrast,
// hardware scrolling and text rendering with the 8x8 font of package font8x8.
// Each command byte is sent in its own I²C transaction, which keeps every
// console line short enough for the bridge.
//
// Framebuffer keeps a local copy of the display memory, in the GDDRAM byte
// layout, and pushes it to the device in fixed size blocks. It implements
// display.Drawer so any image.Image can be drawn on the panel.
//
// The controller is write only: nothing is ever read back from the device.
//
// # Datasheets
//
// Product page:
//
// http://www.solomon-systech.com/en/product/display-ic/oled-driver-controller/ssd1306/
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
