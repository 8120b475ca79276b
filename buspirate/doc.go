// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package buspirate drives a Bus Pirate v3 through its interactive text
// console, the one exposed on the USB serial port.
//
// The console accepts ASCII lines terminated by a carriage return. This
// package never parses the replies: each command is written in one piece and
// followed by a fixed settle delay, which is the time the bridge needs to
// process it before it accepts the next line.
//
// In I²C mode a write transaction is a single line such as
//
//	[0x78 0x00 0xAF ]
//
// where '[' and ']' are the start and stop conditions and the first byte is
// the device address. Elements can also be passed verbatim, which permits
// using the bridge's repeat syntax (0x00:1024) to send long runs of the same
// byte in a few characters.
//
// I2C implements periph.io/x/conn/v3/i2c.Bus so regular periph device
// drivers can be used through the bridge, as long as they only write.
//
// # Datasheets
//
// http://dangerousprototypes.com/docs/Bus_Pirate_menu_options_guide
//
// http://dangerousprototypes.com/docs/I2C
package buspirate
