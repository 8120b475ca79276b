// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package buspirate

import (
	"go.bug.st/serial"
)

// DefaultBaud is the console speed of a Bus Pirate v3 out of the box.
const DefaultBaud = 115200

// Open opens the serial port at path with 8N1 framing and returns a Dev
// writing to it.
//
// The port stays open until Close is called.
func Open(path string, baud int, opts *Opts) (*Dev, error) {
	if baud == 0 {
		baud = DefaultBaud
	}
	p, err := serial.Open(path, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, &LinkError{Op: "open", Err: err}
	}
	return New(&port{Port: p, path: path}, opts), nil
}

// Ports returns the names of the serial ports found on the host.
func Ports() ([]string, error) {
	return serial.GetPortsList()
}

// port names the serial port in Dev.String().
type port struct {
	serial.Port
	path string
}

func (p *port) String() string {
	return p.path
}
