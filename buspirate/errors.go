// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package buspirate

import (
	"errors"
)

var (
	ErrReadUnsupported = errors.New("buspirate: reads are not supported by the console protocol")
	ErrAddressRange    = errors.New("buspirate: only 7-bit addresses are supported")
	ErrSpeedRange      = errors.New("buspirate: bus speed is below the slowest supported speed")
)

// LinkError is returned when the serial link to the bridge fails.
//
// The link is assumed reliable once open, so a LinkError means the device was
// disconnected or misconfigured. Nothing is retried and a command that failed
// mid-write must be considered lost.
type LinkError struct {
	// Op is the failed operation: "open", "write" or "close".
	Op  string
	Err error
}

func (e *LinkError) Error() string {
	return "buspirate: " + e.Op + ": " + e.Err.Error()
}

func (e *LinkError) Unwrap() error {
	return e.Err
}
