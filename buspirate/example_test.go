// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package buspirate_test

import (
	"log"

	"github.com/GermanBionicSystems/pirateoled/buspirate"
	"periph.io/x/conn/v3/i2c"
)

func Example() {
	bp, err := buspirate.Open("/dev/ttyUSB0", buspirate.DefaultBaud, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer bp.Close()

	bus := buspirate.NewI2C(bp, nil)
	if err := bus.Init(); err != nil {
		log.Fatal(err)
	}

	// Console level transaction: turn an SSD1306 on.
	if err := bus.Write(buspirate.Byte(0x00), buspirate.Byte(0xAF)); err != nil {
		log.Fatal(err)
	}

	// The same through the periph.io I²C abstraction, with a 7-bit address.
	d := i2c.Dev{Bus: bus, Addr: 0x3C}
	if _, err := d.Write([]byte{0x00, 0xAE}); err != nil {
		log.Fatal(err)
	}
}
