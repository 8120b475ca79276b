// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview_test

import (
	"image"
	"log"

	"github.com/GermanBionicSystems/pirateoled/preview"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func Example() {
	d := preview.New(&preview.Opts{W: 128, H: 64})
	defer d.Halt()
	img := image1bit.NewVerticalLSB(d.Bounds())
	for x := 0; x < 128; x++ {
		img.SetBit(x, x/2, image1bit.On)
	}
	if err := d.Draw(d.Bounds(), img, image.Point{}); err != nil {
		log.Fatal(err)
	}
}
