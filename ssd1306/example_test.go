// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306_test

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"

	"github.com/GermanBionicSystems/pirateoled/buspirate"
	"github.com/GermanBionicSystems/pirateoled/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
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

	opts := ssd1306.DefaultOpts
	dev, err := ssd1306.New(bus, &opts)
	if err != nil {
		log.Fatalf("failed to initialize display: %s", err.Error())
	}
	fmt.Printf("device=%s\n", dev.String())
	if err := dev.Init(); err != nil {
		log.Fatal(err)
	}
	if err := dev.Clear(); err != nil {
		log.Fatal(err)
	}
	if _, _, err := dev.Println("Hello from periph!", false); err != nil {
		log.Fatal(err)
	}

	fb := ssd1306.NewFramebuffer(dev)
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	colors := []color.RGBA{white, black}

	img := image1bit.NewVerticalLSB(fb.Bounds())
	rectNum := 0
	// Draw some nested rectangles
	for w, h := opts.W, opts.H; w > 0 && h > 0; w, h = w-4, h-4 {
		rect := image.Rect(0, 0, w, h)
		draw.Draw(img, rect.Add(image.Point{X: rectNum * 2, Y: rectNum * 2}), &image.Uniform{colors[rectNum%2]}, image.Point{}, draw.Src)
		rectNum++
	}
	if err := fb.Draw(fb.Bounds(), img, image.Point{}); err != nil {
		log.Fatal(err)
	}

	// Single pixels are pushed on Sync.
	fb.SetPixel(0, 0, image1bit.On)
	if err := fb.Sync(ssd1306.DefaultBlockSize); err != nil {
		log.Fatal(err)
	}
	_ = dev.Halt()
}
