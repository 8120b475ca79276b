// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// renderDemo draws title in a rounded frame with a row of dots and a small
// bitmap font caption. White is lit.
func renderDemo(w, h int, title string) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	dc := gg.NewContextForRGBA(img)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{Size: float64(h) / 4})
	defer face.Close()
	dc.SetFontFace(face)

	_, th := dc.MeasureString(title)
	padding := 4.0
	dc.DrawRoundedRectangle(1, 1, float64(w)-2, th+padding*3, 4)
	dc.Stroke()
	dc.DrawStringAnchored(title, float64(w)/2, padding+th/2+1, 0.5, 0.5)

	for i := 0; i < w/16; i++ {
		dc.DrawCircle(float64(8+16*i), th+padding*5, 3)
	}
	dc.Fill()

	caption := basicfont.Face7x13
	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: caption,
		Dot:  fixed.P(2, h-1-caption.Descent),
	}
	d.DrawString("via Bus Pirate")
	return img, nil
}
