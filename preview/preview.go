// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package preview implements a monochrome display.Drawer that outputs to
// the terminal using ANSI color codes.
//
// It mirrors what is sent to an OLED panel, which is handy when the panel
// is not wired yet or sits out of sight.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"strconv"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Opts represents the options available for this display.
type Opts struct {
	W, H    int
	Palette *ansi256.Palette
	// On and Off are the colors of lit and dark pixels. They default to a
	// light blue and black.
	On, Off color.NRGBA
	// Out defaults to stdout.
	Out io.Writer

	_ struct{}
}

// Dev is an OLED panel emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	on, off string

	img    *image1bit.VerticalLSB
	frames int
	buf    bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Out
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	on, off := opts.On, opts.Off
	if on == (color.NRGBA{}) {
		on = color.NRGBA{0x80, 0xD0, 0xFF, 0xFF}
	}
	if off == (color.NRGBA{}) {
		off = color.NRGBA{0, 0, 0, 0xFF}
	}
	return &Dev{
		w:   w,
		on:  p.Block(on),
		off: p.Block(off),
		img: image1bit.NewVerticalLSB(image.Rect(0, 0, opts.W, opts.H)),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("Preview{%s}", d.img.Rect.Max)
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the console is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.img.Rect
}

// Draw implements display.Drawer.
//
// The whole panel is redrawn in place on every call.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(d.img, r, src, sp, draw.Src)
	return d.refresh()
}

// Write accepts display memory in the SSD1306 GDDRAM layout and writes it
// to the console.
func (d *Dev) Write(pix []byte) (int, error) {
	if len(pix) != len(d.img.Pix) {
		return 0, fmt.Errorf("preview: got %d bytes, want %d", len(pix), len(d.img.Pix))
	}
	copy(d.img.Pix, pix)
	return len(pix), d.refresh()
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	h := d.img.Rect.Dy()
	if d.frames != 0 {
		// Move back to the top left of the previous frame.
		_, _ = d.buf.WriteString("\033[")
		_, _ = d.buf.WriteString(strconv.Itoa(h))
		_, _ = d.buf.WriteString("A\r")
	}
	for y := 0; y < h; y++ {
		_, _ = d.buf.WriteString("\033[0m")
		for x := 0; x < d.img.Rect.Dx(); x++ {
			if d.img.BitAt(x, y) {
				_, _ = d.buf.WriteString(d.on)
			} else {
				_, _ = d.buf.WriteString(d.off)
			}
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.frames++
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
