// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/GermanBionicSystems/pirateoled/buspirate"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// DefaultBlockSize is the number of display memory bytes sent per I²C
// transaction by Sync when the caller has no preference.
const DefaultBlockSize = 16

var errBlockSize = errors.New("ssd1306: block size must be at least 1")

// Framebuffer is a local copy of the display memory.
//
// Pixels are edited in memory and pushed to the device with Sync. The buffer
// uses the GDDRAM layout: one byte per 8 pixel high column of a page, least
// significant bit on top.
type Framebuffer struct {
	d         *Dev
	img       *image1bit.VerticalLSB
	blockSize int
}

// NewFramebuffer returns a Framebuffer sized for d, with every pixel off.
//
// Draw and Fill send DefaultBlockSize bytes per transaction until
// SetBlockSize is called.
func NewFramebuffer(d *Dev) *Framebuffer {
	return &Framebuffer{d: d, img: image1bit.NewVerticalLSB(d.Bounds()), blockSize: DefaultBlockSize}
}

// BlockSize returns the number of bytes per transaction used by Draw and
// Fill.
func (f *Framebuffer) BlockSize() int {
	return f.blockSize
}

// SetBlockSize changes the number of bytes per transaction used by Draw and
// Fill.
func (f *Framebuffer) SetBlockSize(n int) error {
	if n < 1 {
		return errBlockSize
	}
	f.blockSize = n
	return nil
}

func (f *Framebuffer) String() string {
	return fmt.Sprintf("ssd1306.Framebuffer{%s}", f.d)
}

// Dev returns the controller the buffer is synchronized to.
func (f *Framebuffer) Dev() *Dev {
	return f.d
}

// Image returns the backing image. Changes to it are sent on the next Sync.
func (f *Framebuffer) Image() *image1bit.VerticalLSB {
	return f.img
}

// Buffer returns a copy of the buffer content.
func (f *Framebuffer) Buffer() []byte {
	return append([]byte(nil), f.img.Pix...)
}

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by image1bit.Bit.
func (f *Framebuffer) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (f *Framebuffer) Bounds() image.Rectangle {
	return f.d.Bounds()
}

// Draw implements display.Drawer.
//
// src is converted to one bit per pixel into the buffer, which is then sent
// to the device in BlockSize chunks.
func (f *Framebuffer) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(f.img, r, src, sp, draw.Src)
	return f.Sync(f.blockSize)
}

// Halt implements conn.Resource. It turns off the display.
func (f *Framebuffer) Halt() error {
	return f.d.Halt()
}

// SetPixel sets the pixel at x, y in the buffer. It does not talk to the
// device.
//
// Coordinates wrap around the display in both directions.
func (f *Framebuffer) SetPixel(x, y int, v image1bit.Bit) {
	i, mask := f.offset(x, y)
	if v {
		f.img.Pix[i] |= mask
	} else {
		f.img.Pix[i] &^= mask
	}
}

// Pixel returns the value of the pixel at x, y in the buffer, with the same
// wrap around as SetPixel.
func (f *Framebuffer) Pixel(x, y int) image1bit.Bit {
	i, mask := f.offset(x, y)
	return f.img.Pix[i]&mask != 0
}

// offset returns the byte index and the bit mask of the pixel at x, y.
func (f *Framebuffer) offset(x, y int) (int, byte) {
	w := f.d.rect.Dx()
	x = mod(x, w)
	y = mod(y, f.d.rect.Dy())
	return (y/8)*w + x, 1 << uint(y&7)
}

// Clear turns off every pixel, both in the buffer and on the device.
func (f *Framebuffer) Clear() error {
	clear(f.img.Pix)
	return f.d.Clear()
}

// Fill turns on every pixel, both in the buffer and on the device.
func (f *Framebuffer) Fill() error {
	for i := range f.img.Pix {
		f.img.Pix[i] = 0xFF
	}
	return f.Sync(f.blockSize)
}

// Sync sends the whole buffer to the device, blockSize bytes per
// transaction.
//
// The last transaction is shorter when blockSize does not divide the buffer
// size.
func (f *Framebuffer) Sync(blockSize int) error {
	if blockSize < 1 {
		return errBlockSize
	}
	if err := f.d.SetColumnStartEnd(0, byte(f.d.rect.Dx()-1)); err != nil {
		return err
	}
	if err := f.d.SetPageStartEnd(0, byte(f.d.rows-1)); err != nil {
		return err
	}
	t := make([]buspirate.Token, 0, blockSize+1)
	for pix := f.img.Pix; len(pix) != 0; {
		n := min(blockSize, len(pix))
		t = append(t[:0], buspirate.Byte(i2cData))
		t = append(t, buspirate.Bytes(pix[:n]...)...)
		if err := f.d.l.Write(t...); err != nil {
			return err
		}
		pix = pix[n:]
	}
	return nil
}

var _ display.Drawer = &Framebuffer{}
