// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"bytes"
	"image"
	"testing"

	"github.com/GermanBionicSystems/pirateoled/buspirate"
	"github.com/google/go-cmp/cmp"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func TestSetPixel(t *testing.T) {
	d, l, _ := newTestDev(t, nil)
	f := NewFramebuffer(d)
	if len(f.Buffer()) != 128*64/8 {
		t.Fatalf("buffer is %d bytes", len(f.Buffer()))
	}
	f.Image().Pix[130] = 0xA5
	f.SetPixel(2, 9, image1bit.On)
	if got := f.Buffer()[130]; got != 0xA7 {
		t.Errorf("SetPixel(On) byte = %#x, want 0xA7", got)
	}
	if !f.Pixel(2, 9) {
		t.Error("Pixel(2, 9) is off")
	}
	f.SetPixel(2, 9, image1bit.Off)
	if got := f.Buffer()[130]; got != 0xA5 {
		t.Errorf("SetPixel(Off) byte = %#x, want 0xA5", got)
	}
	if f.Pixel(2, 9) {
		t.Error("Pixel(2, 9) is on")
	}
	if len(l.ops) != 0 {
		t.Errorf("SetPixel sent %d transactions", len(l.ops))
	}
}

func TestSetPixelWrapsPages(t *testing.T) {
	d, _, _ := newTestDev(t, nil)
	f := NewFramebuffer(d)
	for _, tc := range []struct {
		x, y   int
		offset int
		bit    byte
	}{
		{x: 0, y: 63, offset: 7 * 128, bit: 0x80},
		{x: 130, y: 70, offset: 0*128 + 2, bit: 0x40},
		{x: -1, y: -1, offset: 7*128 + 127, bit: 0x80},
		{x: 5, y: 64 * 3, offset: 5, bit: 0x01},
	} {
		clear(f.Image().Pix)
		f.SetPixel(tc.x, tc.y, image1bit.On)
		want := make([]byte, 1024)
		want[tc.offset] = tc.bit
		if diff := cmp.Diff(f.Buffer(), want); diff != "" {
			t.Errorf("SetPixel(%d, %d) difference (-got +want):\n%s", tc.x, tc.y, diff)
		}
	}
}

func TestFramebufferClear(t *testing.T) {
	d, l, _ := newTestDev(t, nil)
	f := NewFramebuffer(d)
	f.SetPixel(10, 10, image1bit.On)
	if err := f.Clear(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(f.Buffer(), make([]byte, 1024)) {
		t.Error("buffer not cleared")
	}
	want := [][]buspirate.Token{{buspirate.Byte(0x40), buspirate.Repeat(0x00, 1024)}}
	if diff := cmp.Diff(l.ops, want); diff != "" {
		t.Errorf("Clear() difference (-got +want):\n%s", diff)
	}
}

func TestFramebufferFill(t *testing.T) {
	d, l, _ := newTestDev(t, nil)
	f := NewFramebuffer(d)
	if err := f.Fill(); err != nil {
		t.Fatal(err)
	}
	full := bytes.Repeat([]byte{0xFF}, 1024)
	if !bytes.Equal(f.Buffer(), full) {
		t.Error("buffer not filled")
	}
	if got := bytes.Join(l.data(t), nil); !bytes.Equal(got, full) {
		t.Errorf("Fill() sent %d bytes", len(got))
	}
}

func TestSync(t *testing.T) {
	d, l, _ := newTestDev(t, nil)
	f := NewFramebuffer(d)
	for i := range f.Image().Pix {
		f.Image().Pix[i] = byte(i * 7)
	}
	if err := f.Sync(DefaultBlockSize); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(l.commands(t), []byte{0x21, 0x00, 0x7F, 0x22, 0x00, 0x07}); diff != "" {
		t.Errorf("Sync() commands difference (-got +want):\n%s", diff)
	}
	data := l.data(t)
	if len(data) != 64 {
		t.Fatalf("got %d data transactions, want 64", len(data))
	}
	for i, p := range data {
		if len(p) != 16 {
			t.Errorf("transaction %d has %d bytes", i, len(p))
		}
	}
	if diff := cmp.Diff(bytes.Join(data, nil), f.Buffer()); diff != "" {
		t.Errorf("Sync() data difference (-got +want):\n%s", diff)
	}
}

func TestSyncShortChunk(t *testing.T) {
	d, l, _ := newTestDev(t, &Opts{W: 128, H: 32})
	f := NewFramebuffer(d)
	f.SetPixel(127, 31, image1bit.On)
	if err := f.Sync(100); err != nil {
		t.Fatal(err)
	}
	data := l.data(t)
	var sizes []int
	for _, p := range data {
		sizes = append(sizes, len(p))
	}
	if diff := cmp.Diff(sizes, []int{100, 100, 100, 100, 100, 12}); diff != "" {
		t.Errorf("chunk sizes difference (-got +want):\n%s", diff)
	}
	if got := data[5][11]; got != 0x80 {
		t.Errorf("last byte = %#x, want 0x80", got)
	}
	if diff := cmp.Diff(l.commands(t), []byte{0x21, 0x00, 0x7F, 0x22, 0x00, 0x03}); diff != "" {
		t.Errorf("Sync() commands difference (-got +want):\n%s", diff)
	}
}

func TestSyncBlockSize(t *testing.T) {
	d, l, _ := newTestDev(t, nil)
	f := NewFramebuffer(d)
	if err := f.Sync(0); err == nil {
		t.Fatal("Sync(0) succeeded")
	}
	if len(l.ops) != 0 {
		t.Errorf("sent %d transactions", len(l.ops))
	}
}

func TestDraw(t *testing.T) {
	d, l, _ := newTestDev(t, nil)
	f := NewFramebuffer(d)
	if f.ColorModel() != image1bit.BitModel {
		t.Error("unexpected color model")
	}
	if f.Bounds() != image.Rect(0, 0, 128, 64) {
		t.Errorf("Bounds() = %s", f.Bounds())
	}
	if err := f.Draw(image.Rect(0, 8, 2, 16), &image.Uniform{C: image1bit.On}, image.Point{}); err != nil {
		t.Fatal(err)
	}
	want := make([]byte, 1024)
	want[128] = 0xFF
	want[129] = 0xFF
	if diff := cmp.Diff(f.Buffer(), want); diff != "" {
		t.Errorf("Draw() buffer difference (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(bytes.Join(l.data(t), nil), want); diff != "" {
		t.Errorf("Draw() data difference (-got +want):\n%s", diff)
	}
	if f.Dev() != d {
		t.Error("Dev() mismatch")
	}
}

func TestDrawBlockSize(t *testing.T) {
	d, l, _ := newTestDev(t, nil)
	f := NewFramebuffer(d)
	if f.BlockSize() != DefaultBlockSize {
		t.Fatalf("BlockSize() = %d", f.BlockSize())
	}
	if err := f.SetBlockSize(0); err == nil {
		t.Fatal("SetBlockSize(0) succeeded")
	}
	if err := f.SetBlockSize(256); err != nil {
		t.Fatal(err)
	}
	if err := f.Draw(f.Bounds(), &image.Uniform{C: image1bit.On}, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if err := f.Fill(); err != nil {
		t.Fatal(err)
	}
	var sizes []int
	for _, p := range l.data(t) {
		sizes = append(sizes, len(p))
	}
	if diff := cmp.Diff(sizes, []int{256, 256, 256, 256, 256, 256, 256, 256}); diff != "" {
		t.Errorf("chunk sizes difference (-got +want):\n%s", diff)
	}
}
