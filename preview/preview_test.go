// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maruel/ansi256"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

var (
	white = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	black = color.NRGBA{0, 0, 0, 0xFF}
)

func TestDraw(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{W: 3, H: 2, On: white, Off: black, Out: &buf})
	if d.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("Bounds() = %s", d.Bounds())
	}
	if err := d.Draw(image.Rect(1, 0, 2, 1), &image.Uniform{C: image1bit.On}, image.Point{}); err != nil {
		t.Fatal(err)
	}
	on := ansi256.Default.Block(white)
	off := ansi256.Default.Block(black)
	want := "\033[0m" + off + on + off + "\033[0m\n" +
		"\033[0m" + off + off + off + "\033[0m\n"
	if diff := cmp.Diff(buf.String(), want); diff != "" {
		t.Errorf("Draw() difference (-got +want):\n%s", diff)
	}

	// The second frame is drawn over the first one.
	buf.Reset()
	if err := d.Draw(d.Bounds(), &image.Uniform{C: image1bit.Off}, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "\033[2A\r") {
		t.Errorf("Draw() = %q, want a cursor up prefix", buf.String())
	}
	if strings.Contains(buf.String(), on) {
		t.Error("pixel still lit")
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{W: 2, H: 8, On: white, Off: black, Out: &buf})
	// LSB on top.
	if _, err := d.Write([]byte{0x01, 0x80}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines", len(lines))
	}
	on := ansi256.Default.Block(white)
	off := ansi256.Default.Block(black)
	if want := "\033[0m" + on + off + "\033[0m"; lines[0] != want {
		t.Errorf("first line = %q, want %q", lines[0], want)
	}
	if want := "\033[0m" + off + on + "\033[0m"; lines[7] != want {
		t.Errorf("last line = %q, want %q", lines[7], want)
	}
	if _, err := d.Write([]byte{0}); err == nil {
		t.Error("short Write() succeeded")
	}
}

func TestHalt(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{W: 8, H: 8, Out: &buf})
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\033[0m\n" {
		t.Errorf("Halt() = %q", buf.String())
	}
	if s := d.String(); s != "Preview{(8,8)}" {
		t.Errorf("String() = %q", s)
	}
}
