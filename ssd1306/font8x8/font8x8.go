// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package font8x8 contains a fixed 8x8 pixel bitmap font covering the 256
// byte values of code page 437.
//
// Each glyph exists in two packings. Horizontal glyphs hold one byte per
// pixel column with the least significant bit at the top, which is what the
// SSD1306 expects when streaming into a page. Vertical glyphs hold one byte
// per pixel row, for displays addressed the other way around.
//
// The tables are read-only; accessors return copies.
package font8x8

// Glyph is one 8x8 character bitmap.
type Glyph [8]byte

// Size is the number of glyphs in each table.
const Size = 256

// Horizontal returns the column packed glyph for c.
func Horizontal(c byte) Glyph {
	return horizontal[c]
}

// Vertical returns the row packed glyph for c.
func Vertical(c byte) Glyph {
	return vertical[c]
}

// Lookup returns the glyph for c from the vertical table when vertical is
// true and from the horizontal table otherwise.
func Lookup(c byte, vertical bool) Glyph {
	if vertical {
		return Vertical(c)
	}
	return Horizontal(c)
}
