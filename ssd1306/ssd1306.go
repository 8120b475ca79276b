// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// Command reference: https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf#page=28

import (
	"fmt"
	"image"
	"time"

	"github.com/GermanBionicSystems/pirateoled/buspirate"
	"github.com/GermanBionicSystems/pirateoled/ssd1306/font8x8"
	"periph.io/x/conn/v3"
)

const (
	_CHARGEPUMP          = 0x8D
	_COLUMNADDR          = 0x21
	_COMSCANINC          = 0xC0
	_DEACTIVATE_SCROLL   = 0x2E
	_DISPLAYALLON_RESUME = 0xA4
	_DISPLAYOFF          = 0xAE
	_INVERTDISPLAY       = 0xA7
	_MEMORYMODE          = 0x20
	_NORMALDISPLAY       = 0xA6
	_PAGEADDR            = 0x22
	_PAGESTARTADDRESS    = 0xB0
	_SEGREMAP            = 0xA0
	_SETCOMPINS          = 0xDA
	_SETCONTRAST         = 0x81
	_SETDISPLAYCLOCKDIV  = 0xD5
	_SETDISPLAYOFFSET    = 0xD3
	_SETHIGHCOLUMN       = 0x10
	_SETLOWCOLUMN        = 0x00
	_SETMULTIPLEX        = 0xA8
	_SETPRECHARGE        = 0xD9
	_SETSTARTLINE        = 0x40
	_SETVCOMDETECT       = 0xDB
)

const (
	i2cCmd  = 0x00 // I²C transaction has stream of command bytes
	i2cData = 0x40 // I²C transaction has stream of data bytes
)

// AddressingMode is the GDDRAM addressing mode.
type AddressingMode byte

// Memory addressing modes, as sent with SetMemoryAddressingMode.
//
// The device only decodes the two low bits, so MemAddrModePage selects the
// horizontal mode, in which the write pointer wraps from the end of a page to
// the start of the next one. Print and Framebuffer.Sync rely on that.
const (
	MemAddrModePage AddressingMode = 0x10
	MemAddrModeHorz AddressingMode = 0x00
	MemAddrModeVert AddressingMode = 0x01
)

// ClearSettle is the delay observed after Clear and Fill, while the bridge
// expands and clocks out a full frame.
const ClearSettle = 500 * time.Millisecond

// FrameRate determines scrolling speed.
type FrameRate byte

// Possible frame rates. The value determines the number of refreshes between
// movement. The lower value, the higher speed.
const (
	FrameRate2   FrameRate = 7
	FrameRate3   FrameRate = 4
	FrameRate4   FrameRate = 5
	FrameRate5   FrameRate = 0
	FrameRate25  FrameRate = 6
	FrameRate64  FrameRate = 1
	FrameRate128 FrameRate = 2
	FrameRate256 FrameRate = 3
)

// Orientation is used for scrolling.
type Orientation byte

// Possible orientations for scrolling.
const (
	Left    Orientation = 0x27
	Right   Orientation = 0x26
	UpRight Orientation = 0x29
	UpLeft  Orientation = 0x2A
)

// Link is the I²C transport the controller writes to. *buspirate.I2C
// implements it.
type Link interface {
	Write(payload ...buspirate.Token) error
	WriteTimeout(settle time.Duration, payload ...buspirate.Token) error
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	W: 128,
	H: 64,
}

// Opts defines the options for the device.
type Opts struct {
	W int
	H int
	// Contrast is set during Init.
	Contrast byte
	// Sequential corresponds to the Sequential/Alternative COM pin configuration
	// in the OLED panel hardware. Try toggling this if half the rows appear to be
	// missing on your display. Particularly on 32 pixel height displays.
	Sequential bool
	// MirrorVertical corresponds to the COM remap configuration in the OLED panel
	// hardware. Try toggling this if the display is flipped vertically.
	MirrorVertical bool
	// MirrorHorizontal corresponds to the SEG remap configuration in the OLED panel
	// hardware. Try toggling this if the display is flipped horizontally.
	MirrorHorizontal bool
	// SwapTopBottom corresponds to the Left/Right remap COM pin configuration in
	// the OLED panel hardware. Try toggling this if the top and bottom halves of
	// your display are swapped.
	SwapTopBottom bool
}

// InvalidGlyphError is returned by Print when the text contains a character
// outside of the 256 entries of the font.
type InvalidGlyphError struct {
	Char rune
	// Index is the byte offset of Char in the text.
	Index int
}

func (e *InvalidGlyphError) Error() string {
	return fmt.Sprintf("ssd1306: no glyph for %q (U+%04X) at offset %d", e.Char, e.Char, e.Index)
}

// Dev is an open handle to the display controller.
//
// It keeps a text cursor in character cells of 8x8 pixels; it does not keep a
// copy of the display memory, see Framebuffer for that.
type Dev struct {
	l    Link
	opts Opts
	rect image.Rectangle

	columns, rows int
	col, row      int

	// sleep is replaced in tests.
	sleep func(time.Duration)
}

// New returns a Dev that writes to the controller through l.
//
// It does not talk to the device; call Init to configure and turn it on.
func New(l Link, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.W < 8 || opts.W > 128 || opts.W&7 != 0 {
		return nil, fmt.Errorf("ssd1306: invalid width %d", opts.W)
	}
	if opts.H < 8 || opts.H > 64 || opts.H&7 != 0 {
		return nil, fmt.Errorf("ssd1306: invalid height %d", opts.H)
	}
	return &Dev{
		l:       l,
		opts:    *opts,
		rect:    image.Rect(0, 0, opts.W, opts.H),
		columns: opts.W / 8,
		rows:    opts.H / 8,
		sleep:   time.Sleep,
	}, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%s, %s}", d.l, d.rect.Max)
}

// Bounds returns the display size in pixels. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Columns returns the number of 8 pixel wide text columns.
func (d *Dev) Columns() int {
	return d.columns
}

// Rows returns the number of 8 pixel high text rows, that is the number of
// pages.
func (d *Dev) Rows() int {
	return d.rows
}

// Init configures the controller and turns the display on.
//
// The order matters: the charge pump must be enabled before the display is
// turned on. Calling Init again replays the whole sequence.
func (d *Dev) Init() error {
	// Page 64 has the recommended flow.
	steps := []func() error{
		func() error { return d.SetDisplayPower(false) },
		func() error { return d.SetClockDiv(0x80) },
		func() error { return d.SetMultiplexRatio(byte(d.opts.H - 1)) },
		func() error { return d.SetChargePump(true) },
		func() error { return d.SetContrast(d.opts.Contrast) },
		func() error { return d.SetPrechargePeriod(0xF1) },
		func() error { return d.SetVCOMHDeselectLevel(0x40) },
		func() error { return d.SetInverse(true) },
		func() error { return d.SetMemoryAddressingMode(MemAddrModePage) },
		func() error { return d.SetSegmentRemap(!d.opts.MirrorHorizontal) },
		func() error { return d.SetCOMOutputScanDirection(d.opts.MirrorVertical) },
		func() error { return d.SetCOMPinConfiguration(!d.opts.Sequential, d.opts.SwapTopBottom) },
		func() error { return d.SetDisplayOffset(0) },
		func() error { return d.SetDisplayStartLine(0) },
		func() error { return d.SetColumnStartEnd(0, byte(d.opts.W-1)) },
		func() error { return d.SetPageStartEnd(0, byte(d.rows-1)) },
		func() error { return d.SetEnableRAMOutput(false) },
		func() error { return d.SetDisplayPower(true) },
	}
	for _, s := range steps {
		if err := s(); err != nil {
			return err
		}
	}
	return nil
}

// Halt turns off the display.
func (d *Dev) Halt() error {
	return d.SetDisplayPower(false)
}

// SetClockDiv sets the display clock divide ratio and oscillator frequency.
// 0x80 is the power on value.
func (d *Dev) SetClockDiv(div byte) error {
	return d.sendCommand(_SETDISPLAYCLOCKDIV, div)
}

// SetMultiplexRatio sets the number of active COM lines minus one.
func (d *Dev) SetMultiplexRatio(ratio byte) error {
	return d.sendCommand(_SETMULTIPLEX, ratio)
}

// SetDisplayOffset sets the vertical shift by COM, 0 to 63.
func (d *Dev) SetDisplayOffset(offset byte) error {
	return d.sendCommand(_SETDISPLAYOFFSET, offset&0x3F)
}

// SetMemoryAddressingMode sets how the write pointer advances.
func (d *Dev) SetMemoryAddressingMode(mode AddressingMode) error {
	return d.sendCommand(_MEMORYMODE, byte(mode))
}

// SetContrast changes the screen contrast.
func (d *Dev) SetContrast(level byte) error {
	return d.sendCommand(_SETCONTRAST, level)
}

// SetPrechargePeriod sets the phase 1 and phase 2 pre-charge periods.
func (d *Dev) SetPrechargePeriod(period byte) error {
	return d.sendCommand(_SETPRECHARGE, period)
}

// SetVCOMHDeselectLevel sets the VCOMH regulator output.
func (d *Dev) SetVCOMHDeselectLevel(level byte) error {
	return d.sendCommand(_SETVCOMDETECT, level)
}

// SetInverse selects whether a set bit in RAM lights a pixel (normal
// display) or turns it off (inverted display).
func (d *Dev) SetInverse(oneMeansOn bool) error {
	if oneMeansOn {
		return d.sendCommand(_NORMALDISPLAY)
	}
	return d.sendCommand(_INVERTDISPLAY)
}

// SetEnableRAMOutput selects whether the display follows RAM content or
// lights every pixel regardless of it.
func (d *Dev) SetEnableRAMOutput(ignoreRAM bool) error {
	if ignoreRAM {
		return d.sendCommand(_DISPLAYALLON_RESUME + 1)
	}
	return d.sendCommand(_DISPLAYALLON_RESUME)
}

// SetColumnStartAddress sets the column of the write pointer, in pixels.
// Only used in page addressing mode.
func (d *Dev) SetColumnStartAddress(start byte) error {
	if err := d.sendCommand(_SETLOWCOLUMN | start&0x0F); err != nil {
		return err
	}
	return d.sendCommand(_SETHIGHCOLUMN | start>>4)
}

// SetColumnStartEnd sets the column window, in pixels, for horizontal and
// vertical addressing modes.
func (d *Dev) SetColumnStartEnd(start, end byte) error {
	return d.sendCommand(_COLUMNADDR, start&0x7F, end&0x7F)
}

// SetPageStartEnd sets the page window for horizontal and vertical
// addressing modes.
func (d *Dev) SetPageStartEnd(start, end byte) error {
	return d.sendCommand(_PAGEADDR, start&0x07, end&0x07)
}

// SetPageStartAddress sets the page of the write pointer.
func (d *Dev) SetPageStartAddress(start byte) error {
	return d.sendCommand(_PAGESTARTADDRESS | start&0x07)
}

// SetDisplayStartLine sets the RAM line shown on the first row of the panel.
//
// Only the 5 low bits are used.
func (d *Dev) SetDisplayStartLine(line byte) error {
	return d.sendCommand(_SETSTARTLINE | line&0x1F)
}

// SetScroll activates or deactivates the scroll configured with Scroll.
func (d *Dev) SetScroll(activate bool) error {
	if activate {
		return d.sendCommand(_DEACTIVATE_SCROLL + 1)
	}
	return d.sendCommand(_DEACTIVATE_SCROLL)
}

// SetChargePump enables the internal DC/DC converter. It must be enabled
// before turning the display on when the panel has no external VCC.
func (d *Dev) SetChargePump(enabled bool) error {
	if enabled {
		return d.sendCommand(_CHARGEPUMP, 0x14)
	}
	return d.sendCommand(_CHARGEPUMP, 0x10)
}

// SetCOMPinConfiguration sets the COM pins hardware layout; see page 40.
//
// alternative selects the alternative COM pin configuration (bit 4), which
// most 128x64 modules use. leftRightRemap swaps the left and right COM
// halves (bit 5).
func (d *Dev) SetCOMPinConfiguration(alternative, leftRightRemap bool) error {
	v := byte(0x02)
	if alternative {
		v |= 0x10
	}
	if leftRightRemap {
		v |= 0x20
	}
	return d.sendCommand(_SETCOMPINS, v)
}

// SetSegmentRemap maps column address 127 to SEG0 when leftToRight is true,
// which is how most modules are wired.
func (d *Dev) SetSegmentRemap(leftToRight bool) error {
	if leftToRight {
		return d.sendCommand(_SEGREMAP + 1)
	}
	return d.sendCommand(_SEGREMAP)
}

// SetCOMOutputScanDirection sets the COM scan direction.
//
// Unlike the other setters, true selects the base command: normal scans from
// COM0 upward (0xC0) while false scans remapped, from COM[N-1] down (0xC8).
func (d *Dev) SetCOMOutputScanDirection(normal bool) error {
	if normal {
		return d.sendCommand(_COMSCANINC)
	}
	return d.sendCommand(_COMSCANINC + 0x08)
}

// SetDisplayPower turns the display on or off. RAM content is preserved
// while off.
func (d *Dev) SetDisplayPower(on bool) error {
	if on {
		return d.sendCommand(_DISPLAYOFF + 1)
	}
	return d.sendCommand(_DISPLAYOFF)
}

// Scroll configures a continuous horizontal scroll of a band and starts it.
//
// Only one scrolling operation can happen at a time.
//
// Both startLine and endLine must be multiples of 8.
//
// Use -1 for endLine to extend to the bottom of the display.
func (d *Dev) Scroll(o Orientation, rate FrameRate, startLine, endLine int) error {
	h := d.rect.Dy()
	if endLine == -1 {
		endLine = h
	}
	if startLine >= endLine {
		return fmt.Errorf("ssd1306: startLine (%d) must be lower than endLine (%d)", startLine, endLine)
	}
	if startLine&7 != 0 || startLine < 0 || startLine >= h {
		return fmt.Errorf("ssd1306: invalid startLine %d", startLine)
	}
	if endLine&7 != 0 || endLine < 0 || endLine > h {
		return fmt.Errorf("ssd1306: invalid endLine %d", endLine)
	}

	startPage := uint8(startLine / 8)
	endPage := uint8(endLine / 8)
	if err := d.SetScroll(false); err != nil {
		return err
	}
	var err error
	if o == Left || o == Right {
		// page 28
		// <op>, dummy, <start page>, <rate>,  <end page>, <dummy>, <dummy>
		err = d.sendCommand(byte(o), 0x00, startPage, byte(rate), endPage-1, 0x00, 0xFF)
	} else {
		// page 29
		// <op>, dummy, <start page>, <rate>,  <end page>, <offset>
		err = d.sendCommand(byte(o), 0x00, startPage, byte(rate), endPage-1, 0x01)
	}
	if err != nil {
		return err
	}
	return d.SetScroll(true)
}

// StopScroll stops any scrolling previously set.
//
// The RAM content must be rewritten afterward.
func (d *Dev) StopScroll() error {
	return d.SetScroll(false)
}

// SetCursorPosition moves the text cursor to column x and row y, wrapping
// both.
func (d *Dev) SetCursorPosition(x, y int) {
	d.col = mod(x, d.columns)
	d.row = mod(y, d.rows)
}

// CursorPosition returns the text cursor column and row.
func (d *Dev) CursorPosition() (col, row int) {
	return d.col, d.row
}

// Print renders text at the cursor with the 8x8 font and returns the new
// cursor position.
//
// The cursor moves to the next row at the end of a row and back to the top
// after the last one; the display never scrolls. vertical selects the row
// packed glyph table instead of the column packed one.
//
// Characters above U+00FF cannot be rendered; nothing is sent and an
// *InvalidGlyphError is returned.
func (d *Dev) Print(text string, vertical bool) (col, row int, err error) {
	for i, r := range text {
		if r > 0xFF {
			return d.col, d.row, &InvalidGlyphError{Char: r, Index: i}
		}
	}
	// The device write pointer auto-increments independently of the cursor,
	// so it is repositioned on every call.
	if err := d.SetColumnStartEnd(0, byte(d.opts.W-1)); err != nil {
		return d.col, d.row, err
	}
	if err := d.SetPageStartEnd(0, byte(d.rows-1)); err != nil {
		return d.col, d.row, err
	}
	if err := d.SetColumnStartAddress(byte(d.col * 8)); err != nil {
		return d.col, d.row, err
	}
	if err := d.SetPageStartAddress(byte(d.row)); err != nil {
		return d.col, d.row, err
	}
	for _, r := range text {
		g := font8x8.Lookup(byte(r), vertical)
		if err := d.sendData(g[:]); err != nil {
			return d.col, d.row, err
		}
		d.col++
		if d.col >= d.columns {
			d.col = 0
			d.row = (d.row + 1) % d.rows
		}
	}
	return d.col, d.row, nil
}

// Println is Print followed by a line feed: the cursor moves to the first
// column of the next row.
func (d *Dev) Println(text string, vertical bool) (col, row int, err error) {
	if _, _, err := d.Print(text, vertical); err != nil {
		return d.col, d.row, err
	}
	d.col = 0
	d.row = (d.row + 1) % d.rows
	return d.col, d.row, nil
}

// Clear turns off every pixel of the display memory.
//
// It writes the whole memory in a single transaction and does not affect a
// Framebuffer.
func (d *Dev) Clear() error {
	return d.fillRAM(0x00)
}

// Fill turns on every pixel of the display memory.
func (d *Dev) Fill() error {
	return d.fillRAM(0xFF)
}

func (d *Dev) fillRAM(v byte) error {
	if err := d.l.Write(buspirate.Byte(i2cData), buspirate.Repeat(v, d.opts.W*d.rows)); err != nil {
		return err
	}
	d.sleep(ClearSettle)
	return nil
}

// sendCommand sends each byte in its own command transaction.
func (d *Dev) sendCommand(c ...byte) error {
	for _, b := range c {
		if err := d.l.Write(buspirate.Byte(i2cCmd), buspirate.Byte(b)); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dev) sendData(p []byte) error {
	t := make([]buspirate.Token, 0, len(p)+1)
	t = append(t, buspirate.Byte(i2cData))
	t = append(t, buspirate.Bytes(p...)...)
	return d.l.Write(t...)
}

// mod returns a modulo n in [0, n).
func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

var _ conn.Resource = &Dev{}
