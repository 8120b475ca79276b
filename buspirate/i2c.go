// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package buspirate

import (
	"fmt"
	"strconv"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Token is one element of an I²C write. It is either a Byte or a Raw
// fragment.
type Token interface {
	appendTo(b []byte) []byte
}

// Byte is a literal byte, rendered as "0xHH ".
type Byte byte

const hexDigits = "0123456789ABCDEF"

func (v Byte) appendTo(b []byte) []byte {
	return append(b, '0', 'x', hexDigits[v>>4], hexDigits[v&0x0F], ' ')
}

// Raw is copied verbatim into the transaction.
type Raw string

func (r Raw) appendTo(b []byte) []byte {
	return append(b, r...)
}

// Bytes converts p to literal tokens.
func Bytes(p ...byte) []Token {
	t := make([]Token, len(p))
	for i, v := range p {
		t[i] = Byte(v)
	}
	return t
}

// Repeat returns the console syntax writing v n times, e.g. "0x00:1024".
func Repeat(v byte, n int) Raw {
	return Raw(string(Byte(v).appendTo(nil)[:4]) + ":" + strconv.Itoa(n))
}

// Speed is an entry of the I²C speed menu.
type Speed int

// Speeds of the software I²C implementation.
const (
	Speed5kHz   Speed = 1
	Speed50kHz  Speed = 2
	Speed100kHz Speed = 3
	Speed400kHz Speed = 4
)

// Frequency returns the nominal bus clock.
func (s Speed) Frequency() physic.Frequency {
	switch s {
	case Speed5kHz:
		return 5 * physic.KiloHertz
	case Speed50kHz:
		return 50 * physic.KiloHertz
	case Speed100kHz:
		return 100 * physic.KiloHertz
	case Speed400kHz:
		return 400 * physic.KiloHertz
	}
	return 0
}

func (s Speed) String() string {
	if f := s.Frequency(); f != 0 {
		return f.String()
	}
	return "Speed(" + strconv.Itoa(int(s)) + ")"
}

// speedFor returns the fastest speed not above f.
func speedFor(f physic.Frequency) (Speed, error) {
	for s := Speed400kHz; s >= Speed5kHz; s-- {
		if s.Frequency() <= f {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrSpeedRange, f)
}

// DefaultI2COpts is the recommended default options for an SSD1306 module.
var DefaultI2COpts = I2COpts{
	Addr:    0x78,
	Speed:   Speed400kHz,
	Timeout: 10 * time.Millisecond,
}

// I2COpts defines the options for I²C transactions.
type I2COpts struct {
	// Addr is the address byte placed first in every transaction, with the
	// R/W bit cleared. 0x78 is the write address of a 0x3C device.
	Addr byte
	// Speed is selected when entering I²C mode.
	Speed Speed
	// Timeout is the settle delay after each transaction. It is usually much
	// shorter than the console settle delay.
	Timeout time.Duration
}

// I2C frames I²C write transactions addressed to a single device.
type I2C struct {
	bp          *Dev
	addr        byte
	speed       Speed
	timeout     time.Duration
	initialized bool
}

// NewI2C returns an I²C transport on top of the console.
//
// Call Init to switch the bridge to I²C mode before writing.
func NewI2C(bp *Dev, opts *I2COpts) *I2C {
	if opts == nil {
		opts = &DefaultI2COpts
	}
	i := &I2C{bp: bp, addr: opts.Addr, speed: opts.Speed, timeout: opts.Timeout}
	if i.addr == 0 {
		i.addr = DefaultI2COpts.Addr
	}
	if i.speed == 0 {
		i.speed = DefaultI2COpts.Speed
	}
	return i
}

func (i *I2C) String() string {
	return fmt.Sprintf("buspirate.I2C{0x%02X, %s}", i.addr, i.speed)
}

// Addr returns the address byte of the device.
func (i *I2C) Addr() byte {
	return i.addr
}

// Timeout returns the settle delay observed after each transaction.
func (i *I2C) Timeout() time.Duration {
	return i.timeout
}

// SetTimeout changes the settle delay observed after each transaction.
func (i *I2C) SetTimeout(d time.Duration) {
	i.timeout = d
}

// Init enters I²C mode at the configured speed and powers the target with
// pull-ups enabled.
func (i *I2C) Init() error {
	if err := i.enterMode(); err != nil {
		return err
	}
	if err := i.bp.EnablePowerSupply(); err != nil {
		return err
	}
	if err := i.bp.EnablePullupResistors(); err != nil {
		return err
	}
	i.initialized = true
	return nil
}

// Write sends payload as a single transaction to the device, then waits for
// the transport's timeout.
func (i *I2C) Write(payload ...Token) error {
	return i.WriteTimeout(i.timeout, payload...)
}

// WriteTimeout is Write with a settle delay specific to this transaction.
func (i *I2C) WriteTimeout(settle time.Duration, payload ...Token) error {
	return i.bp.send(frame(i.addr, payload), settle)
}

// Tx implements i2c.Bus.
//
// addr is the 7-bit address; the console expects the address byte so it is
// shifted left. Reads are not supported.
func (i *I2C) Tx(addr uint16, w, r []byte) error {
	if len(r) != 0 {
		return ErrReadUnsupported
	}
	if addr > 0x7F {
		return fmt.Errorf("%w: 0x%04X", ErrAddressRange, addr)
	}
	return i.bp.send(frame(byte(addr<<1), Bytes(w...)), i.timeout)
}

// SetSpeed implements i2c.Bus.
//
// The fastest menu speed not above f is used. When the bridge is already in
// I²C mode, the mode is entered again to apply it.
func (i *I2C) SetSpeed(f physic.Frequency) error {
	s, err := speedFor(f)
	if err != nil {
		return err
	}
	i.speed = s
	if !i.initialized {
		return nil
	}
	return i.enterMode()
}

// Close implements i2c.BusCloser. It closes the console link.
func (i *I2C) Close() error {
	return i.bp.Close()
}

func (i *I2C) enterMode() error {
	if err := i.bp.SetProtocol(ModeI2C); err != nil {
		return err
	}
	return i.bp.Send([]byte(strconv.Itoa(int(i.speed))))
}

// frame renders a bracketed write transaction.
func frame(addr byte, payload []Token) []byte {
	b := make([]byte, 0, 2+5*(len(payload)+1))
	b = append(b, '[')
	b = Byte(addr).appendTo(b)
	for _, t := range payload {
		b = t.appendTo(b)
	}
	return append(b, ']')
}

var _ i2c.BusCloser = &I2C{}
