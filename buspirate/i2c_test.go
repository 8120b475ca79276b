// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package buspirate

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

func TestI2CWrite(t *testing.T) {
	for _, tc := range []struct {
		name    string
		payload []Token
		want    string
	}{
		{
			name: "empty",
			want: "[0x78 ]\r",
		},
		{
			name:    "command",
			payload: []Token{Byte(0x00), Byte(0x81)},
			want:    "[0x78 0x00 0x81 ]\r",
		},
		{
			name:    "upper case hex",
			payload: Bytes(0x40, 0xab, 0x0f),
			want:    "[0x78 0x40 0xAB 0x0F ]\r",
		},
		{
			name:    "raw fragment",
			payload: []Token{Byte(0x40), Repeat(0x00, 1024)},
			want:    "[0x78 0x40 0x00:1024]\r",
		},
		{
			name:    "mixed",
			payload: []Token{Byte(0x40), Raw("0xFF:8 "), Byte(0x01)},
			want:    "[0x78 0x40 0xFF:8 0x01 ]\r",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, r, sleeps := newTestDev(DefaultSettle)
			i := NewI2C(d, nil)
			if err := i.Write(tc.payload...); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(r.writes, []string{tc.want}); diff != "" {
				t.Errorf("Write() difference (-got +want):\n%s", diff)
			}
			if diff := cmp.Diff(*sleeps, []time.Duration{DefaultI2COpts.Timeout}); diff != "" {
				t.Errorf("settle difference (-got +want):\n%s", diff)
			}
		})
	}
}

func TestI2CWriteTimeout(t *testing.T) {
	d, _, sleeps := newTestDev(DefaultSettle)
	i := NewI2C(d, &I2COpts{Addr: 0x7A, Timeout: time.Millisecond})
	if i.Addr() != 0x7A {
		t.Fatalf("Addr() = %#x", i.Addr())
	}
	if err := i.WriteTimeout(500*time.Millisecond, Byte(0x40)); err != nil {
		t.Fatal(err)
	}
	if err := i.Write(Byte(0x40)); err != nil {
		t.Fatal(err)
	}
	i.SetTimeout(2 * time.Millisecond)
	if err := i.Write(Byte(0x40)); err != nil {
		t.Fatal(err)
	}
	want := []time.Duration{500 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}
	if diff := cmp.Diff(*sleeps, want); diff != "" {
		t.Errorf("settle difference (-got +want):\n%s", diff)
	}
}

func TestI2CInit(t *testing.T) {
	d, r, _ := newTestDev(0)
	i := NewI2C(d, &I2COpts{Speed: Speed100kHz})
	if err := i.Init(); err != nil {
		t.Fatal(err)
	}
	want := []string{"m\r", "4\r", "3\r", "W\r", "P\r"}
	if diff := cmp.Diff(r.writes, want); diff != "" {
		t.Errorf("Init() difference (-got +want):\n%s", diff)
	}
}

func TestI2CSetSpeed(t *testing.T) {
	for _, tc := range []struct {
		name string
		f    physic.Frequency
		want Speed
		err  error
	}{
		{name: "exact", f: 100 * physic.KiloHertz, want: Speed100kHz},
		{name: "round down", f: 120 * physic.KiloHertz, want: Speed100kHz},
		{name: "fast", f: physic.MegaHertz, want: Speed400kHz},
		{name: "slowest", f: 5 * physic.KiloHertz, want: Speed5kHz},
		{name: "too slow", f: physic.KiloHertz, err: ErrSpeedRange},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, r, _ := newTestDev(0)
			i := NewI2C(d, nil)
			err := i.SetSpeed(tc.f)
			if !errors.Is(err, tc.err) {
				t.Fatalf("SetSpeed(%s) = %v, want %v", tc.f, err, tc.err)
			}
			if err != nil {
				return
			}
			if i.speed != tc.want {
				t.Errorf("speed = %s, want %s", i.speed, tc.want)
			}
			if len(r.writes) != 0 {
				t.Errorf("unexpected writes before Init: %q", r.writes)
			}
		})
	}
}

func TestI2CSetSpeedInitialized(t *testing.T) {
	d, r, _ := newTestDev(0)
	i := NewI2C(d, nil)
	if err := i.Init(); err != nil {
		t.Fatal(err)
	}
	r.writes = nil
	if err := i.SetSpeed(50 * physic.KiloHertz); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(r.writes, []string{"m\r", "4\r", "2\r"}); diff != "" {
		t.Errorf("SetSpeed() difference (-got +want):\n%s", diff)
	}
}

func TestI2CBus(t *testing.T) {
	d, r, _ := newTestDev(0)
	rec := &i2ctest.Record{Bus: NewI2C(d, nil)}
	dev := &i2c.Dev{Bus: rec, Addr: 0x3C}
	if err := dev.Tx([]byte{0x00, 0xAF}, nil); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(r.writes, []string{"[0x78 0x00 0xAF ]\r"}); diff != "" {
		t.Errorf("Tx() difference (-got +want):\n%s", diff)
	}
	want := []i2ctest.IO{{Addr: 0x3C, W: []byte{0x00, 0xAF}}}
	if diff := cmp.Diff(rec.Ops, want, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("recorded difference (-got +want):\n%s", diff)
	}
}

func TestI2CBusErrors(t *testing.T) {
	d, r, _ := newTestDev(0)
	i := NewI2C(d, nil)
	if err := i.Tx(0x3C, nil, make([]byte, 1)); !errors.Is(err, ErrReadUnsupported) {
		t.Errorf("Tx() read = %v", err)
	}
	if err := i.Tx(0x80, []byte{0}, nil); !errors.Is(err, ErrAddressRange) {
		t.Errorf("Tx() 10-bit = %v", err)
	}
	if len(r.writes) != 0 {
		t.Errorf("unexpected writes %q", r.writes)
	}
}

func TestSpeedString(t *testing.T) {
	if s := Speed400kHz.String(); s != "400kHz" {
		t.Errorf("String() = %q", s)
	}
	if s := Speed(9).String(); s != "Speed(9)" {
		t.Errorf("String() = %q", s)
	}
}
