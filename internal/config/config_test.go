// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/physic"
)

func TestLoadFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "pirateoled.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, DefaultConfig()); diff != "" {
		t.Errorf("Load() difference (-got +want):\n%s", diff)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if m := fi.Mode().Perm(); m != 0o600 {
		t.Errorf("mode = %o, want 600", m)
	}
	again, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(again, cfg); diff != "" {
		t.Errorf("reload difference (-got +want):\n%s", diff)
	}
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	data := []byte(`port: /dev/ttyACM0
settle: 50ms
i2c:
  addr: 0x7a
  speed: 100kHz
display:
  height: 32
  sequential: true
  contrast: 207
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Port = "/dev/ttyACM0"
	want.Settle = 50 * time.Millisecond
	want.I2C.Addr = 0x7A
	want.I2C.Speed = "100kHz"
	want.Display.Height = 32
	want.Display.Sequential = true
	want.Display.Contrast = 207
	if diff := cmp.Diff(cfg, want); diff != "" {
		t.Errorf("Load() difference (-got +want):\n%s", diff)
	}
	f, err := cfg.Frequency()
	if err != nil {
		t.Fatal(err)
	}
	if f != 100*physic.KiloHertz {
		t.Errorf("Frequency() = %s", f)
	}
	o := cfg.DisplayOpts()
	if o.H != 32 || !o.Sequential || o.Contrast != 207 {
		t.Errorf("DisplayOpts() = %+v", o)
	}
	if a := cfg.I2COpts().Addr; a != 0x7A {
		t.Errorf("I2COpts().Addr = %#x", a)
	}
}

func TestLoadSettle(t *testing.T) {
	for _, tc := range []struct {
		name string
		data string
		want time.Duration
	}{
		{name: "missing", data: "port: /dev/ttyACM0\n", want: 100 * time.Millisecond},
		{name: "explicit zero", data: "port: /dev/ttyACM0\nsettle: 0s\n", want: 0},
		{name: "explicit", data: "settle: 250ms\n", want: 250 * time.Millisecond},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			if err := os.WriteFile(path, []byte(tc.data), 0o600); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatal(err)
			}
			if got := cfg.BusPirateOpts().Settle; got != tc.want {
				t.Errorf("BusPirateOpts().Settle = %s, want %s", got, tc.want)
			}
			if got := cfg.I2COpts().Timeout; got != 10*time.Millisecond {
				t.Errorf("I2COpts().Timeout = %s", got)
			}
		})
	}
}

func TestLoadInvalid(t *testing.T) {
	for _, tc := range []struct {
		name string
		data string
	}{
		{"syntax", "port: [\n"},
		{"height", "display:\n  height: 12\n"},
		{"speed", "i2c:\n  speed: fast\n"},
		{"contrast", "display:\n  contrast: 300\n"},
		{"addr", "i2c:\n  addr: 512\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			if err := os.WriteFile(path, []byte(tc.data), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("Load() succeeded")
			}
		})
	}
	if _, err := Load(""); err == nil {
		t.Fatal("Load(\"\") succeeded")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.yaml")
	cfg := DefaultConfig()
	cfg.Refresh = 5 * time.Second
	cfg.Display.MirrorVertical = true
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(got, cfg); diff != "" {
		t.Errorf("Load(Save()) difference (-got +want):\n%s", diff)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary file left behind: %v", entries)
	}
	if err := Save(path, nil); err == nil {
		t.Error("Save(nil) succeeded")
	}
}
