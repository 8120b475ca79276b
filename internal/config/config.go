// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package config loads and saves the pirateoled YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/GermanBionicSystems/pirateoled/buspirate"
	"github.com/GermanBionicSystems/pirateoled/ssd1306"
	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"
)

// I2CConfig describes the bridge I²C side.
type I2CConfig struct {
	// Addr is the 8-bit write address byte, 0x78 for a panel strapped to
	// 0x3C.
	Addr int `yaml:"addr"`
	// Speed is a frequency such as "400kHz". It is rounded down to the
	// closest bridge speed.
	Speed string `yaml:"speed"`
	// Timeout is the pause after each I²C transaction.
	Timeout time.Duration `yaml:"timeout"`
}

// DisplayConfig describes the panel geometry and wiring.
type DisplayConfig struct {
	Width            int  `yaml:"width"`
	Height           int  `yaml:"height"`
	Contrast         int  `yaml:"contrast"`
	MirrorVertical   bool `yaml:"mirror_vertical"`
	MirrorHorizontal bool `yaml:"mirror_horizontal"`
	Sequential       bool `yaml:"sequential"`
	SwapTopBottom    bool `yaml:"swap_top_bottom"`
	// BlockSize is the number of display memory bytes per transaction when
	// the framebuffer is synchronized.
	BlockSize int `yaml:"block_size"`
}

// Config is the top-level application configuration.
type Config struct {
	// Port is the serial device of the Bus Pirate, e.g. "/dev/ttyUSB0".
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
	// Settle is the pause after each console command.
	Settle time.Duration `yaml:"settle"`
	Debug  bool          `yaml:"debug"`

	I2C     I2CConfig     `yaml:"i2c"`
	Display DisplayConfig `yaml:"display"`

	// Refresh is the clock redraw period.
	Refresh time.Duration `yaml:"refresh"`
	// Preview mirrors framebuffer updates to the terminal.
	Preview bool `yaml:"preview"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Port:   "/dev/ttyUSB0",
		Baud:   buspirate.DefaultBaud,
		Settle: buspirate.DefaultSettle,
		I2C: I2CConfig{
			Addr:    int(buspirate.DefaultI2COpts.Addr),
			Speed:   buspirate.DefaultI2COpts.Speed.String(),
			Timeout: buspirate.DefaultI2COpts.Timeout,
		},
		Display: DisplayConfig{
			Width:     ssd1306.DefaultOpts.W,
			Height:    ssd1306.DefaultOpts.H,
			BlockSize: ssd1306.DefaultBlockSize,
		},
		Refresh: time.Second,
	}
}

// Normalize fills in missing values with defaults so that partially filled
// files still behave correctly.
//
// Settle and contrast are left alone: zero is meaningful for both. Load
// starts from DefaultConfig so a missing settle key still gets the default.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.Port == "" {
		c.Port = d.Port
	}
	if c.Baud == 0 {
		c.Baud = d.Baud
	}
	if c.I2C.Addr == 0 {
		c.I2C.Addr = d.I2C.Addr
	}
	if c.I2C.Speed == "" {
		c.I2C.Speed = d.I2C.Speed
	}
	if c.I2C.Timeout == 0 {
		c.I2C.Timeout = d.I2C.Timeout
	}
	if c.Display.Width == 0 {
		c.Display.Width = d.Display.Width
	}
	if c.Display.Height == 0 {
		c.Display.Height = d.Display.Height
	}
	if c.Display.BlockSize == 0 {
		c.Display.BlockSize = d.Display.BlockSize
	}
	if c.Refresh == 0 {
		c.Refresh = d.Refresh
	}
}

// Validate reports the first invalid value.
func (c *Config) Validate() error {
	if c.Baud < 0 {
		return fmt.Errorf("config: invalid baud %d", c.Baud)
	}
	if c.Settle < 0 {
		return fmt.Errorf("config: invalid settle %s", c.Settle)
	}
	if c.I2C.Addr < 1 || c.I2C.Addr > 0xFF {
		return fmt.Errorf("config: invalid i2c address %#x", c.I2C.Addr)
	}
	if _, err := c.Frequency(); err != nil {
		return err
	}
	if c.I2C.Timeout < 0 {
		return fmt.Errorf("config: invalid i2c timeout %s", c.I2C.Timeout)
	}
	if c.Display.Contrast < 0 || c.Display.Contrast > 0xFF {
		return fmt.Errorf("config: invalid contrast %d", c.Display.Contrast)
	}
	if c.Display.BlockSize < 1 {
		return fmt.Errorf("config: invalid block size %d", c.Display.BlockSize)
	}
	if c.Refresh <= 0 {
		return fmt.Errorf("config: invalid refresh %s", c.Refresh)
	}
	// The driver owns the geometry rules.
	if _, err := ssd1306.New(nil, c.DisplayOpts()); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Frequency parses the I²C speed.
func (c *Config) Frequency() (physic.Frequency, error) {
	var f physic.Frequency
	if err := f.Set(c.I2C.Speed); err != nil {
		return 0, fmt.Errorf("config: invalid i2c speed %q: %w", c.I2C.Speed, err)
	}
	return f, nil
}

// BusPirateOpts returns the serial command channel options.
func (c *Config) BusPirateOpts() *buspirate.Opts {
	return &buspirate.Opts{Settle: c.Settle}
}

// I2COpts returns the I²C transport options. The speed is set separately
// with I2C.SetSpeed and Frequency.
func (c *Config) I2COpts() *buspirate.I2COpts {
	return &buspirate.I2COpts{
		Addr:    byte(c.I2C.Addr),
		Timeout: c.I2C.Timeout,
	}
}

// DisplayOpts returns the controller options.
func (c *Config) DisplayOpts() *ssd1306.Opts {
	return &ssd1306.Opts{
		W:                c.Display.Width,
		H:                c.Display.Height,
		Contrast:         byte(c.Display.Contrast),
		MirrorVertical:   c.Display.MirrorVertical,
		MirrorHorizontal: c.Display.MirrorHorizontal,
		Sequential:       c.Display.Sequential,
		SwapTopBottom:    c.Display.SwapTopBottom,
	}
}

// Load loads configuration from the given YAML path.
//
// On first run the file does not exist yet: a default configuration is
// written with 0600 permissions and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config: path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			// Even if save fails, return cfg with error so caller can decide.
			return cfg, Save(path, cfg)
		}
		return nil, err
	}
	// Keys missing from the file keep their default value, so an explicit
	// zero such as "settle: 0s" is the only way to get one.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, cfg.Validate()
}

// Save writes cfg to path atomically, via a temporary file in the same
// directory renamed over the target. The parent directory is created with
// 0700 permissions if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config: path is empty")
	}
	if cfg == nil {
		return errors.New("config: config is nil")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".pirateoled-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
