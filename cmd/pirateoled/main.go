// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// pirateoled drives an SSD1306 OLED panel through a Bus Pirate.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/GermanBionicSystems/pirateoled/buspirate"
	"github.com/GermanBionicSystems/pirateoled/internal/config"
	"github.com/GermanBionicSystems/pirateoled/preview"
	"github.com/GermanBionicSystems/pirateoled/ssd1306"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// flagConfig holds CLI flag values; set values override the config file.
type flagConfig struct {
	configPath string
	port       string
	baud       int
	preview    bool
	verbose    bool
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "pirateoled.yaml"
	}
	return filepath.Join(dir, "pirateoled", "config.yaml")
}

func parseFlags(fs *flag.FlagSet, args []string) (flagConfig, error) {
	var f flagConfig
	fs.StringVar(&f.configPath, "config", defaultConfigPath(), "Path to config file")
	fs.StringVar(&f.port, "port", "", "Bus Pirate serial port (overrides config if set)")
	fs.IntVar(&f.baud, "baud", 0, "Serial speed (overrides config if set)")
	fs.BoolVar(&f.preview, "preview", false, "Mirror the display to the terminal")
	fs.BoolVar(&f.verbose, "v", false, "Log every command sent to the bridge")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "usage: %s [flags] <command> [args]\n\n", fs.Name())
		fmt.Fprintf(out, "commands:\n")
		for _, c := range commands {
			fmt.Fprintf(out, "  %-8s %s\n", c.name, c.help)
		}
		fmt.Fprintf(out, "\nflags:\n")
		fs.PrintDefaults()
	}
	return f, fs.Parse(args)
}

// apply overrides cfg with the flags that were set.
func (f *flagConfig) apply(cfg *config.Config) {
	if f.port != "" {
		cfg.Port = f.port
	}
	if f.baud != 0 {
		cfg.Baud = f.baud
	}
	if f.preview {
		cfg.Preview = true
	}
	if f.verbose {
		cfg.Debug = true
	}
}

func mainImpl() error {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)

	fs := flag.NewFlagSet("pirateoled", flag.ContinueOnError)
	flags, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing command")
	}
	cmd, err := lookup(fs.Arg(0))
	if err != nil {
		return err
	}

	// Root context with cancellation on SIGINT/SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if !cmd.device {
		return cmd.run(ctx, nil, fs.Args()[1:])
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	flags.apply(cfg)
	if cfg.Debug {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	}
	log.Debug().
		Str("config", flags.configPath).
		Str("port", cfg.Port).
		Int("baud", cfg.Baud).
		Str("speed", cfg.I2C.Speed).
		Int("width", cfg.Display.Width).
		Int("height", cfg.Display.Height).
		Msg("effective config")

	a, err := open(cfg)
	if err != nil {
		return err
	}
	defer a.close()
	return cmd.run(ctx, a, fs.Args()[1:])
}

// app holds the open driver stack.
type app struct {
	cfg *config.Config
	bp  *buspirate.Dev
	dev *ssd1306.Dev
	fb  *ssd1306.Framebuffer
	// mirror is nil unless the preview is enabled.
	mirror *preview.Dev
}

// open opens the serial port, switches the bridge to I²C and initializes
// the panel.
func open(cfg *config.Config) (*app, error) {
	f, err := cfg.Frequency()
	if err != nil {
		return nil, err
	}
	bpOpts := cfg.BusPirateOpts()
	bpOpts.Logger = &log.Logger
	bp, err := buspirate.Open(cfg.Port, cfg.Baud, bpOpts)
	if err != nil {
		return nil, err
	}
	bus := buspirate.NewI2C(bp, cfg.I2COpts())
	if err := bus.SetSpeed(f); err != nil {
		_ = bp.Close()
		return nil, err
	}
	if err := bus.Init(); err != nil {
		_ = bp.Close()
		return nil, err
	}
	dev, err := ssd1306.New(bus, cfg.DisplayOpts())
	if err != nil {
		_ = bp.Close()
		return nil, err
	}
	if err := dev.Init(); err != nil {
		_ = bp.Close()
		return nil, err
	}
	log.Info().Str("device", dev.String()).Msg("display initialized")
	fb := ssd1306.NewFramebuffer(dev)
	if err := fb.SetBlockSize(cfg.Display.BlockSize); err != nil {
		_ = bp.Close()
		return nil, err
	}
	a := &app{cfg: cfg, bp: bp, dev: dev, fb: fb}
	if cfg.Preview {
		a.mirror = preview.New(&preview.Opts{W: cfg.Display.Width, H: cfg.Display.Height})
	}
	return a, nil
}

func (a *app) close() {
	if a.mirror != nil {
		_ = a.mirror.Halt()
	}
	if err := a.bp.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close serial port")
	}
}

// sync pushes the framebuffer to the panel and the preview.
func (a *app) sync() error {
	if err := a.fb.Sync(a.fb.BlockSize()); err != nil {
		return err
	}
	return a.refreshMirror()
}

func (a *app) refreshMirror() error {
	if a.mirror == nil {
		return nil
	}
	_, err := a.mirror.Write(a.fb.Buffer())
	return err
}

func main() {
	if err := mainImpl(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal().Err(err).Msg("pirateoled")
	}
}
