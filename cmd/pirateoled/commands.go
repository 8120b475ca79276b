// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/GermanBionicSystems/pirateoled/buspirate"
	"github.com/GermanBionicSystems/pirateoled/ssd1306"
	"github.com/GermanBionicSystems/pirateoled/ssd1306/font8x8"
	"github.com/rs/zerolog/log"
)

type command struct {
	name string
	help string
	// device is false for commands that do not talk to the panel.
	device bool
	run    func(ctx context.Context, a *app, args []string) error
}

var commands = []command{
	{"init", "initialize and clear the display", true, runInit},
	{"clear", "turn off every pixel", true, runClear},
	{"fill", "turn on every pixel", true, runFill},
	{"text", "print each argument on its own line", true, runText},
	{"clock", "show the date and time until interrupted", true, runClock},
	{"demo", "draw shapes and TrueType text, then scroll", true, runDemo},
	{"ports", "list serial ports", false, runPorts},
}

func lookup(name string) (*command, error) {
	for i := range commands {
		if commands[i].name == name {
			return &commands[i], nil
		}
	}
	return nil, fmt.Errorf("unknown command %q", name)
}

func runInit(ctx context.Context, a *app, args []string) error {
	return runClear(ctx, a, args)
}

func runClear(ctx context.Context, a *app, args []string) error {
	if err := a.fb.Clear(); err != nil {
		return err
	}
	return a.refreshMirror()
}

func runFill(ctx context.Context, a *app, args []string) error {
	if err := a.fb.Fill(); err != nil {
		return err
	}
	return a.refreshMirror()
}

func runText(ctx context.Context, a *app, args []string) error {
	if err := runClear(ctx, a, nil); err != nil {
		return err
	}
	for _, s := range args {
		if err := a.println(s); err != nil {
			return err
		}
	}
	return a.refreshMirror()
}

// println prints s on the panel and copies the glyphs in the framebuffer
// so the preview shows the same thing.
func (a *app) println(s string) error {
	col, row := a.dev.CursorPosition()
	if _, _, err := a.dev.Println(s, false); err != nil {
		return err
	}
	blit(a.fb.Image().Pix, a.dev.Columns(), a.dev.Rows(), col, row, s)
	return nil
}

// blit writes the column packed glyphs of s in pix, a buffer in GDDRAM
// layout, wrapping the same way the panel cursor does. s must only hold
// runes up to U+00FF.
func blit(pix []byte, columns, rows, col, row int, s string) {
	w := columns * 8
	for _, r := range s {
		g := font8x8.Horizontal(byte(r))
		copy(pix[row*w+col*8:], g[:])
		if col++; col == columns {
			col = 0
			row = (row + 1) % rows
		}
	}
}

// clockLines returns the two lines shown by the clock command.
func clockLines(t time.Time) [2]string {
	return [2]string{t.Format("2006/01/02"), t.Format("15:04:05")}
}

func runClock(ctx context.Context, a *app, args []string) error {
	if err := runClear(ctx, a, nil); err != nil {
		return err
	}
	t := time.NewTicker(a.cfg.Refresh)
	defer t.Stop()
	for {
		a.dev.SetCursorPosition(0, 0)
		for _, l := range clockLines(time.Now()) {
			if err := a.println(l); err != nil {
				return err
			}
		}
		if err := a.refreshMirror(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			log.Info().Msg("signal received, shutting down")
			return a.dev.Halt()
		case <-t.C:
		}
	}
}

func runDemo(ctx context.Context, a *app, args []string) error {
	img, err := renderDemo(a.dev.Bounds().Dx(), a.dev.Bounds().Dy(), "pirateoled")
	if err != nil {
		return err
	}
	if err := a.fb.Draw(a.fb.Bounds(), img, image.Point{}); err != nil {
		return err
	}
	if err := a.refreshMirror(); err != nil {
		return err
	}
	// Scroll until interrupted.
	if err := a.dev.Scroll(ssd1306.Left, ssd1306.FrameRate5, 0, -1); err != nil {
		return err
	}
	<-ctx.Done()
	if err := a.dev.StopScroll(); err != nil {
		return err
	}
	return a.sync()
}

func runPorts(ctx context.Context, a *app, args []string) error {
	ports, err := buspirate.Ports()
	if err != nil {
		return err
	}
	log.Debug().Int("port_count", len(ports)).Msg("serial ports")
	for _, p := range ports {
		fmt.Fprintln(os.Stdout, p)
	}
	return nil
}
