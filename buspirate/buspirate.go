// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package buspirate

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// DefaultSettle is the pause after each console command. The Bus Pirate
// echoes every line back and drops input while doing so.
const DefaultSettle = 100 * time.Millisecond

// Mode is an entry of the console's mode menu ("m").
type Mode int

// Bus Pirate v3 mode menu.
const (
	ModeHiZ   Mode = 1
	Mode1Wire Mode = 2
	ModeUART  Mode = 3
	ModeI2C   Mode = 4
	ModeSPI   Mode = 5
	Mode2Wire Mode = 6
	Mode3Wire Mode = 7
	ModeLCD   Mode = 8
	ModeDIO   Mode = 9
)

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Settle: DefaultSettle,
}

// Opts defines the options for the console link.
type Opts struct {
	// Settle is the delay observed after every command. Zero disables it,
	// which is only useful when the writer is not a real bridge.
	Settle time.Duration
	// Logger receives every command at debug level. Nil disables logging.
	Logger *zerolog.Logger
}

// Dev is an open handle to the Bus Pirate console.
//
// It is not safe for concurrent use.
type Dev struct {
	w      io.Writer
	settle time.Duration
	log    zerolog.Logger
	// sleep is replaced in tests.
	sleep func(time.Duration)
}

// New returns a Dev writing console commands to w.
//
// w is usually a serial port, see Open. Dev takes ownership of w; Close
// closes it when it implements io.Closer.
func New(w io.Writer, opts *Opts) *Dev {
	if opts == nil {
		opts = &DefaultOpts
	}
	l := zerolog.Nop()
	if opts.Logger != nil {
		l = opts.Logger.With().Str("dev", "buspirate").Logger()
	}
	return &Dev{
		w:      w,
		settle: opts.Settle,
		log:    l,
		sleep:  time.Sleep,
	}
}

func (d *Dev) String() string {
	if s, ok := d.w.(fmt.Stringer); ok {
		return fmt.Sprintf("buspirate.Dev{%s}", s)
	}
	return "buspirate.Dev"
}

// Settle returns the delay observed after each command.
func (d *Dev) Settle() time.Duration {
	return d.settle
}

// Send writes one console command, terminated with a carriage return, then
// waits for the settle delay.
func (d *Dev) Send(cmd []byte) error {
	return d.send(cmd, d.settle)
}

// SetProtocol enters the mode menu and selects m.
func (d *Dev) SetProtocol(m Mode) error {
	if err := d.Send([]byte("m")); err != nil {
		return err
	}
	return d.Send([]byte(strconv.Itoa(int(m))))
}

// EnablePowerSupply turns on the 3.3V and 5V supply pins.
func (d *Dev) EnablePowerSupply() error {
	return d.Send([]byte("W"))
}

// EnablePullupResistors turns on the on-board pull-up resistors.
func (d *Dev) EnablePullupResistors() error {
	return d.Send([]byte("P"))
}

// Close closes the underlying link if it implements io.Closer.
func (d *Dev) Close() error {
	c, ok := d.w.(io.Closer)
	if !ok {
		return nil
	}
	if err := c.Close(); err != nil {
		return &LinkError{Op: "close", Err: err}
	}
	return nil
}

// send writes cmd in a single Write call so a command is never interleaved
// with a partial one.
func (d *Dev) send(cmd []byte, settle time.Duration) error {
	buf := make([]byte, 0, len(cmd)+1)
	buf = append(buf, cmd...)
	buf = append(buf, '\r')
	d.log.Debug().Bytes("cmd", cmd).Dur("settle", settle).Msg("send")
	n, err := d.w.Write(buf)
	if err != nil {
		return &LinkError{Op: "write", Err: err}
	}
	if n != len(buf) {
		return &LinkError{Op: "write", Err: io.ErrShortWrite}
	}
	if settle > 0 {
		d.sleep(settle)
	}
	return nil
}
