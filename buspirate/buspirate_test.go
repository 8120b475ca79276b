// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package buspirate

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

// recorder records each Write call as one string.
type recorder struct {
	writes []string
	err    error
	short  bool
	closed bool
}

func (r *recorder) Write(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.writes = append(r.writes, string(p))
	if r.short {
		return len(p) - 1, nil
	}
	return len(p), nil
}

func (r *recorder) Close() error {
	r.closed = true
	return nil
}

// newTestDev returns a Dev recording its writes and its settle delays.
func newTestDev(settle time.Duration) (*Dev, *recorder, *[]time.Duration) {
	r := &recorder{}
	d := New(r, &Opts{Settle: settle})
	var sleeps []time.Duration
	d.sleep = func(s time.Duration) {
		sleeps = append(sleeps, s)
	}
	return d, r, &sleeps
}

func TestSend(t *testing.T) {
	d, r, sleeps := newTestDev(DefaultSettle)
	if err := d.Send([]byte("W")); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(r.writes, []string{"W\r"}); diff != "" {
		t.Errorf("Send() difference (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(*sleeps, []time.Duration{DefaultSettle}); diff != "" {
		t.Errorf("settle difference (-got +want):\n%s", diff)
	}
}

func TestSendNoSettle(t *testing.T) {
	d, _, sleeps := newTestDev(0)
	if err := d.Send([]byte("P")); err != nil {
		t.Fatal(err)
	}
	if len(*sleeps) != 0 {
		t.Errorf("unexpected sleeps %v", *sleeps)
	}
}

func TestSendErrors(t *testing.T) {
	boom := errors.New("boom")
	for _, tc := range []struct {
		name string
		rec  recorder
		want error
	}{
		{
			name: "write error",
			rec:  recorder{err: boom},
			want: boom,
		},
		{
			name: "short write",
			rec:  recorder{short: true},
			want: io.ErrShortWrite,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d := New(&tc.rec, &Opts{})
			slept := false
			d.sleep = func(time.Duration) { slept = true }
			err := d.Send([]byte("m"))
			if !errors.Is(err, tc.want) {
				t.Fatalf("Send() = %v, want %v", err, tc.want)
			}
			var le *LinkError
			if !errors.As(err, &le) || le.Op != "write" {
				t.Fatalf("Send() = %#v, want a write LinkError", err)
			}
			if slept {
				t.Error("settled after a failed write")
			}
		})
	}
}

func TestModeCommands(t *testing.T) {
	d, r, _ := newTestDev(0)
	if err := d.SetProtocol(ModeI2C); err != nil {
		t.Fatal(err)
	}
	if err := d.EnablePowerSupply(); err != nil {
		t.Fatal(err)
	}
	if err := d.EnablePullupResistors(); err != nil {
		t.Fatal(err)
	}
	want := []string{"m\r", "4\r", "W\r", "P\r"}
	if diff := cmp.Diff(r.writes, want); diff != "" {
		t.Errorf("difference (-got +want):\n%s", diff)
	}
}

func TestClose(t *testing.T) {
	d, r, _ := newTestDev(0)
	if err := d.Close(); err != nil {
		t.Fatal(err)
	}
	if !r.closed {
		t.Error("link not closed")
	}
	// Not an io.Closer.
	if err := New(&bytes.Buffer{}, nil).Close(); err != nil {
		t.Fatal(err)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.DebugLevel)
	d := New(&recorder{}, &Opts{Logger: &l})
	if err := d.Send([]byte("W")); err != nil {
		t.Fatal(err)
	}
	if s := buf.String(); !strings.Contains(s, `"cmd":"W"`) || !strings.Contains(s, `"dev":"buspirate"`) {
		t.Errorf("unexpected log output %q", s)
	}
}
