// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

import (
	"errors"
	"time"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/physic"
)

// fakeBus is a hand-rolled gpio.PinIO double, in the style of
// hostextra/d2xx/driver_test.go's d2xxFakeHandle: just enough of the real
// interface to drive the engine under test, recording every Out() call so
// a test can assert on presence/write-0 pulses without a real bus.
type fakeBus struct {
	level gpio.Level
	pulls []gpio.Level
}

func (f *fakeBus) String() string         { return "fakeBus" }
func (f *fakeBus) Halt() error            { return nil }
func (f *fakeBus) Name() string           { return "fakeBus" }
func (f *fakeBus) Number() int            { return 0 }
func (f *fakeBus) Function() string       { return "" }
func (f *fakeBus) DefaultPull() gpio.Pull { return gpio.PullUp }
func (f *fakeBus) Pull() gpio.Pull        { return gpio.PullUp }

func (f *fakeBus) In(gpio.Pull, gpio.Edge) error  { return nil }
func (f *fakeBus) Read() gpio.Level               { return f.level }
func (f *fakeBus) WaitForEdge(time.Duration) bool { return false }

func (f *fakeBus) Out(l gpio.Level) error {
	f.level = l
	f.pulls = append(f.pulls, l)
	return nil
}

func (f *fakeBus) PWM(gpio.Duty, physic.Frequency) error {
	return errors.New("fakeBus: PWM not supported")
}

// lowPulses reports how many times Out(gpio.Low) was called — one per
// presence pulse or write-0 pulse driven during the test.
func (f *fakeBus) lowPulses() int {
	n := 0
	for _, l := range f.pulls {
		if l == gpio.Low {
			n++
		}
	}
	return n
}

// fakeClock is a deterministic, test-controlled stand-in for the
// microcontroller's free-running µs timer: Reset is a no-op, and Elapsed
// returns whatever the test last set, rather than real wall-clock time.
// This is what lets the boundary tests in link_test.go assert on exactly
// 20µs/100µs/101µs/300µs/301µs without flaking on scheduler jitter.
type fakeClock struct {
	elapsed time.Duration
}

func (c *fakeClock) Reset() {}

func (c *fakeClock) Elapsed() time.Duration {
	return c.elapsed
}

// recordingCallbacks captures every notification for assertions.
type recordingCallbacks struct {
	bytes  []byte
	bits   []int
	resets int
}

func (r *recordingCallbacks) OnByteReceived(_ *Dev, b byte) {
	r.bytes = append(r.bytes, b)
}

func (r *recordingCallbacks) OnBitReceived(_ *Dev, bit int) {
	r.bits = append(r.bits, bit)
}

func (r *recordingCallbacks) OnResetReceived(_ *Dev) {
	r.resets++
}

// newTestDev builds a Dev wired to a fakeBus/fakeClock/recordingCallbacks
// triple, returning all four so a test can drive edges and assert state.
func newTestDev(rom uint64) (*Dev, *fakeBus, *fakeClock, *recordingCallbacks) {
	bus := &fakeBus{level: gpio.High}
	cb := &recordingCallbacks{}
	d := New(Config{ROM: rom, Bus: bus, Callbacks: cb})
	clk := &fakeClock{}
	d.clock = clk
	return d, bus, clk, cb
}
