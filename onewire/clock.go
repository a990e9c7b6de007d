// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

import "time"

// Clock abstracts the timer_reset()/timer_elapsed_µs() primitives of
// spec §4.1. Tests substitute a fake so that the boundary behaviors in
// spec §8 (20µs, 100µs, 101µs, 300µs, 301µs) can be checked exactly,
// without relying on the scheduler to land a real sleep on a microsecond
// boundary.
type Clock interface {
	Reset()
	Elapsed() time.Duration
}

// systemClock is the production Clock, backed by the monotonic wall
// clock. A microcontroller port would instead back this with a free-running
// hardware timer, per spec §4.1.
type systemClock struct {
	start time.Time
}

func newSystemClock() *systemClock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) Reset() {
	c.start = time.Now()
}

func (c *systemClock) Elapsed() time.Duration {
	return time.Since(c.start)
}
