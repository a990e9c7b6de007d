// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

import (
	"time"

	"periph.io/x/periph/conn/gpio"
)

// Bus is the physical-layer contract the engine depends on (spec §4.1):
// pull the line low for a bounded duration, and read back its level. Any
// open-drain, pulled-up periph.io gpio.PinIO satisfies it directly; there
// is no 1-Wire-specific method to implement.
//
// HandleEdge is driven by whatever delivers edge notifications on this
// pin; the engine itself never calls In/WaitForEdge or Read, only Out.
type Bus interface {
	gpio.PinIO
}

// driveLow pulls b low for d and releases it again. This is the
// send_low(pin, duration_µs) primitive of spec §4.1; callers of it from
// within HandleEdge hold Dev.mu, so it is implicitly serialized with
// every other bus access.
func driveLow(b Bus, d time.Duration) error {
	if err := b.Out(gpio.Low); err != nil {
		return err
	}
	time.Sleep(d)
	return b.Out(gpio.High)
}
