// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

import "time"

// Bus timing constants, spec §4.2 / §6. These are the decision boundaries
// the link layer classifies elapsed low-pulse durations against, not the
// full legal range the standard allows on each side.
const (
	// presencePulse is how long the slave drives low to answer a reset.
	presencePulse = 100 * time.Microsecond

	// writeZeroPulse is how long the slave drives low to transmit a 0 bit
	// in a read slot. 46µs sits inside the master's 15-60µs sample window.
	writeZeroPulse = 46 * time.Microsecond

	// writeOneBoundary: elapsed < this classifies as a logical 1.
	writeOneBoundary = 20 * time.Microsecond

	// resetBoundary: elapsed in [writeOneBoundary, resetBoundary] classifies
	// as a logical 0; elapsed beyond it classifies as a reset.
	resetBoundary = 100 * time.Microsecond

	// writeAbortBoundary: while WRITING, elapsed beyond this means the
	// master pulled the line low again for a reset rather than releasing
	// it after a read slot; the bit being written (silently, a 1) never
	// arrived.
	writeAbortBoundary = 300 * time.Microsecond
)

// symbol is the classified meaning of a master-driven low pulse.
type symbol int

const (
	symbolOne symbol = iota
	symbolZero
	symbolReset
)

func (s symbol) String() string {
	switch s {
	case symbolOne:
		return "ONE"
	case symbolZero:
		return "ZERO"
	case symbolReset:
		return "RESET"
	default:
		return "UNKNOWN"
	}
}

// classify maps the elapsed time between a falling edge and the matching
// rising edge to a symbol, per the table in spec §4.2.
func classify(elapsed time.Duration) symbol {
	switch {
	case elapsed < writeOneBoundary:
		return symbolOne
	case elapsed <= resetBoundary:
		return symbolZero
	default:
		return symbolReset
	}
}
