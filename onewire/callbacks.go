// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

// Callbacks is the application notification table (spec §4.4 / §9). The
// original firmware exposed these as three __weak C functions the
// application could individually override; a Go port has no linker-level
// weak symbols, so the three are grouped into one interface installed at
// construction time. The engine never refers to the application by name,
// only through this table.
type Callbacks interface {
	// OnByteReceived fires once per application-level byte: every byte
	// in READING_BITS, and any ROM command byte the engine doesn't
	// recognize.
	OnByteReceived(d *Dev, b byte)

	// OnBitReceived fires once per bit the engine receives from the
	// master, including SEARCH ROM and MATCH ROM selection bits.
	OnBitReceived(d *Dev, bit int)

	// OnResetReceived fires once per reset pulse, after protocol state
	// has already been cleared but before the presence pulse's answering
	// edges are observed.
	OnResetReceived(d *Dev)
}

// NopCallbacks is the default Callbacks: every method is a no-op, matching
// the original firmware's default __weak behavior.
type NopCallbacks struct{}

func (NopCallbacks) OnByteReceived(*Dev, byte) {}
func (NopCallbacks) OnBitReceived(*Dev, int)   {}
func (NopCallbacks) OnResetReceived(*Dev)      {}
