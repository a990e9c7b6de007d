// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

import (
	"fmt"
	"sync"
)

// linkState is the link-layer state of spec §3.
type linkState int

const (
	stateRIdle linkState = iota
	stateMasterSendsData
	stateWIdle
	stateWriting
	stateSendingPresence
)

func (s linkState) String() string {
	switch s {
	case stateRIdle:
		return "R_IDLE"
	case stateMasterSendsData:
		return "MASTER_SENDS_DATA"
	case stateWIdle:
		return "W_IDLE"
	case stateWriting:
		return "WRITING"
	case stateSendingPresence:
		return "SENDING_PRESENCE"
	default:
		return "UNKNOWN"
	}
}

// Config describes the fields the application must supply at
// construction time (spec §3/§6): a 64-bit ROM address, unique per
// device on the bus, and the bus the slave answers on.
type Config struct {
	// ROM is the 64-bit device identifier, sent LSB-first, byte 0 (the
	// least-significant byte) first. The engine does not compute or
	// validate its CRC; the application supplies it whole.
	ROM uint64
	// Bus is the pin this slave listens and drives on.
	Bus Bus
	// Callbacks receives byte/bit/reset notifications. Nil installs
	// NopCallbacks.
	Callbacks Callbacks
}

// Dev is a single 1-Wire slave instance: the slave instance of spec §3.
// All of its mutable state is touched under mu, which stands in for the
// "all state transitions occur inside the edge ISR, interrupts masked"
// discipline of spec §5 — HandleEdge and StartTransmit/TransmitBit take
// it, so a non-ISR goroutine staging a transmit can't tear a bit-in-flight
// edge handling.
type Dev struct {
	mu sync.Mutex

	rom       uint64
	bus       Bus
	clock     Clock
	callbacks Callbacks

	linkState linkState
	romState  romState

	scanMask uint64

	rx rxFramer
	tx txFramer

	// scratch is the engine-owned staging area for single-bit
	// transmissions, SEARCH ROM pairs, and the READ ROM payload. The
	// engine reserves the right to overwrite it between read slots
	// (spec §9); callers must not alias it via StartTransmit.
	scratch [8]byte

	halted bool

	// onUnregister, if set, is called once from Halt so whatever registry
	// holds this Dev drops it too. Installed by registry.Registry.Register;
	// nil for a Dev that was never registered.
	onUnregister func()
}

// SetUnregisterHook installs the function Halt calls to remove this Dev
// from its owning collection. It exists for registry.Registry; application
// code has no reason to call it directly.
func (d *Dev) SetUnregisterHook(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onUnregister = f
}

// New constructs a Dev. It does not touch the bus; callers that want the
// line idle-high before the first edge arrives should do so themselves
// before wiring HandleEdge to their interrupt source.
func New(cfg Config) *Dev {
	cb := cfg.Callbacks
	if cb == nil {
		cb = NopCallbacks{}
	}
	d := &Dev{
		rom:       cfg.ROM,
		bus:       cfg.Bus,
		clock:     newSystemClock(),
		callbacks: cb,
	}
	d.rx.reset()
	return d
}

// String implements conn.Resource.
func (d *Dev) String() string {
	return fmt.Sprintf("onewire.Dev{ROM: %#016x}", d.rom)
}

// Halt implements conn.Resource. It stops HandleEdge from touching
// protocol state any further, and unregisters this Dev from whatever
// registry.Registry it was registered in, if any; the bus itself is left
// as-is, since the engine never owns the pin's idle level, only its own
// pulses.
func (d *Dev) Halt() error {
	d.mu.Lock()
	d.halted = true
	unregister := d.onUnregister
	d.onUnregister = nil
	d.mu.Unlock()
	if unregister != nil {
		unregister()
	}
	return nil
}

// ROM returns the device's 64-bit identifier.
func (d *Dev) ROM() uint64 {
	return d.rom
}
