// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package registry is the re-architected replacement for the original
// firmware's process-wide OneWireInstances[MAX_ONEWIRE_INSTANCES] array
// (spec.md §9): instead of a package-level global an ISR searches, it is
// an explicit, caller-owned, bounded collection mapping a pin identifier
// to the *onewire.Dev handling that pin. Nothing here is a
// periph.Driver — there is no bus to probe at periph.Init() time, just a
// lookup table the caller's dispatch loop consults.
package registry

import (
	"errors"
	"sync"

	"periph.io/x/periph/conn/gpio"

	"github.com/periph-extra/onewireslave/onewire"
)

// ErrFull is returned by Register when the registry is already at
// capacity — the "configuration error" regime of spec.md §7 regime 3.
var ErrFull = errors.New("registry: at capacity")

// ErrExists is returned by Register when pinID is already registered.
var ErrExists = errors.New("registry: pin already registered")

// ErrNotFound is returned by Lookup/Dispatch for an unregistered pinID.
var ErrNotFound = errors.New("registry: no device registered for pin")

// Registry is a fixed-capacity collection of 1-Wire slave instances,
// indexed by a caller-chosen pin identifier (e.g. a GPIO name like
// "GPIO6"). It is safe for concurrent use: Dispatch is meant to be called
// from whatever single-threaded edge-polling loop feeds HandleEdge, while
// Register/Unregister may be called from ordinary setup/teardown code.
type Registry struct {
	mu       sync.Mutex
	capacity int
	byPin    map[string]*onewire.Dev
}

// New creates a Registry that holds at most capacity devices.
func New(capacity int) *Registry {
	return &Registry{
		capacity: capacity,
		byPin:    make(map[string]*onewire.Dev, capacity),
	}
}

// Register adds d under pinID. It fails with ErrFull once the registry
// holds capacity devices, and with ErrExists if pinID is already taken.
// d.Halt() will unregister it from r automatically.
func (r *Registry) Register(pinID string, d *onewire.Dev) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byPin[pinID]; ok {
		return ErrExists
	}
	if len(r.byPin) >= r.capacity {
		return ErrFull
	}
	r.byPin[pinID] = d
	d.SetUnregisterHook(func() { r.Unregister(pinID) })
	return nil
}

// Unregister removes pinID's entry, if any. It mirrors the original
// firmware's OneWireSlave_DeInit, which simply dropped the instance from
// the global array; it does not Halt the device. Called directly for
// manual teardown, and automatically by a registered Dev's Halt.
func (r *Registry) Unregister(pinID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byPin, pinID)
}

// Lookup returns the device registered under pinID.
func (r *Registry) Lookup(pinID string) (*onewire.Dev, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.byPin[pinID]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

// Len reports how many devices are currently registered.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byPin)
}

// Dispatch looks up pinID and forwards level to its device's HandleEdge.
// This is the Go analogue of the original firmware's
// HAL_GPIO_EXTI_Callback loop over OneWireInstances, searching by pin.
func (r *Registry) Dispatch(pinID string, level gpio.Level) error {
	d, err := r.Lookup(pinID)
	if err != nil {
		return err
	}
	d.HandleEdge(level)
	return nil
}
