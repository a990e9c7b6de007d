// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package onewire implements a 1-Wire slave protocol engine.
//
// It plays the slave role on a single-wire, open-drain, master-driven bus
// conforming to the Maxim/Dallas iButton standard: it classifies master
// edge timing into symbols (reset, logical 0, logical 1), answers resets
// with a presence pulse, and interprets the ROM command stream (SEARCH
// ROM, MATCH ROM, READ ROM, SKIP ROM, CONDITIONAL SEARCH) before handing
// application-level bytes to caller-supplied callbacks.
//
// The engine is interrupt-driven: all protocol state changes happen inside
// HandleEdge, meant to be called from whatever edge-interrupt mechanism
// the platform provides (see cmd/onewire-slave-demo for the periph.io
// gpio.PinIO-based flavor of this). There is no master mode, no overdrive
// timing, no ROM CRC computation, no parasitic-power detection and no
// alarm-condition tracking: CONDITIONAL SEARCH is answered as if the
// device is always alarmed.
package onewire
