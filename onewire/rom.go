// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

// romState is the network-layer (ROM) state of spec §3.
type romState int

const (
	// romReadingBits is both the idle payload-reading state and the
	// engine's pre-first-reset initial state (spec §3: "Initial:
	// READING_BITS ... becomes READING_COMMAND on first byte after any
	// reset"). It is romState's zero value so a zero-value Dev starts
	// here without an explicit assignment, matching the original
	// firmware's zero-initialized struct.
	romReadingBits romState = iota
	romReadingCommand
	romMatch
	romSearch
	romConditionalSearch
	romWait
)

func (s romState) String() string {
	switch s {
	case romReadingBits:
		return "READING_BITS"
	case romReadingCommand:
		return "READING_COMMAND"
	case romMatch:
		return "MATCH_ROM"
	case romSearch:
		return "SEARCH_ROM"
	case romConditionalSearch:
		return "CONDITIONAL_SEARCH"
	case romWait:
		return "WAIT"
	default:
		return "UNKNOWN"
	}
}

// Maxim ROM command codes, spec §6.
const (
	cmdSearchROM         byte = 0xF0
	cmdConditionalSearch byte = 0xEC
	cmdReadROM           byte = 0x33
	cmdMatchROM          byte = 0x55
	cmdSkipROM           byte = 0xCC
)

// receiveBit is invoked by the link layer exactly once per received bit
// (spec §4.3), and always after the link layer has already returned
// itself to R_IDLE, so any ROM-triggered transmit below can override that
// back to W_IDLE.
func (d *Dev) receiveBit(bit int) {
	switch d.romState {
	case romReadingCommand:
		if d.rx.push(bit) {
			cmd := d.rx.take()
			d.dispatchCommand(cmd)
		}
	case romReadingBits:
		if d.rx.push(bit) {
			b := d.rx.take()
			d.callbacks.OnByteReceived(d, b)
		}
	case romMatch:
		d.compareBit(bit, romReadingBits)
	case romSearch, romConditionalSearch:
		d.searchCompareBit(bit)
	case romWait:
		// ignore every bit until the next reset restores READING_COMMAND.
	}
	d.callbacks.OnBitReceived(d, bit)
}

// dispatchCommand interprets the first post-reset byte as a ROM command
// (spec §4.3's table) and installs whatever ROM state and/or pending
// transmission that command requires. Unrecognized codes are handed to
// the application's byte callback and leave the ROM state in
// READING_BITS, same as SKIP ROM.
func (d *Dev) dispatchCommand(cmd byte) {
	logf("onewire: rom command %#02x", cmd)
	switch cmd {
	case cmdSearchROM:
		d.scanMask = 1
		d.beginSearchPair()
		d.romState = romSearch
	case cmdConditionalSearch:
		// Always alarmed: answered identically to SEARCH ROM (spec §9).
		d.scanMask = 1
		d.beginSearchPair()
		d.romState = romConditionalSearch
	case cmdReadROM:
		d.beginReadROM()
		d.romState = romReadingBits
	case cmdMatchROM:
		d.scanMask = 1
		d.romState = romMatch
	case cmdSkipROM:
		d.romState = romReadingBits
	default:
		d.romState = romReadingBits
		d.callbacks.OnByteReceived(d, cmd)
	}
}

// compareBit implements the MATCH ROM bit-compare step: advance the scan
// mask on a match, transitioning to done once every ROM bit has been
// checked; on the first mismatch, stop answering until the next reset.
func (d *Dev) compareBit(bit int, done romState) {
	romBit := 0
	if d.rom&d.scanMask != 0 {
		romBit = 1
	}
	if bit != romBit {
		d.romState = romWait
		return
	}
	d.scanMask <<= 1
	if d.scanMask == 0 {
		d.romState = done
	}
}

// searchCompareBit implements the SEARCH ROM / CONDITIONAL SEARCH
// bit-compare step. Unlike MATCH ROM, a match that doesn't finish the
// scan must also queue the next (ROM_bit, ~ROM_bit) pair for
// transmission before the next read slot arrives.
func (d *Dev) searchCompareBit(bit int) {
	romBit := 0
	if d.rom&d.scanMask != 0 {
		romBit = 1
	}
	if bit != romBit {
		d.romState = romWait
		return
	}
	d.scanMask <<= 1
	if d.scanMask == 0 {
		d.romState = romReadingBits
		return
	}
	d.beginSearchPair()
}

// beginSearchPair stages the (ROM_bit, ~ROM_bit) pair for the bit
// currently selected by scanMask and arms the link layer to send it
// across the next two read slots.
func (d *Dev) beginSearchPair() {
	romBit := byte(0)
	if d.rom&d.scanMask != 0 {
		romBit = 1
	}
	d.scratch[0] = romBit | ((romBit ^ 1) << 1)
	d.startTransmitLocked(d.scratch[:1], 2)
}

// beginReadROM builds the 8-byte scratch buffer for READ ROM: byte 0 is
// bits 7..0 of the ROM, byte 1 is bits 15..8, and so on (spec §9 Open
// Question 1 — the mandated interpretation, not the ambiguous C
// arithmetic it was distilled from).
func (d *Dev) beginReadROM() {
	for i := 0; i < 8; i++ {
		d.scratch[i] = byte(d.rom >> uint(i*8))
	}
	d.startTransmitLocked(d.scratch[:8], 64)
}
