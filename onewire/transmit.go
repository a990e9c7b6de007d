// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

// StartTransmit installs buf as the pending transmission and arms the
// link layer to answer the next read slots with it, spec §4.4. It is
// best-effort: a master reset aborts the transmission, clears the
// framer, and no error is raised. buf must stay valid (and must not be
// mutated by the caller) until either the buffer is exhausted or the
// next reset, whichever comes first — the engine holds a reference, not
// a copy.
//
// StartTransmit does not check the ROM or link state: it moves the link
// layer to W_IDLE at once, even in WAIT or during SENDING_PRESENCE, and
// the next falling edge on the bus is answered as a read slot, whether or
// not the master meant it as one.
func (d *Dev) StartTransmit(buf []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return ErrHalted
	}
	d.startTransmitLocked(buf, len(buf)*8)
	return nil
}

// TransmitBit stages a single bit for transmission using the engine's
// internal scratch buffer (spec §4.4).
func (d *Dev) TransmitBit(bit int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return ErrHalted
	}
	b := byte(0)
	if bit != 0 {
		b = 1
	}
	d.scratch[0] = b
	d.startTransmitLocked(d.scratch[:1], 1)
	return nil
}

// startTransmitLocked arms the transmit framer and the link layer's
// W_IDLE state. Callers must already hold mu — it's used both by the
// public Start*/Transmit* entry points and, internally, by the ROM layer
// mid-bit (SEARCH ROM pairs, READ ROM), where mu is already held by
// HandleEdge.
func (d *Dev) startTransmitLocked(buf []byte, nbits int) {
	d.tx = newTxFramer(buf, nbits)
	d.linkState = stateWIdle
}
