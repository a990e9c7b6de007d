// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

import "periph.io/x/periph/conn/gpio"

// HandleEdge is the on_edge(instance, new_level) primitive of spec §4.1:
// call it from whatever delivers edge interrupts on this slave's pin,
// including edges caused by the slave's own drive (its own presence pulse
// and write-0 pulses). level is the pin level observed *after* the edge.
//
// HandleEdge runs to completion without suspending, other than the
// bounded busy-wait inside driveLow when this edge triggers a presence
// pulse or a write-0 pulse — matching the single-threaded, non-reentrant
// ISR model of spec §5. A halted Dev ignores every edge.
func (d *Dev) HandleEdge(level gpio.Level) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return
	}
	switch d.linkState {
	case stateRIdle:
		if level == gpio.Low {
			d.clock.Reset()
			d.linkState = stateMasterSendsData
		}
	case stateMasterSendsData:
		if level != gpio.High {
			break
		}
		sym := classify(d.clock.Elapsed())
		logf("onewire: classified %v as %v", d.clock.Elapsed(), sym)
		switch sym {
		case symbolOne:
			d.linkState = stateRIdle
			d.receiveBit(1)
		case symbolZero:
			d.linkState = stateRIdle
			d.receiveBit(0)
		case symbolReset:
			d.enterReset()
		}
	case stateSendingPresence:
		if level == gpio.Low {
			// The falling edge of our own presence pulse; nothing to do.
			break
		}
		d.linkState = stateRIdle
	case stateWIdle:
		if level == gpio.Low {
			d.clock.Reset()
			d.writeNextBit()
			d.linkState = stateWriting
		}
	case stateWriting:
		if level != gpio.High {
			break
		}
		if d.clock.Elapsed() > writeAbortBoundary {
			// The master pulled the line low again before releasing it
			// from what would have been our read slot: it aborted the
			// transaction with a reset rather than sampling our bit.
			d.enterReset()
			break
		}
		d.tx.advance()
		if d.tx.done() {
			d.linkState = stateRIdle
		} else {
			d.linkState = stateWIdle
		}
	default:
		// Unknown link state; the edge is ignored. Spurious edges in the
		// known states are ignored silently by their cases above.
		logf("onewire: spurious edge in state %s, level %v", d.linkState, level)
	}
}

// enterReset answers a detected reset pulse with a presence pulse, clears
// protocol state, and notifies the application. It is reached either from
// MASTER_SENDS_DATA (a pulse classified as a reset) or from WRITING (the
// master aborting a pending write); spec §9 Open Question 2 asks that both
// paths land here explicitly rather than falling through a shared case.
func (d *Dev) enterReset() {
	if err := driveLow(d.bus, presencePulse); err != nil {
		logf("onewire: presence pulse failed: %v", err)
	}
	d.resetProtocolState()
	d.linkState = stateSendingPresence
	d.callbacks.OnResetReceived(d)
}

// resetProtocolState implements invariant 3 of spec §3: any reset clears
// both framers and returns the ROM state to READING_COMMAND.
func (d *Dev) resetProtocolState() {
	d.romState = romReadingCommand
	d.scanMask = 0
	d.rx.reset()
	d.tx = txFramer{}
}

// writeNextBit implements the W_IDLE+LOW transition of spec §4.2: a 0 bit
// is transmitted by driving the line low for writeZeroPulse; a 1 bit is
// transmitted by doing nothing, since the master already released the
// line.
func (d *Dev) writeNextBit() {
	if d.tx.done() {
		return
	}
	if d.tx.bit() == 0 {
		if err := driveLow(d.bus, writeZeroPulse); err != nil {
			logf("onewire: write-0 pulse failed: %v", err)
		}
	}
}
