// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

import (
	"time"

	"periph.io/x/periph/conn/gpio"
)

// The helpers below play the role of a virtual 1-Wire master driving the
// engine under test through fakeBus/fakeClock, the way scenario tests in
// spec §8 are phrased ("Master: low 500µs, release. Slave: ...").

// sendReset drives a full reset pulse and lets the slave's presence pulse
// play out to completion, leaving the link layer back in R_IDLE.
func sendReset(d *Dev, clk *fakeClock) {
	d.HandleEdge(gpio.Low)
	clk.elapsed = 500 * time.Microsecond
	d.HandleEdge(gpio.High) // classified as reset -> presence pulse driven synchronously
	d.HandleEdge(gpio.Low)  // presence pulse's own falling edge
	d.HandleEdge(gpio.High) // presence pulse's own rising edge -> R_IDLE
}

// sendBit drives one master-write bit (read by the slave).
func sendBit(d *Dev, clk *fakeClock, bit int) {
	d.HandleEdge(gpio.Low)
	if bit != 0 {
		clk.elapsed = 10 * time.Microsecond
	} else {
		clk.elapsed = 60 * time.Microsecond
	}
	d.HandleEdge(gpio.High)
}

// sendByte drives one byte LSB-first, per the wire order of spec §3/§6.
func sendByte(d *Dev, clk *fakeClock, b byte) {
	for i := 0; i < 8; i++ {
		sendBit(d, clk, int((b>>uint(i))&1))
	}
}

// readSlot drives one master read slot and reports the bit the slave
// answered with, determined by whether the slave drove the bus low
// (transmits 0) or left it alone (transmits 1) — not by elapsed time,
// since the WRITING state doesn't classify elapsed beyond the abort
// threshold.
func readSlot(d *Dev, bus *fakeBus, clk *fakeClock) int {
	before := len(bus.pulls)
	d.HandleEdge(gpio.Low)
	clk.elapsed = 50 * time.Microsecond
	d.HandleEdge(gpio.High)
	if len(bus.pulls) > before {
		return 0
	}
	return 1
}

// readByte drives eight read slots and assembles the LSB-first result.
func readByte(d *Dev, bus *fakeBus, clk *fakeClock) byte {
	var b byte
	for i := 0; i < 8; i++ {
		if readSlot(d, bus, clk) != 0 {
			b |= 1 << uint(i)
		}
	}
	return b
}
