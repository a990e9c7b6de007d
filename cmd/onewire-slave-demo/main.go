// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// onewire-slave-demo answers 1-Wire master traffic on a single GPIO pin,
// using the onewire engine. It plays the role of the original firmware's
// HAL_GPIO_EXTI_Callback: since ordinary host GPIO on Linux/Raspberry Pi
// has no hardware edge-interrupt vector the way a microcontroller ISR
// does, it instead runs a dedicated goroutine that blocks on
// gpio.PinIn.WaitForEdge and feeds every edge into onewire.Dev.HandleEdge
// — processed one at a time, exactly mirroring the "interrupt masked
// while the ISR executes" discipline of spec.md §5.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"time"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"

	"github.com/periph-extra/onewireslave/onewire"
	"github.com/periph-extra/onewireslave/registry"
)

// demoCallbacks logs every byte and reset notification (bit notifications
// are ignored), standing in for a real
// application's ROM-agnostic byte handler.
type demoCallbacks struct{}

func (demoCallbacks) OnByteReceived(d *onewire.Dev, b byte) {
	log.Printf("%s: byte received: %#02x", d, b)
}

func (demoCallbacks) OnBitReceived(*onewire.Dev, int) {}

func (demoCallbacks) OnResetReceived(d *onewire.Dev) {
	log.Printf("%s: reset", d)
}

func mainImpl() error {
	verbose := flag.Bool("v", false, "verbose mode")
	pinName := flag.String("pin", "GPIO6", "GPIO pin the 1-Wire bus is connected to")
	rom := flag.Uint64("rom", 0x0123456789ABCDEF, "64-bit ROM address to answer as")
	flag.Parse()
	if !*verbose {
		log.SetOutput(ioutil.Discard)
	}
	log.SetFlags(log.Lmicroseconds)
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	onewire.SetVerbose(*verbose)

	if _, err := host.Init(); err != nil {
		return err
	}

	pin := gpioreg.ByName(*pinName)
	if pin == nil {
		return fmt.Errorf("onewire-slave-demo: no such pin %q", *pinName)
	}
	if err := pin.In(gpio.PullUp, gpio.BothEdges); err != nil {
		return fmt.Errorf("onewire-slave-demo: %w", err)
	}

	d := onewire.New(onewire.Config{ROM: *rom, Bus: pin, Callbacks: demoCallbacks{}})
	reg := registry.New(1)
	if err := reg.Register(*pinName, d); err != nil {
		return err
	}

	fmt.Printf("Answering on %s as ROM %#016x. Ctrl-C to stop.\n", *pinName, *rom)
	const waitForever = -1 * time.Second
	for {
		if !pin.WaitForEdge(waitForever) {
			return errors.New("onewire-slave-demo: edge wait failed")
		}
		if err := reg.Dispatch(*pinName, pin.Read()); err != nil {
			return err
		}
	}
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "onewire-slave-demo: %s.\n", err)
		os.Exit(1)
	}
}
