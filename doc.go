// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package onewireslave is for documentation only.
//
// onewireslave implements a 1-Wire slave protocol engine on top of
// periph.io's GPIO abstractions: package onewire holds the link-layer and
// ROM-layer state machines, package registry holds the bounded
// pin-to-device collection a host dispatch loop consults, and
// cmd/onewire-slave-demo wires both to a real GPIO pin.
package onewireslave
