// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

import "errors"

// ErrHalted is returned by operations attempted on a Dev after Halt.
var ErrHalted = errors.New("onewire: device is halted")
