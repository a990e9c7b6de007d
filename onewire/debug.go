// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package onewire

import "log"

// verbose gates the package's debug logging. Off by default, same as
// hostextra/d2xx's commented-out d2xxLoggingHandle wrapper: turning it on
// costs a log.Printf per symbol/command, which is far too much overhead
// to leave on by default on a microcontroller, but useful on a bench.
var verbose bool

// SetVerbose enables or disables per-symbol/per-command debug logging.
func SetVerbose(v bool) {
	verbose = v
}

func logf(format string, args ...interface{}) {
	if verbose {
		log.Printf(format, args...)
	}
}
