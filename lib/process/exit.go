// Copyright 2026 The Robofleet Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"fmt"
	"io"
	"os"
)

// exitCoder is implemented by errors that carry their own exit code.
// Commands that already printed their result return one so that no
// redundant "error:" line follows.
type exitCoder interface {
	ExitCode() int
}

// Exit ends the process for the error returned by a command tree: code 0
// for nil, the error's own code when it has one, and otherwise 1 after
// printing "error: err".
func Exit(err error) {
	os.Exit(Report(os.Stderr, err))
}

// Report writes err to w as Exit would and returns the exit code.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if coder, ok := err.(exitCoder); ok {
		return coder.ExitCode()
	}
	fmt.Fprintf(w, "error: %v\n", err)
	return 1
}
