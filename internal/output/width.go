// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"os"
	"strconv"

	"github.com/apex/log"
	"golang.org/x/term"
)

// DefaultWidth is used when the terminal size cannot be determined.
const DefaultWidth = 120

// WidthFunc reports the terminal width in columns.
type WidthFunc func() int

// TerminalWidth returns the width of the terminal attached to stdout. COLUMNS
// takes precedence when it holds a positive integer. It never fails; when
// nothing can be determined DefaultWidth is returned.
func TerminalWidth() int {
	if c, ok := os.LookupEnv("COLUMNS"); ok {
		if n, err := strconv.Atoi(c); err == nil && n > 0 {
			return n
		}
	}

	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	} else if err != nil {
		log.Debugf("terminal size unavailable: %v", err)
	}

	return DefaultWidth
}

// ResolveWidth prefers an explicit positive override and otherwise asks
// probe, falling back to DefaultWidth.
func ResolveWidth(override int, probe WidthFunc) int {
	if override > 0 {
		return override
	}
	if probe != nil {
		if w := probe(); w > 0 {
			return w
		}
	}
	return DefaultWidth
}
