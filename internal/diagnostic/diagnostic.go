// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package diagnostic prints cosmetic, non-fatal warnings to stderr. These
// are not structured errors: a rule with an invalid regex trigger is logged
// here and then treated as non-matching, never returned up the call stack.
package diagnostic

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
)

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red

// Warnf formats and writes a red-styled line to stderr, or a plain line when
// color is disabled (NO_COLOR set, or stderr is not a terminal).
func Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if colorDisabled() {
		fmt.Fprintln(os.Stderr, msg)
		return
	}
	fmt.Fprintln(os.Stderr, warnStyle.Render(msg))
}

func colorDisabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return !isTerminal()
}

func isTerminal() bool {
	info, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
