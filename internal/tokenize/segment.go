// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package tokenize locates the command segment currently being typed in a
// shell's left buffer and splits it into quote/escape aware argument tokens.
package tokenize

import "strings"

// commandSeparators are the bytes that end a preceding shell command. They
// are scanned byte-by-byte with no awareness of quoting: a separator inside
// a quoted string from an earlier command on the same line is treated the
// same as an unquoted one. This is a deliberate simplification, not an
// oversight — a full parse of the entire line buffer is unnecessary when
// only the trailing segment is ever expanded.
const commandSeparators = ";&|(`\n"

// SegmentStart returns the byte index one past the last occurrence of any
// command separator in lbuffer, or 0 if none is present.
func SegmentStart(lbuffer string) int {
	i := strings.LastIndexAny(lbuffer, commandSeparators)
	if i < 0 {
		return 0
	}
	return i + 1
}

// Segment returns the command segment currently being typed — the tail of
// lbuffer after the last command separator, with leading ASCII whitespace
// (space, tab, newline) trimmed off — along with that segment's own
// absolute byte offset in lbuffer. Since the segment is always a suffix of
// lbuffer, the offset is simply len(lbuffer)-len(segment); this is the same
// shortcut the planner (package expand) uses to recover absolute token
// offsets without carrying pointer-derived arithmetic.
func Segment(lbuffer string) (start int, segment string) {
	tail := lbuffer[SegmentStart(lbuffer):]
	segment = strings.TrimLeft(tail, " \t\n")
	return len(lbuffer) - len(segment), segment
}
