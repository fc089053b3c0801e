// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package abbrev

import "strings"

// Snippet is the replacement text produced when a rule fires. Simple carries
// the whole snippet; Divided carries the two halves either side of the
// rule's cursor marker, signaling where the cursor should land once the
// shell applies the replacement.
type Snippet struct {
	Simple  string
	Before  string
	After   string
	Divided bool
}

// NewSnippet splits text on the first occurrence of cursor, if cursor is
// non-empty and present in text. Otherwise it returns a Simple snippet
// wrapping text unchanged.
func NewSnippet(text string, cursor string) Snippet {
	if cursor != "" {
		if before, after, found := strings.Cut(text, cursor); found {
			return Snippet{Before: before, After: after, Divided: true}
		}
	}
	return Snippet{Simple: text}
}
