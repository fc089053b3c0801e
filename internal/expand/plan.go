// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package expand

import (
	"github.com/a-happin/zabbrev/internal/abbrev"
	"github.com/a-happin/zabbrev/internal/tokenize"
)

// Result is the outcome of one expansion attempt: either no rule matched
// (Matched is false, and every other field is the zero value), or the full
// replacement plan the emitter needs to print a shell fragment.
type Result struct {
	Matched bool

	// Lbuffer and Rbuffer are the untouched input buffers, carried through
	// so the emitter can slice out the unreplaced portions of Lbuffer
	// around [Start, End) without needing them passed separately.
	Lbuffer, Rbuffer string

	// Start and End are byte offsets into lbuffer, with 0 <= Start <= End
	// <= len(lbuffer): the range to overwrite.
	Start, End int

	Snippet      abbrev.Snippet
	AppendSpace  bool
	PrependSpace bool
	Evaluate     bool
	Redraw       bool

	// Segment and Args are carried through so the emitter can bind
	// positional parameters for Evaluate: the tail of Args starting at
	// ContextSize, rendered against Segment.
	Segment     string
	Args        []tokenize.Token
	ContextSize int
}

// Run executes the full pipeline (C1 through C6) for one invocation: locate
// the segment, tokenize it, evaluate the rule set, and plan the
// replacement. It returns Result{Matched: false} when no rule fires —
// callers must treat that as silent success, not an error.
func Run(lbuffer, rbuffer string, rules []*abbrev.Rule) Result {
	segmentStart, segment := tokenize.Segment(lbuffer)
	args := tokenize.Split(segment)
	last := args[len(args)-1].Text(segment)

	m := abbrev.Evaluate(rules, args[:len(args)-1], segment, last)
	if m == nil {
		return Result{}
	}

	result := Plan(lbuffer, segmentStart, segment, args, m)
	result.Lbuffer, result.Rbuffer = lbuffer, rbuffer
	return result
}

// Plan computes the replacement range and snippet form for a winning match,
// following the operation table exactly: L = len(lbuffer), S = segmentStart,
// A = args (A[len(A)-1] is the triggering last token).
func Plan(lbuffer string, segmentStart int, segment string, args []tokenize.Token, m *abbrev.Match) Result {
	L := len(lbuffer)
	S := segmentStart
	last := args[len(args)-1]

	var start, end int
	var appendSpace, prependSpace bool

	switch op := m.Rule.Op.(type) {
	case abbrev.ReplaceSelf:
		start, end = L-(last.End-last.Start), L

	case abbrev.ReplaceFirst:
		start = S
		end = S + (args[0].End - args[0].Start)

	case abbrev.ReplaceContext:
		if m.ContextSize == 0 {
			start, end = S, S
			prependSpace = true
		} else {
			k := m.ContextSize - 1
			start = S
			end = S + args[k].End
		}

	case abbrev.ReplaceAll:
		start, end = S, L

	case abbrev.Append:
		start, end = L, L
		appendSpace = true

	case abbrev.Prepend:
		start, end = S, S
		prependSpace = true

	default:
		_ = op
		start, end = L, L
	}

	return Result{
		Matched:      true,
		Start:        start,
		End:          end,
		Snippet:      abbrev.NewSnippet(m.Rule.Op.Snippet(), m.Rule.Cursor),
		AppendSpace:  appendSpace,
		PrependSpace: prependSpace,
		Evaluate:     m.Rule.Evaluate,
		Redraw:       m.Rule.Redraw,
		Segment:      segment,
		Args:         args,
		ContextSize:  m.ContextSize,
	}
}
