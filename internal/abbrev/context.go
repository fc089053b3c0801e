// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package abbrev

import (
	"strings"

	"github.com/a-happin/zabbrev/internal/tokenize"
)

// Context is the configured prefix of arguments that must precede the
// triggering token for a rule to fire.
type Context struct {
	// Spec is the whitespace-separated literal prefix, e.g. "git commit".
	Spec string
	// Global allows additional tokens to separate Spec from the last token.
	// Without it, the context must be followed immediately by the last
	// token: context_size must equal len(argsUntilLast).
	Global bool
}

// Match walks argsUntilLast against c.Spec one token at a time. It requires
// each successive token to be an exact prefix of the remaining context, with
// the context immediately afterwards either exhausted or starting with
// whitespace — so a context of "git" never matches a token of "github". Note
// the asymmetry: this boundary check reads whitespace out of the *context
// string*, not out of the *argument token* — the token itself is compared
// for whole-string equality against the consumed prefix, never partially.
// Returns the number of tokens consumed and whether the match (including
// the global/non-global trailing gate) succeeds.
func (c Context) Match(argsUntilLast []tokenize.Token, segment string) (size int, ok bool) {
	context := strings.TrimLeft(c.Spec, " \t\n\v\f\r")
	i := 0
	for context != "" {
		if i >= len(argsUntilLast) {
			return 0, false
		}
		arg := argsUntilLast[i].Text(segment)
		rest, found := strings.CutPrefix(context, arg)
		if !found {
			return 0, false
		}
		if rest != "" && !isContextSpace(rest[0]) {
			return 0, false
		}
		context = strings.TrimLeft(rest, " \t\n\v\f\r")
		i++
	}

	if c.Global || i == len(argsUntilLast) {
		return i, true
	}
	return 0, false
}

func isContextSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
