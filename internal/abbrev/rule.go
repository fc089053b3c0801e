// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package abbrev

import (
	"fmt"

	"github.com/a-happin/zabbrev/internal/diagnostic"
	"github.com/a-happin/zabbrev/internal/tokenize"
)

// Rule is one configured abbreviation: a context gate, a trigger predicate,
// and an operation to apply when both succeed. Rule is immutable once
// loaded; the zero value is never meaningful on its own (Trigger and
// Operation must always be set by the config loader).
type Rule struct {
	Name     string
	Context  Context
	Trigger  Trigger
	Op       Operation
	Cursor   string
	Evaluate bool
	Redraw   bool
}

// DisplayName returns Name if set, else the rule's snippet text — the same
// fallback used when reporting an invalid-regex diagnostic.
func (r *Rule) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Op.Snippet()
}

// Match reports whether r fires for the given token stream: the context
// must match argsUntilLast (producing contextSize), and only then is the
// trigger checked against last — context is evaluated first so a malformed
// regex trigger never pays for a context that was never going to match.
func (r *Rule) Match(argsUntilLast []tokenize.Token, segment string, last string) (contextSize int, ok bool) {
	size, ok := r.Context.Match(argsUntilLast, segment)
	if !ok {
		return 0, false
	}

	matched, err := r.Trigger.Match(last)
	if err != nil {
		diagnostic.Warnf("invalid regex in abbrev '%s': %s", r.DisplayName(), err)
		return 0, false
	}
	return size, matched
}

// Match pairs the rule that won first-match priority with the number of
// leading tokens its context consumed.
type Match struct {
	Rule        *Rule
	ContextSize int
}

// Evaluate iterates rules in declaration order and returns the first one
// whose context and trigger both succeed — first match wins. An empty last
// token short-circuits before any rule is consulted: there is no
// abbreviation to trigger on an empty cursor word.
func Evaluate(rules []*Rule, argsUntilLast []tokenize.Token, segment string, last string) *Match {
	if last == "" {
		return nil
	}
	for _, rule := range rules {
		if size, ok := rule.Match(argsUntilLast, segment, last); ok {
			return &Match{Rule: rule, ContextSize: size}
		}
	}
	return nil
}

func (r *Rule) String() string {
	return fmt.Sprintf("Rule{%s}", r.DisplayName())
}
