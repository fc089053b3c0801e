// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package abbrev

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// triggerKeys and operationKeys enumerate the mutually-exclusive YAML keys
// recognized for a rule's trigger and operation. Exactly one key from each
// set must be present; anything else is a configuration-fatal error
// (package config surfaces it before any expansion output is produced).
var triggerKeys = []string{"abbr", "abbr-prefix", "abbr-suffix", "abbr-regex"}
var operationKeys = []string{
	"replace-self", "replace-first", "replace-context", "replace-all", "append", "prepend",
}

// UnmarshalYAML decodes a rule from its flattened YAML representation. The
// trigger and operation are polymorphic on which key is present, so the
// rule is first decoded into a generic map and then picked apart field by
// field rather than via a fixed struct tag layout.
func (r *Rule) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]yaml.Node
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("abbrev rule: %w", err)
	}

	rule := Rule{}

	if n, ok := raw["name"]; ok {
		if err := n.Decode(&rule.Name); err != nil {
			return fmt.Errorf("abbrev rule: name: %w", err)
		}
	}

	if n, ok := raw["context"]; ok {
		if err := n.Decode(&rule.Context.Spec); err != nil {
			return fmt.Errorf("abbrev rule: context: %w", err)
		}
	}

	if n, ok := raw["global"]; ok {
		if err := n.Decode(&rule.Context.Global); err != nil {
			return fmt.Errorf("abbrev rule: global: %w", err)
		}
	}

	trigger, err := decodeOneOf(raw, triggerKeys, "trigger")
	if err != nil {
		return err
	}
	var s string
	if err := raw[trigger].Decode(&s); err != nil {
		return fmt.Errorf("abbrev rule: %s: %w", trigger, err)
	}
	switch trigger {
	case "abbr":
		rule.Trigger = Literal(s)
	case "abbr-prefix":
		rule.Trigger = Prefix(s)
	case "abbr-suffix":
		rule.Trigger = Suffix(s)
	case "abbr-regex":
		rule.Trigger = Regex(s)
	}

	operation, err := decodeOneOf(raw, operationKeys, "operation")
	if err != nil {
		return err
	}
	var snippet string
	if err := raw[operation].Decode(&snippet); err != nil {
		return fmt.Errorf("abbrev rule: %s: %w", operation, err)
	}
	switch operation {
	case "replace-self":
		rule.Op = ReplaceSelf{Text: snippet}
	case "replace-first":
		rule.Op = ReplaceFirst{Text: snippet}
	case "replace-context":
		rule.Op = ReplaceContext{Text: snippet}
	case "replace-all":
		rule.Op = ReplaceAll{Text: snippet}
	case "append":
		rule.Op = Append{Text: snippet}
	case "prepend":
		rule.Op = Prepend{Text: snippet}
	}

	if n, ok := raw["cursor"]; ok {
		if err := n.Decode(&rule.Cursor); err != nil {
			return fmt.Errorf("abbrev rule: cursor: %w", err)
		}
	}

	if n, ok := raw["evaluate"]; ok {
		if err := n.Decode(&rule.Evaluate); err != nil {
			return fmt.Errorf("abbrev rule: evaluate: %w", err)
		}
	}

	if n, ok := raw["redraw"]; ok {
		if err := n.Decode(&rule.Redraw); err != nil {
			return fmt.Errorf("abbrev rule: redraw: %w", err)
		}
	}

	*r = rule
	return nil
}

// decodeOneOf finds which single key of candidates is present in raw,
// erroring if zero or more than one are set.
func decodeOneOf(raw map[string]yaml.Node, candidates []string, label string) (string, error) {
	found := ""
	for _, key := range candidates {
		if _, ok := raw[key]; ok {
			if found != "" {
				return "", fmt.Errorf(
					"abbrev rule: exactly one %s key required, got both %q and %q", label, found, key,
				)
			}
			found = key
		}
	}
	if found == "" {
		return "", fmt.Errorf("abbrev rule: missing %s key (one of %v)", label, candidates)
	}
	return found, nil
}
