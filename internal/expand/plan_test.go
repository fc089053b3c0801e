// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/a-happin/zabbrev/internal/abbrev"
)

func testRules() []*abbrev.Rule {
	return []*abbrev.Rule{
		{Name: "git", Trigger: abbrev.Literal("g"), Op: abbrev.ReplaceSelf{Text: "git"}},
		{
			Name:    "git commit",
			Trigger: abbrev.Literal("c"),
			Op:      abbrev.ReplaceSelf{Text: "commit"},
			Context: abbrev.Context{Spec: "git", Global: false},
		},
		{
			Name:    ">/dev/null",
			Trigger: abbrev.Literal("null"),
			Op:      abbrev.ReplaceSelf{Text: ">/dev/null"},
			Context: abbrev.Context{Global: true},
		},
		{Name: "$HOME", Trigger: abbrev.Literal("home"), Op: abbrev.ReplaceSelf{Text: "$HOME"}, Evaluate: true},
		{Name: "default argument", Trigger: abbrev.Literal("rm"), Op: abbrev.Append{Text: "-i"}},
		{
			Name:    "fake command",
			Trigger: abbrev.Regex(`\.tar$`),
			Op:      abbrev.ReplaceFirst{Text: "tar -xvf"},
			Context: abbrev.Context{Spec: "extract"},
		},
		{
			Name:    "function?",
			Trigger: abbrev.Regex(`.+`),
			Op:      abbrev.ReplaceAll{Text: "mkdir -p $1 && cd $1"},
			Context: abbrev.Context{Spec: "mkdircd"},
			Evaluate: true,
		},
		{Name: "associated command", Trigger: abbrev.Regex(`\.java$`), Op: abbrev.Prepend{Text: "java -jar"}},
		{
			Name:    "context replacement",
			Trigger: abbrev.Literal("c"),
			Op:      abbrev.ReplaceContext{Text: "A"},
			Context: abbrev.Context{Spec: "a b"},
		},
	}
}

func TestRunScenarios(t *testing.T) {
	rules := testRules()

	tests := []struct {
		name    string
		lbuffer string
		rbuffer string
		want    Result
	}{
		{"empty", "", "", Result{}},
		{"simple abbr", "g", "", Result{
			Matched: true, Lbuffer: "g", Rbuffer: "",
			Start: 0, End: 1, Snippet: abbrev.Snippet{Simple: "git"},
		}},
		{"simple abbr with rbuffer", "g", " --pager=never", Result{
			Matched: true, Lbuffer: "g", Rbuffer: " --pager=never",
			Start: 0, End: 1, Snippet: abbrev.Snippet{Simple: "git"},
		}},
		{"simple abbr with leading command", "echo hello; g", "", Result{
			Matched: true, Lbuffer: "echo hello; g", Rbuffer: "",
			Start: 12, End: 13, Snippet: abbrev.Snippet{Simple: "git"},
		}},
		{"global abbr", "echo hello null", "", Result{
			Matched: true, Lbuffer: "echo hello null", Rbuffer: "",
			Start: 11, End: 15, Snippet: abbrev.Snippet{Simple: ">/dev/null"},
		}},
		{"non-global abbr with context", "echo hello; git c", " -m hello", Result{
			Matched: true, Lbuffer: "echo hello; git c", Rbuffer: " -m hello",
			Start: 16, End: 17, Snippet: abbrev.Snippet{Simple: "commit"}, ContextSize: 1,
		}},
		{"non-global abbr with miss matched context", "echo git c", "", Result{}},
		{"no matched abbr", "echo", " hello", Result{}},
		{"simple abbr with evaluate=true", "home", "", Result{
			Matched: true, Lbuffer: "home", Rbuffer: "",
			Start: 0, End: 4, Snippet: abbrev.Snippet{Simple: "$HOME"}, Evaluate: true,
		}},
		{"default argument abbr", "rm", "", Result{
			Matched: true, Lbuffer: "rm", Rbuffer: "",
			Start: 2, End: 2, Snippet: abbrev.Snippet{Simple: "-i"}, AppendSpace: true,
		}},
		{"fake command abbr", "extract test.tar", "", Result{
			Matched: true, Lbuffer: "extract test.tar", Rbuffer: "",
			Start: 0, End: 7, Snippet: abbrev.Snippet{Simple: "tar -xvf"}, ContextSize: 1,
		}},
		{"like a function abbr", "mkdircd foo/bar", "", Result{
			Matched: true, Lbuffer: "mkdircd foo/bar", Rbuffer: "",
			Start: 0, End: 15, Snippet: abbrev.Snippet{Simple: "mkdir -p $1 && cd $1"},
			ContextSize: 1, Evaluate: true,
		}},
		{"associated command abbr", "test.java", "", Result{
			Matched: true, Lbuffer: "test.java", Rbuffer: "",
			Start: 0, End: 0, Snippet: abbrev.Snippet{Simple: "java -jar"}, PrependSpace: true,
		}},
		{"context replacement", " a b c", "", Result{
			Matched: true, Lbuffer: " a b c", Rbuffer: "",
			Start: 1, End: 4, Snippet: abbrev.Snippet{Simple: "A"}, ContextSize: 2,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Run(tt.lbuffer, tt.rbuffer, rules)
			assert.Equal(t, tt.want.Matched, got.Matched)
			if !tt.want.Matched {
				return
			}
			assert.Equal(t, tt.want.Lbuffer, got.Lbuffer)
			assert.Equal(t, tt.want.Rbuffer, got.Rbuffer)
			assert.Equal(t, tt.want.Start, got.Start)
			assert.Equal(t, tt.want.End, got.End)
			assert.Equal(t, tt.want.Snippet, got.Snippet)
			assert.Equal(t, tt.want.ContextSize, got.ContextSize)
			assert.Equal(t, tt.want.Evaluate, got.Evaluate)
			assert.Equal(t, tt.want.AppendSpace, got.AppendSpace)
			assert.Equal(t, tt.want.PrependSpace, got.PrependSpace)
			assert.True(t, got.Start <= got.End, "range validity: start <= end")
			assert.True(t, got.End <= len(got.Lbuffer), "range validity: end <= len(lbuffer)")
		})
	}
}

func TestRunRangeValidityInvariant(t *testing.T) {
	rules := testRules()
	for _, lbuffer := range []string{"g", "rm", "test.java", "extract test.tar", " a b c", "mkdircd x"} {
		got := Run(lbuffer, "", rules)
		if !got.Matched {
			continue
		}
		assert.GreaterOrEqual(t, got.Start, 0)
		assert.LessOrEqual(t, got.Start, got.End)
		assert.LessOrEqual(t, got.End, len(lbuffer))
	}
}
