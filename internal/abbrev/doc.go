// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package abbrev holds the abbreviation rule data model and the context and
// trigger predicates used to decide which rule, if any, fires for a given
// argument token stream. It corresponds to the "context matcher", "trigger
// matcher", and "rule evaluator" stages of the expansion pipeline; byte-range
// planning for the winning rule is the responsibility of package expand.
package abbrev
