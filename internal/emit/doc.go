// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package emit serializes an expand.Result into the zsh fragment that the
// shell widget evaluates after this process exits. This package never
// mutates the shell itself — it only prints text — so correct quoting is a
// security-relevant obligation, not cosmetic polish.
package emit
