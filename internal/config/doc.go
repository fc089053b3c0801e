// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads the abbreviation rule set from YAML. The file is
// reread at every invocation — there is no persistent configuration state,
// since each keystroke forks a fresh process that sees whatever the user
// most recently saved.
//
// Resolution order, an env-var-then-XDG-default shape:
//   - $ZABBREV_CONFIG, if set, is the full path to the rules file.
//   - otherwise the user's configuration directory (os.UserConfigDir) is
//     used, with the filename "zabbrev/abbrevs.yaml".
package config
