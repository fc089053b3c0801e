// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines zabbrev's CLI command set: init, expand, list and
// check. It wires flags and actions around the core pipeline in
// internal/expand and internal/emit.
package command
