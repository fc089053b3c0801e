// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a-happin/zabbrev/internal/command"
)

func TestRealMainExpandNoMatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abbrevs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("abbrevs: []\n"), 0o644))
	t.Setenv("ZABBREV_CONFIG", path)

	app, err := command.InitApp(context.Background(), []string{"zabbrev", "expand", "-l", "echo", "-r", ""})
	require.NoError(t, err)

	out := captureStdout(t, func() {
		require.NoError(t, app.Run(context.Background(), []string{"zabbrev", "expand", "-l", "echo", "-r", ""}))
	})
	assert.Empty(t, out)
}

// captureStdout redirects os.Stdout for the duration of fn and returns what
// was written to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String()
}

func TestRealMainExpandMatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abbrevs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
abbrevs:
  - name: git
    abbr: g
    replace-self: git
`), 0o644))
	t.Setenv("ZABBREV_CONFIG", path)

	app, err := command.InitApp(context.Background(), []string{"zabbrev", "expand", "-l", "g", "-r", ""})
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background(), []string{"zabbrev", "expand", "-l", "g", "-r", ""}))
}

func TestRealMainMissingConfigIsFatal(t *testing.T) {
	t.Setenv("ZABBREV_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	app, err := command.InitApp(context.Background(), []string{"zabbrev", "expand", "-l", "g", "-r", ""})
	require.NoError(t, err)
	assert.Error(t, app.Run(context.Background(), []string{"zabbrev", "expand", "-l", "g", "-r", ""}))
}
