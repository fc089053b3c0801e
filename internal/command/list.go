// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v3"

	"github.com/a-happin/zabbrev/internal/abbrev"
	"github.com/a-happin/zabbrev/internal/config"
)

const watchDebounce = 200 * time.Millisecond

func listCommandAction(ctx context.Context, cmd *cli.Command) error {
	color := !cmd.Bool("no-color")

	if !cmd.Bool("watch") {
		doc, err := config.Load()
		if err != nil {
			return err
		}
		renderRuleTable(os.Stdout, doc.Abbrevs, color)
		return nil
	}

	return watchAndRender(ctx, color)
}

// watchAndRender re-renders the rule table whenever the resolved config file
// changes, following the watch-the-parent-directory approach editors need
// (a save is often a rename, not an in-place write, which a direct file
// watch would miss).
func watchAndRender(ctx context.Context, color bool) error {
	path, err := config.Path()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start config watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch config directory: %w", err)
	}

	render := func() {
		doc, err := config.LoadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Fprint(os.Stdout, "\033[H\033[2J")
		renderRuleTable(os.Stdout, doc.Abbrevs, color)
	}
	render()

	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, render)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// renderRuleTable prints the rule set as a lipgloss/table with header and
// optional color styles.
func renderRuleTable(w *os.File, rules []*abbrev.Rule, color bool) {
	if len(rules) == 0 {
		fmt.Fprintln(w, "no abbreviations configured")
		return
	}

	headerStyle := lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
	evenRowStyle := lipgloss.NewStyle().Align(lipgloss.Left)
	oddRowStyle := lipgloss.NewStyle().Align(lipgloss.Left)

	if color {
		headerStyle = headerStyle.Foreground(lipgloss.Color("#f6be00"))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color("#ffffff"))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color("#00c8f0"))
	}

	var rows [][]string
	for _, r := range rules {
		rows = append(rows, []string{
			r.DisplayName(),
			r.Context.Spec,
			triggerLabel(r.Trigger),
			operationLabel(r.Op),
		})
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).BorderBottom(false).BorderLeft(false).BorderRight(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers("NAME", "CONTEXT", "TRIGGER", "OPERATION").
		Rows(rows...)

	fmt.Fprintln(w, t)
}

func triggerLabel(t abbrev.Trigger) string {
	switch t.(type) {
	case abbrev.Literal:
		return fmt.Sprintf("abbr=%s", t.Pattern())
	case abbrev.Prefix:
		return fmt.Sprintf("abbr-prefix=%s", t.Pattern())
	case abbrev.Suffix:
		return fmt.Sprintf("abbr-suffix=%s", t.Pattern())
	case abbrev.Regex:
		return fmt.Sprintf("abbr-regex=%s", t.Pattern())
	default:
		return t.Pattern()
	}
}

func operationLabel(op abbrev.Operation) string {
	switch op.(type) {
	case abbrev.ReplaceSelf:
		return fmt.Sprintf("replace-self=%s", op.Snippet())
	case abbrev.ReplaceFirst:
		return fmt.Sprintf("replace-first=%s", op.Snippet())
	case abbrev.ReplaceContext:
		return fmt.Sprintf("replace-context=%s", op.Snippet())
	case abbrev.ReplaceAll:
		return fmt.Sprintf("replace-all=%s", op.Snippet())
	case abbrev.Append:
		return fmt.Sprintf("append=%s", op.Snippet())
	case abbrev.Prepend:
		return fmt.Sprintf("prepend=%s", op.Snippet())
	default:
		return op.Snippet()
	}
}

func listCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "print the loaded rule set as a table",
		UsageText: "zabbrev list [--watch] [--no-color]",
		Flags:     []cli.Flag{watchFlag, noColorFlag},
		Action:    listCommandAction,
	}
}
