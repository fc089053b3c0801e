// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/urfave/cli/v3"

	"github.com/a-happin/zabbrev/internal/abbrev"
	"github.com/a-happin/zabbrev/internal/config"
)

// checkCommandAction loads the rule set and eagerly compiles every regex
// trigger. The per-keystroke expand path (internal/abbrev.Trigger.Match)
// treats a bad regex as a non-fatal non-match, printing a warning only when
// that rule is reached on a keystroke — useful for staying responsive, but a
// poor way to catch a typo while editing abbrevs.yaml. check surfaces every
// problem at once instead.
func checkCommandAction(ctx context.Context, cmd *cli.Command) error {
	doc, err := config.Load()
	if err != nil {
		return err
	}

	bad := 0
	for _, rule := range doc.Abbrevs {
		if re, ok := rule.Trigger.(abbrev.Regex); ok {
			if _, err := regexp.Compile(string(re)); err != nil {
				fmt.Fprintf(os.Stderr, "invalid regex in abbrev %q: %s\n", rule.DisplayName(), err)
				bad++
			}
		}
	}

	if bad > 0 {
		return cli.Exit(fmt.Sprintf("%d rule(s) failed validation", bad), 1)
	}

	fmt.Fprintf(os.Stdout, "%d rule(s) OK\n", len(doc.Abbrevs))
	return nil
}

func checkCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "validate every rule in the config file, especially regex triggers",
		UsageText: "zabbrev check",
		Action:    checkCommandAction,
	}
}
