// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/a-happin/zabbrev/internal/config"
	"github.com/a-happin/zabbrev/internal/emit"
	"github.com/a-happin/zabbrev/internal/expand"
)

// expandCommandAction runs the expansion pipeline for one invocation. A
// config-load failure is configuration-fatal and returned as an error (the
// CLI exits non-zero before any output); a clean non-match prints nothing
// and exits 0, matching the no-match contract the shell widget depends on.
func expandCommandAction(ctx context.Context, cmd *cli.Command) error {
	doc, err := config.Load()
	if err != nil {
		return err
	}

	result := expand.Run(cmd.String("lbuffer"), cmd.String("rbuffer"), doc.Abbrevs)
	if !result.Matched {
		return nil
	}

	return emit.Write(os.Stdout, result)
}

func expandCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "expand",
		Usage:     "evaluate the abbreviation rule set against the current line buffer",
		UsageText: "zabbrev expand -l <LBUFFER> -r <RBUFFER>",
		Flags:     []cli.Flag{lbufferFlag, rbufferFlag},
		Action:    expandCommandAction,
	}
}
