// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"
)

// InitApp builds the zabbrev command tree: init, expand, list and check.
// There is no rootDir/namespace parsing here — zabbrev has no per-subcommand
// config namespace or working-directory concept, since its entire
// configuration surface is the single rule-set file resolved by
// internal/config.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	app := &cli.Command{
		Name:  "zabbrev",
		Usage: "shell abbreviation expansion helper",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "zabbrev version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		initCommandBuilder(),
		expandCommandBuilder(),
		listCommandBuilder(),
		checkCommandBuilder(),
	)

	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
