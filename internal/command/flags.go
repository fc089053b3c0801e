// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import "github.com/urfave/cli/v3"

var (
	lbufferFlag = &cli.StringFlag{
		Name:     "lbuffer",
		Aliases:  []string{"l"},
		Usage:    "shell line buffer contents left of the cursor",
		Required: true,
	}

	rbufferFlag = &cli.StringFlag{
		Name:    "rbuffer",
		Aliases: []string{"r"},
		Usage:   "shell line buffer contents right of the cursor",
	}

	bindKeysFlag = &cli.BoolFlag{
		Name:        "bind-keys",
		Usage:       "also print the default keybinding script",
		HideDefault: true,
	}

	watchFlag = &cli.BoolFlag{
		Name:        "watch",
		Usage:       "re-render whenever the config file changes",
		HideDefault: true,
	}

	noColorFlag = &cli.BoolFlag{
		Name:        "no-color",
		Usage:       "disable colored table output",
		HideDefault: true,
	}
)
