// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// initScript wires the __zabbrev_expand widgets into a zsh session. It is
// deliberately inert on its own — no key is bound — so that `zabbrev init`
// can be eval'd from .zshrc without surprising a user who only wants to
// bind their own keys.
const initScript = `typeset -g __zabbrev_cmd=${__zabbrev_cmd:-zabbrev}

__zabbrev_expand() {
  emulate -L zsh
  local __zabbrev_no_space= __zabbrev_redraw=
  local frag
  frag="$(${__zabbrev_cmd} expand -l "$LBUFFER" -r "$RBUFFER")" || return
  [[ -n $frag ]] && eval "$frag"
}

__zabbrev_expand_and_self_insert() {
  __zabbrev_expand
  if [[ -z $__zabbrev_no_space ]]; then
    zle self-insert
  fi
  if [[ -n $__zabbrev_redraw ]]; then
    zle reset-prompt
  fi
}

__zabbrev_expand_and_accept_line() {
  __zabbrev_expand
  zle accept-line
}

zle -N __zabbrev_expand_and_self_insert
zle -N __zabbrev_expand_and_accept_line
`

// bindKeysScript binds the widgets defined by initScript to the keys that
// conventionally trigger abbreviation expansion: Space and Enter.
const bindKeysScript = `bindkey ' ' __zabbrev_expand_and_self_insert
bindkey '^M' __zabbrev_expand_and_accept_line
`

func initCommandAction(ctx context.Context, cmd *cli.Command) error {
	fmt.Fprint(os.Stdout, initScript)
	if cmd.Bool("bind-keys") {
		fmt.Fprint(os.Stdout, bindKeysScript)
	}
	return nil
}

func initCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "print the zsh widget initialization script",
		UsageText: "zabbrev init [--bind-keys]",
		Flags:     []cli.Flag{bindKeysFlag},
		Action:    initCommandAction,
	}
}
