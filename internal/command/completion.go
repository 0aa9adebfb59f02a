// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lnctl/lnctl/internal/meta"
)

const bashCompletionScript = `# bash completion for lnctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_lnctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "cache config resolve states statuses users completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --filter -f --no-cache --output -o --sort -s --team --titles -t"

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

    if [[ ${COMP_CWORD} -eq 2 ]]; then
        case "$cmd" in
            cache)
                COMPREPLY=( $(compgen -W "ls clear purge path" -- "$cur") )
                return 0
                ;;
            config)
                COMPREPLY=( $(compgen -W "get set unset list path" -- "$cur") )
                return 0
                ;;
            resolve)
                COMPREPLY=( $(compgen -W "issue project document" -- "$cur") )
                return 0
                ;;
            completion)
                COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
                return 0
                ;;
        esac
    fi

    if [[ "$cmd" == "config" && ( "${COMP_WORDS[2]}" == "get" || "${COMP_WORDS[2]}" == "set" || "${COMP_WORDS[2]}" == "unset" ) && $cur != -* ]]; then
        COMPREPLY=( $(compgen -W "%s" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$common --tldr" -- "$cur") )
    return 0
}

complete -F _lnctl lnctl
`

const zshCompletionScript = `#compdef lnctl

_lnctl() {
  local -a cmds
  cmds=(
    'cache:inspect and clear the lookup cache'
    'config:inspect and edit the configuration file'
    'resolve:turn a url, identifier or search text into a reference'
    'states:list the workflow states of a team'
    'statuses:list the project statuses of the workspace'
    'users:list the members of the workspace'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '--no-cache[bypass the lookup cache]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
  '(-s --sort)'{-s,--sort}'[sort columns]:columns'
  '--team[team key]:team'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'lnctl commands' cmds
    return
  fi

  case $words[2] in
    cache)
      _arguments -C $common '1: :((ls clear purge path))' '*::key'
      ;;
    config)
      _arguments -C $common '1: :((get set unset list path))' '2: :(%s)' '*::value'
      ;;
    resolve)
      _arguments -C $common '1: :((issue project document))' '*::input'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '--tldr[show tldr page]'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _lnctl lnctl
`

// completionScript fills the option names into the script for shell.
func completionScript(shell string, names []string) (string, bool) {
	switch shell {
	case "bash":
		return fmt.Sprintf(bashCompletionScript, strings.Join(names, " ")), true
	case "zsh":
		return fmt.Sprintf(zshCompletionScript, strings.Join(names, " ")), true
	}
	return "", false
}

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := cmd.Args().First()
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	script, ok := completionScript(shell, optionNames())
	if !ok {
		fmt.Fprintln(cmd.Root().ErrWriter, "usage: lnctl completion [bash|zsh]")
		return nil
	}
	fmt.Fprint(cmd.Root().Writer, script)
	return nil
}

func completionCommandBuilder(meta *meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "lnctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
