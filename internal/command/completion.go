// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/nmlctl/nmlctl/internal/meta"
)

const bashCompletionScript = `# bash completion for nmlctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_nmlctl()
{
    local cur prev
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_WORDS[1]} == completion ]]; then
        COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--format" || "$prev" == "-F" ]]; then
        COMPREPLY=( $(compgen -W "plain text text-tight markdown latex latex-complete" -- "$cur") )
        return 0
    fi

  local opts="--column-width --diff -d --format -F --help --ignore --ignore-counters -i --keep -k --masterswitch --prune -p --tidy-overwrite --url -u --version -v"

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "completion" -- "$cur") $(compgen -f -- "$cur") )
        return 0
    fi

  # Positional arguments are namelist files
  COMPREPLY=( $(compgen -f -- "$cur") )
  return 0
}

complete -F _nmlctl nmlctl
`

const zshCompletionScript = `#compdef nmlctl

_nmlctl() {
  if [[ $words[2] == completion ]]; then
    _arguments '2: :((bash zsh))'
    return
  fi

  _arguments -C \
    '--column-width[wrap value lists at this column with --tidy-overwrite]:width' \
    '(-d --diff)'{-d,--diff}'[only show semantic differences]' \
    '(-F --format)'{-F,--format}'[report format]:format:(plain text text-tight markdown latex latex-complete)' \
    '--ignore[variables to ignore when pruning]:spec' \
    '(-i --ignore-counters)'{-i,--ignore-counters}'[ignore timestep counters when pruning]' \
    '(-k --keep)'{-k,--keep}'[variable to always keep in diff]:variable' \
    '--masterswitch[variable that disables its group when false]:variable' \
    '(-p --prune)'{-p,--prune}'[drop files identical to their predecessor]' \
    '--tidy-overwrite[overwrite files with tidied contents]' \
    '(-u --url)'{-u,--url}'[link names in latex-complete output to this URL]:url' \
    '(-v --version)'{-v,--version}'[nmlctl version info]' \
    '*:namelist file:_files'
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _nmlctl nmlctl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(m.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(m.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(m.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(m.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: nmlctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "nmlctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
