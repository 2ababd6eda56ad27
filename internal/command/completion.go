// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

const bashCompletionScript = `# bash completion for charm-config
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_charm_config()
{
    local cur prev
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    local opts="--agent -a --auth --channel -c --color --no-color --desc -d --description --format -f --help -h --value -v --version --width"

    case "$prev" in
    --channel|-c)
        COMPREPLY=( $(compgen -W "stable candidate beta edge unpublished" -- "$cur") )
        return 0
        ;;
    --format|-f)
        COMPREPLY=( $(compgen -W "tabular yaml json value description" -- "$cur") )
        return 0
        ;;
    --agent|-a)
        COMPREPLY=( $(compgen -f -- "$cur") )
        return 0
        ;;
    --auth|--width)
        return 0
        ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    fi
    return 0
}

complete -F _charm_config charm-config
`

const zshCompletionScript = `#compdef charm-config

_charm_config() {
  _arguments -s \
    '(-a --agent)'{-a,--agent}'[agent login details file]:file:_files' \
    '--auth[user:passwd for basic HTTP authentication]:auth' \
    '(-c --channel)'{-c,--channel}'[channel to use]:channel:(stable candidate beta edge unpublished)' \
    '(--no-color)--color[enable colored tabular output]' \
    '(--color)--no-color[disable colored tabular output]' \
    '(-f --format -v --value -d --desc)'{-f,--format}'[format for output]:format:(tabular yaml json value description)' \
    '(-f --format -v --value -d --desc)'{-v,--value}'[show option values]' \
    '(-f --format -v --value -d --desc)'{-d,--desc}'[show option descriptions]' \
    '--description[show the short description and exit]' \
    '--width[terminal width]:width' \
    '(-h --help)'{-h,--help}'[show help]' \
    '--version[show version]' \
    '1:charm ID' \
    '*:option name'
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _charm_config charm-config
`

// CompletionScript returns the completion script for shell. An empty shell
// is detected from $SHELL.
func CompletionScript(shell string) (string, error) {
	if shell == "" {
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		return bashCompletionScript, nil
	case "zsh":
		return zshCompletionScript, nil
	default:
		return "", fmt.Errorf("usage: charm-config --completion [bash|zsh]")
	}
}

// ShortCircuitCompletion prints the completion script when --completion is
// set and returns true so the caller can exit early. An unknown shell is a
// usage error.
func ShortCircuitCompletion(cmd *cli.Command, w io.Writer) (bool, error) {
	if !cmd.IsSet("completion") {
		return false, nil
	}
	script, err := CompletionScript(cmd.String("completion"))
	if err != nil {
		return true, cli.Exit(err.Error(), ExitUsage)
	}
	_, err = fmt.Fprint(w, script)
	return true, err
}
