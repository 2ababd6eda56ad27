// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/charmconfig/internal/filters"
	"github.com/staranto/charmconfig/internal/meta"
	"github.com/staranto/charmconfig/internal/output"
	"github.com/staranto/charmconfig/internal/query"
)

// NoOptionsMessage is written to stderr when nothing is left to show.
const NoOptionsMessage = "No options found."

// ConfigCommandAction loads the charm's options, filters them by the
// positional option names and prints them in the selected format.
func ConfigCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	root := cmd.Root()

	// Bail out early if we're just printing the description.
	if cmd.Bool("description") {
		_, err := fmt.Fprintln(root.Writer, ShortDescription(cmd))
		return err
	}
	if done, err := ShortCircuitCompletion(cmd, root.Writer); done {
		return err
	}

	s, err := ResolveSettings(cmd)
	if err != nil {
		return err
	}
	log.Debugf("settings: %+v", redact(s))

	if s.Agent != "" {
		log.Debugf("agent file %s accepted but not used", s.Agent)
	}

	formatter, err := s.Format.Formatter()
	if err != nil {
		return err
	}

	runner := m.Runner
	if runner == nil {
		runner = query.ExecRunner{}
	}

	data, err := query.Load(ctx, runner, s.Request())
	if err != nil {
		var exitErr *query.ExitError
		if errors.As(err, &exitErr) {
			log.Debugf("query failed: %v", exitErr)
			return cli.Exit("", exitErr.ExitCode())
		}
		return cli.Exit(err.Error(), 1)
	}

	data = filters.FilterOptions(data, s.OptionNames)
	if data.Len() == 0 {
		fmt.Fprintln(root.ErrWriter, NoOptionsMessage)
		return cli.Exit("", 1)
	}

	width := 0
	if s.Format == output.FormatTabular {
		width = output.ResolveWidth(s.Width, m.Width)
	}

	lines, err := formatter(data, output.Settings{
		Names: s.OptionNames,
		Width: width,
		Color: s.Color,
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return output.Emit(root.Writer, lines)
}

// ShortDescription returns the first line of the command's usage without
// trailing punctuation.
func ShortDescription(cmd *cli.Command) string {
	line, _, _ := strings.Cut(cmd.Root().Usage, "\n")
	return strings.Trim(line, ". ")
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

func redact(s Settings) Settings {
	if s.Auth != "" {
		s.Auth = "REDACTED"
	}
	return s
}
