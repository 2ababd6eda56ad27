// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/staranto/charmconfig/internal/output"
	"github.com/staranto/charmconfig/internal/query"
)

// Settings is the resolved, read-only view of one invocation's arguments.
type Settings struct {
	Charm       string
	OptionNames []string
	Channel     string
	Agent       string
	Auth        string
	Format      output.Format
	Color       bool
	Width       int
	Command     []string
}

// ErrMissingCharm is returned when no charm ID was given.
var ErrMissingCharm = errors.New("the following arguments are required: charm")

// ResolveSettings reads the parsed flags and positional args of cmd.
func ResolveSettings(cmd *cli.Command) (Settings, error) {
	args := cmd.Args().Slice()
	if len(args) == 0 || args[0] == "" {
		return Settings{}, ErrMissingCharm
	}

	format, err := resolveFormat(cmd)
	if err != nil {
		return Settings{}, err
	}

	command, err := query.ParseCommand(cmd.String("command"))
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Charm:       args[0],
		OptionNames: append([]string{}, args[1:]...),
		Channel:     cmd.String("channel"),
		Agent:       cmd.String("agent"),
		Auth:        cmd.String("auth"),
		Format:      format,
		Color:       cmd.Bool("color"),
		Width:       cmd.Int("width"),
		Command:     command,
	}, nil
}

// resolveFormat applies the --value and --desc shorthands over --format.
func resolveFormat(cmd *cli.Command) (output.Format, error) {
	value, desc := cmd.Bool("value"), cmd.Bool("desc")
	switch {
	case value && desc:
		return "", errors.New("--value and --desc are mutually exclusive")
	case value:
		return output.FormatValue, nil
	case desc:
		return output.FormatDescription, nil
	}
	return output.ParseFormat(cmd.String("format"))
}

// Request converts the settings into a charm store query.
func (s Settings) Request() query.Request {
	return query.Request{
		Charm:   s.Charm,
		Channel: s.Channel,
		Auth:    s.Auth,
		Command: s.Command,
	}
}
