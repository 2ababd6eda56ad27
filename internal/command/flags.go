// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/charmconfig/internal/output"
	"github.com/staranto/charmconfig/internal/query"
)

// NewFlags builds the charm-config flag set. Values not given on the command
// line fall back to CHARM_CONFIG_* env variables and then to the config file
// at source.
func NewFlags(source string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "agent",
			Aliases: []string{"a"},
			Usage:   "name of file containing agent login details",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.StringFlag{
			Name:  "auth",
			Usage: "user:passwd to use for basic HTTP authentication",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("CHARM_CONFIG_AUTH"),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.StringFlag{
			Name:    "channel",
			Aliases: []string{"c"},
			Usage:   "the channel of the charm or bundle to use",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("CHARM_CONFIG_CHANNEL"),
				yaml.YAML("channel", altsrc.StringSourcer(source)),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator, ChannelValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:  "color",
			Usage: "enable colored tabular output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("color", altsrc.StringSourcer(source)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:   "command",
			Usage:  "charm store client to run",
			Hidden: true,
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("CHARM_CONFIG_COMMAND"),
				yaml.YAML("command", altsrc.StringSourcer(source)),
			),
			Value: query.DefaultCommand,
		},
		&cli.StringFlag{
			Name:   "completion",
			Usage:  "print a shell completion script (bash or zsh) and exit",
			Hidden: true,
		},
		&cli.BoolFlag{
			Name:        "desc",
			Aliases:     []string{"d"},
			Usage:       "alias for --format=description",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "description",
			Usage:       "show the short description and exit",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "format for output",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("CHARM_CONFIG_FORMAT"),
				yaml.YAML("format", altsrc.StringSourcer(source)),
			),
			Value: string(output.FormatTabular),
			Validator: func(value string) error {
				return FlagValidators(value, FormatValidator)
			},
		},
		&cli.BoolFlag{
			Name:        "value",
			Aliases:     []string{"v"},
			Usage:       "alias for --format=value",
			HideDefault: true,
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "terminal width for tabular output. 0 detects it",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("CHARM_CONFIG_WIDTH"),
				yaml.YAML("width", altsrc.StringSourcer(source)),
			),
			Value:       0,
			HideDefault: true,
		},
	}

	return
}
