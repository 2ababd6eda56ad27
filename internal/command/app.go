// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/charmconfig/internal/config"
	"github.com/staranto/charmconfig/internal/meta"
	"github.com/staranto/charmconfig/internal/output"
	"github.com/staranto/charmconfig/internal/query"
)

// Exit statuses that do not come from the charm store client.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// A missing config file is normal, so the error is only worth a debug line.
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("config not loaded: %v", err)
	}

	m := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		Runner:  query.ExecRunner{},
		Width:   output.TerminalWidth,
	}

	return NewApp(m), nil
}

// NewApp builds the root command around m.
func NewApp(m meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:      "charm-config",
		Usage:     "show details about config for a charm from the store",
		UsageText: "charm-config [options] charm [option_names...]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags:  NewFlags(m.Config.Source),
		Action: ConfigCommandAction,
		OnUsageError: func(ctx context.Context, cmd *cli.Command, err error, isSubcommand bool) error {
			return err
		},
		// Exit codes are turned into a process status by ExitCode, not by
		// urfave/cli calling os.Exit.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app
}

// ExitCode maps the error returned by running the app to a process exit
// status, writing any message to w. Errors that carry no exit code are
// argument errors.
func ExitCode(err error, w io.Writer) int {
	if err == nil {
		return ExitOK
	}

	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(w, msg)
		}
		return coder.ExitCode()
	}

	fmt.Fprintf(w, "charm-config: error: %v\n", err)
	return ExitUsage
}
