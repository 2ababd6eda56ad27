// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/staranto/charmconfig/internal/command"
	mylog "github.com/staranto/charmconfig/internal/log"
	"github.com/staranto/charmconfig/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	args := os.Args

	// Short-circuit --version. -v is taken by --value.
	for _, a := range args[1:] {
		if a == "--" {
			break
		}
		if a == "--version" {
			fmt.Println(version.Version)
			return command.ExitOK
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return command.ExitError
	}

	err = app.Run(ctx, args)
	log.Debugf("run finished: %v", err)

	return command.ExitCode(err, os.Stderr)
}
