// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"

	"github.com/staranto/charmconfig/internal/config"
	"github.com/staranto/charmconfig/internal/output"
	"github.com/staranto/charmconfig/internal/query"
)

// Meta carries what a command needs from its environment: the raw args,
// loaded config and the capabilities that reach outside the process.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	// Runner executes the charm store client.
	Runner query.Runner
	// Width probes the terminal width.
	Width output.WidthFunc
}
