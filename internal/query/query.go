// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
	"mvdan.cc/sh/v3/shell"
	"mvdan.cc/sh/v3/syntax"

	"github.com/staranto/charmconfig/internal/options"
)

// DefaultCommand is the charm store client used when none is configured.
const DefaultCommand = "charm"

// Channels are the release tracks the charm store accepts.
var Channels = []string{"stable", "candidate", "beta", "edge", "unpublished"}

// Request describes a single charm-config lookup.
type Request struct {
	// Charm is the charm ID, e.g. cs:mysql.
	Charm string
	// Channel optionally selects the release track.
	Channel string
	// Auth is an opaque user:passwd passed through to the client.
	Auth string
	// Command is the client invocation prefix. Empty means DefaultCommand.
	Command []string
}

// ParseCommand splits a configured client command such as
// `snap run charm` into words using shell quoting rules.
func ParseCommand(spec string) ([]string, error) {
	if strings.TrimSpace(spec) == "" {
		return []string{DefaultCommand}, nil
	}
	words, err := shell.Fields(spec, func(string) string { return "" })
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %w", spec, err)
	}
	if len(words) == 0 {
		return []string{DefaultCommand}, nil
	}
	return words, nil
}

// ValidChannel reports whether c is empty or one of Channels.
func ValidChannel(c string) bool {
	if c == "" {
		return true
	}
	for _, ch := range Channels {
		if ch == c {
			return true
		}
	}
	return false
}

// Args builds the full client command line for the request. The first
// element is the executable.
func (r Request) Args() []string {
	prefix := r.Command
	if len(prefix) == 0 {
		prefix = []string{DefaultCommand}
	}

	args := append([]string{}, prefix...)
	args = append(args, "show", "--format=yaml", r.Charm, "charm-config")
	if r.Channel != "" {
		args = append(args, "--channel", r.Channel)
	}
	if r.Auth != "" {
		args = append(args, "--auth", r.Auth)
	}
	return args
}

// Load runs the client for req and returns the charm's options. A missing
// charm-config or Options key yields an empty set.
func Load(ctx context.Context, runner Runner, req Request) (options.OptionSet, error) {
	if req.Charm == "" {
		return nil, errors.New("charm ID is required")
	}
	if !ValidChannel(req.Channel) {
		return nil, fmt.Errorf("invalid channel %q, must be one of %v", req.Channel, Channels)
	}

	args := req.Args()
	log.Debugf("running: %s", quoteArgs(args, req.Auth))

	out, err := runner.Output(ctx, args[0], args[1:]...)
	if err != nil {
		return nil, err
	}

	return Parse(out)
}

// showResponse is the subset of `charm show --format=yaml` we care about.
type showResponse struct {
	CharmConfig *struct {
		Options map[string]options.Option `yaml:"Options"`
	} `yaml:"charm-config"`
}

// Parse decodes the client's YAML output into an OptionSet.
func Parse(doc []byte) (options.OptionSet, error) {
	if len(bytes.TrimSpace(doc)) == 0 {
		return nil, errors.New("empty response from charm store client")
	}

	var resp showResponse
	if err := yaml.Unmarshal(doc, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse charm store response: %w", err)
	}

	set := options.OptionSet{}
	if resp.CharmConfig == nil {
		log.Debug("response has no charm-config")
		return set, nil
	}

	for name, opt := range resp.CharmConfig.Options {
		opt.Default = normalize(opt.Default)
		set[name] = opt
	}
	log.Debugf("loaded %d options", set.Len())

	return set, nil
}

// normalize rewrites mappings with non-string keys into map[string]any so
// every decoded default can be rendered as JSON.
func normalize(v any) any {
	switch v := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[k] = normalize(val)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[fmt.Sprint(k)] = normalize(val)
		}
		return m
	case []any:
		s := make([]any, len(v))
		for i, val := range v {
			s[i] = normalize(val)
		}
		return s
	default:
		return v
	}
}

// quoteArgs renders args as a shell command line for logging, masking the
// auth secret.
func quoteArgs(args []string, secret string) string {
	quoted := make([]string, 0, len(args))
	for _, a := range args {
		if secret != "" && a == secret {
			a = "REDACTED"
		}
		q, err := syntax.Quote(a, syntax.LangBash)
		if err != nil {
			q = a
		}
		quoted = append(quoted, q)
	}
	return strings.Join(quoted, " ")
}
