// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/staranto/charmconfig/internal/options"
)

// YAMLFormatter dumps the option set as a block style YAML document with
// sorted keys.
func YAMLFormatter(data options.OptionSet, _ Settings) ([]string, error) {
	doc, err := yaml.Marshal(map[string]options.Option(data))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal yaml: %w", err)
	}
	return splitLines(string(doc)), nil
}

// JSONFormatter dumps the option set as JSON with sorted keys and a two space
// indent.
func JSONFormatter(data options.OptionSet, _ Settings) ([]string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(map[string]options.Option(data)); err != nil {
		return nil, fmt.Errorf("failed to marshal json: %w", err)
	}
	return splitLines(buf.String()), nil
}
