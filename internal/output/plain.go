// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"strings"

	"github.com/staranto/charmconfig/internal/filters"
	"github.com/staranto/charmconfig/internal/options"
)

// ValueFormatter emits the default value of each selected option, one per
// line, without labels.
func ValueFormatter(data options.OptionSet, s Settings) ([]string, error) {
	names := filters.ExpandNames(data, s.Names)
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, Display(data[name].Default))
	}
	return lines, nil
}

// DescriptionFormatter emits option descriptions. A single option yields just
// its description; several yield a titled block per option.
func DescriptionFormatter(data options.OptionSet, s Settings) ([]string, error) {
	names := filters.ExpandNames(data, s.Names)

	if len(names) == 1 {
		return splitLines(strings.TrimSpace(data[names[0]].Description)), nil
	}

	var lines []string
	for i, name := range names {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, name, strings.Repeat("-", runeLen(name)))
		lines = append(lines, splitLines(strings.TrimSpace(data[name].Description))...)
	}
	return lines, nil
}
