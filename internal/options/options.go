// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package options

import (
	"sort"
)

// Option is a single configuration key declared by a charm. The field tags
// match the keys used by the charm store so that the structured formatters
// round-trip the store's own shape.
type Option struct {
	Name        string `json:"-" yaml:"-"`
	Default     any    `json:"Default" yaml:"Default"`
	Description string `json:"Description" yaml:"Description"`
	Type        string `json:"Type" yaml:"Type"`
}

// OptionSet maps option names to their Option.
type OptionSet map[string]Option

// Names returns the option names in ascending byte-wise order.
func (s OptionSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of options in the set.
func (s OptionSet) Len() int {
	return len(s)
}

// Sorted returns the options in name order with Name populated.
func (s OptionSet) Sorted() []Option {
	sorted := make([]Option, 0, len(s))
	for _, name := range s.Names() {
		opt := s[name]
		opt.Name = name
		sorted = append(sorted, opt)
	}
	return sorted
}

// Get returns the named option with Name populated.
func (s OptionSet) Get(name string) (Option, bool) {
	opt, ok := s[name]
	if ok {
		opt.Name = name
	}
	return opt, ok
}
