// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"regexp"
	"strings"

	"github.com/apex/log"
	"mvdan.cc/sh/v3/pattern"

	"github.com/staranto/charmconfig/internal/options"
)

// Pattern is a single fnmatch-style glob used to select options by name.
type Pattern struct {
	// Raw is the pattern as the user typed it.
	Raw string
	re  *regexp.Regexp
}

// BuildPatterns compiles user supplied globs into Patterns. A glob that
// cannot be compiled keeps a nil matcher and is compared literally.
func BuildPatterns(specs []string) []Pattern {
	//nolint:prealloc
	var patterns []Pattern
	for _, spec := range specs {
		p := Pattern{Raw: spec}
		expr, err := pattern.Regexp(shellPattern(spec), pattern.EntireString)
		if err == nil {
			p.re, err = regexp.Compile(expr)
		}
		if err != nil {
			log.Debugf("bad pattern %q, comparing literally: %v", spec, err)
		}
		patterns = append(patterns, p)
	}
	return patterns
}

// Match reports whether name matches the pattern.
func (p Pattern) Match(name string) bool {
	if p.re == nil {
		return name == p.Raw
	}
	return p.re.MatchString(name)
}

// shellPattern rewrites an fnmatch glob into shell pattern syntax. Backslash
// is an ordinary character, [! negates a class while [^ does not, and a [
// without a closing ] stands for itself.
func shellPattern(glob string) string {
	var b strings.Builder
	literal := func(s string) { b.WriteString(pattern.QuoteMeta(s, 0)) }

	for i := 0; i < len(glob); i++ {
		switch c := glob[i]; c {
		case '*', '?':
			b.WriteByte(c)
		case '[':
			end := classEnd(glob, i+1)
			if end < 0 {
				literal("[")
				continue
			}
			b.WriteByte('[')
			body := glob[i+1 : end]
			if strings.HasPrefix(body, "!") {
				b.WriteByte('!')
				body = body[1:]
			}
			for j, r := range body {
				switch {
				case r == '\\', r == '[', r == '^' && j == 0:
					b.WriteByte('\\')
				}
				b.WriteRune(r)
			}
			b.WriteByte(']')
			i = end
		default:
			j := i
			for j < len(glob) && !strings.ContainsRune("*?[", rune(glob[j])) {
				j++
			}
			literal(glob[i:j])
			i = j - 1
		}
	}
	return b.String()
}

// classEnd returns the index of the ] closing a class whose body starts at
// i, or -1. A ] right after [ or [! belongs to the body.
func classEnd(glob string, i int) int {
	if i < len(glob) && glob[i] == '!' {
		i++
	}
	if i < len(glob) && glob[i] == ']' {
		i++
	}
	if end := strings.IndexByte(glob[i:], ']'); end >= 0 {
		return i + end
	}
	return -1
}

// MatchAny reports whether name matches at least one of the patterns.
func MatchAny(name string, patterns []Pattern) bool {
	for _, p := range patterns {
		if p.Match(name) {
			return true
		}
	}
	return false
}

// FilterOptions returns the options whose name matches at least one of the
// specs. With no specs the set is returned unchanged.
func FilterOptions(set options.OptionSet, specs []string) options.OptionSet {
	// No filters, so go home early.
	if len(specs) == 0 {
		return set
	}

	patterns := BuildPatterns(specs)

	filtered := options.OptionSet{}
	for name, opt := range set {
		if MatchAny(name, patterns) {
			filtered[name] = opt
		}
	}

	log.Debugf("filter %v kept %d of %d options", specs, filtered.Len(), set.Len())
	return filtered
}

// ExpandNames returns the option names selected by specs in the order the
// caller gave them. Each spec contributes its matches in sorted order and a
// name is only listed once. With no specs every name is returned sorted.
func ExpandNames(set options.OptionSet, specs []string) []string {
	if len(specs) == 0 {
		return set.Names()
	}

	sorted := set.Names()
	seen := make(map[string]bool, len(sorted))

	//nolint:prealloc
	var names []string
	for _, p := range BuildPatterns(specs) {
		for _, name := range sorted {
			if seen[name] || !p.Match(name) {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
