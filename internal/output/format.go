// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/staranto/charmconfig/internal/options"
)

// Format names an output renderer.
type Format string

const (
	FormatTabular     Format = "tabular"
	FormatYAML        Format = "yaml"
	FormatJSON        Format = "json"
	FormatValue       Format = "value"
	FormatDescription Format = "description"
)

// Formats lists the supported formats in --help order.
var Formats = []Format{
	FormatTabular,
	FormatYAML,
	FormatJSON,
	FormatValue,
	FormatDescription,
}

// Settings carries the caller's choices that influence rendering.
type Settings struct {
	// Names are the option names (or globs) given on the command line. The
	// value and description formatters honor their order.
	Names []string
	// Width is the terminal width used by the tabular formatter.
	Width int
	// Color styles tabular output.
	Color bool
}

// Formatter renders an option set as lines of text. Formatters never modify
// the set.
type Formatter func(options.OptionSet, Settings) ([]string, error)

// Formatters maps every Format to its renderer.
var Formatters = map[Format]Formatter{
	FormatTabular:     TabularFormatter,
	FormatYAML:        YAMLFormatter,
	FormatJSON:        JSONFormatter,
	FormatValue:       ValueFormatter,
	FormatDescription: DescriptionFormatter,
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("must be one of %v", Formats)
}

// Formatter returns the renderer for f.
func (f Format) Formatter() (Formatter, error) {
	fn, ok := Formatters[f]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q", string(f))
	}
	return fn, nil
}

// Emit writes lines to w joined by newlines with a trailing newline.
func Emit(w io.Writer, lines []string) error {
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// splitLines breaks a rendered document into lines, dropping the final
// newline terminator.
func splitLines(doc string) []string {
	doc = strings.TrimSuffix(doc, "\n")
	if doc == "" {
		return []string{}
	}
	return strings.Split(doc, "\n")
}
