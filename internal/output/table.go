// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/staranto/charmconfig/internal/config"
	"github.com/staranto/charmconfig/internal/options"
)

// Column width limits for the tabular layout.
const (
	minOptionWidth = 6
	minValueWidth  = 13
	maxValueWidth  = 30
	minTypeWidth   = 7
	minDescWidth   = 11
	columnGap      = 2
	ellipsis       = "..."
)

// columns holds the computed width of each table column and the blanks
// between them.
type columns struct {
	option int
	value  int
	typ    int
	desc   int
	gap    int
}

// row is one table line before clipping.
type row struct {
	option string
	value  string
	typ    string
	desc   string
}

// TabularFormatter lays the options out as an aligned table sized to the
// terminal width in s.Width.
func TabularFormatter(data options.OptionSet, s Settings) ([]string, error) {
	if data.Len() == 0 {
		return []string{}, nil
	}

	width := s.Width
	if width <= 0 {
		width = DefaultWidth
	}

	pad, _ := config.GetInt("padding", 0)
	pad = max(pad, 0)
	log.Debugf("padding: %v", pad)

	sorted := data.Sorted()
	rows := make([]row, 0, len(sorted))
	for _, opt := range sorted {
		rows = append(rows, row{
			option: opt.Name,
			value:  Literal(opt.Default),
			typ:    opt.Type,
			desc:   flatten(opt.Description),
		})
	}

	cols := measure(rows, width, columnGap+pad)
	log.Debugf("table width=%d columns=%+v", width, cols)

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.option,
			clipValue(r.value, r.typ),
			r.typ,
			clip(r.desc, cols.desc),
		})
	}

	t := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Border(lipgloss.HiddenBorder()).
		Wrap(false).
		StyleFunc(func(_, col int) lipgloss.Style {
			return lipgloss.NewStyle().Width(cols.cell(col))
		}).
		Headers("Option", "Value", "Type", "Description").
		Rows(cells...)

	lines := trimLines(t.String())
	if len(lines) == 0 {
		return lines, nil
	}

	// Divider under the header, as wide as the header text.
	lines = slices.Insert(lines, 1, strings.Repeat("-", runeLen(lines[0])))

	if s.Color {
		colorize(lines)
	}

	return lines, nil
}

// measure computes the column widths for rows on a terminal width columns
// wide, with gap blanks between neighbouring columns.
func measure(rows []row, width, gap int) columns {
	cols := columns{
		option: minOptionWidth,
		typ:    minTypeWidth,
		gap:    gap,
	}

	longestValue, longestDesc := 0, 0
	for _, r := range rows {
		cols.option = max(cols.option, runeLen(r.option))
		cols.typ = max(cols.typ, runeLen(r.typ))
		longestValue = max(longestValue, runeLen(r.value))
		longestDesc = max(longestDesc, runeLen(r.desc))
	}

	cols.value = min(max(longestValue, minValueWidth), maxValueWidth)

	// Whatever is left of the terminal after the other columns and the three
	// gaps between them.
	available := width - cols.option - cols.value - cols.typ - 3*gap
	cols.desc = max(min(available, longestDesc), minDescWidth)

	return cols
}

// cell returns the rendered width of column col, including the gap that
// separates it from the next column.
func (c columns) cell(col int) int {
	switch col {
	case 0:
		return c.option + c.gap
	case 1:
		return c.value + c.gap
	case 2:
		return c.typ + c.gap
	}
	return c.desc
}

// trimLines splits rendered table output into right-trimmed lines.
func trimLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, " ")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// clipValue shortens a literal value that is wider than the value column.
// String literals keep their closing quote.
func clipValue(value, typ string) string {
	if runeLen(value) <= maxValueWidth {
		return value
	}
	runes := []rune(value)
	if typ == "string" {
		return string(runes[:maxValueWidth-len(ellipsis)-1]) + "'" + ellipsis
	}
	return string(runes[:maxValueWidth-len(ellipsis)]) + ellipsis
}

// clip shortens s to width runes, ending it with an ellipsis.
func clip(s string, width int) string {
	if runeLen(s) <= width {
		return s
	}
	return string([]rune(s)[:width-len(ellipsis)]) + ellipsis
}

// flatten turns a multi-line description into a single trimmed line. Tabs
// become single blanks so cell widths stay rune counts.
func flatten(s string) string {
	return strings.TrimSpace(strings.NewReplacer("\n", " ", "\t", " ").Replace(s))
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// colorize styles the header and alternating rows in place.
func colorize(lines []string) {
	headerColor, evenColor, oddColor := getColors("colors")

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(headerColor))
	evenRowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(evenColor))
	oddRowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(oddColor))

	for i, line := range lines {
		switch {
		case i < 2:
			lines[i] = headerStyle.Render(line)
		case i%2 == 0:
			lines[i] = evenRowStyle.Render(line)
		default:
			lines[i] = oddRowStyle.Render(line)
		}
	}
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}
