// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"regexp"
	"strings"
)

var h1Re = regexp.MustCompile(`(?m)^#\s+(.+)$`)

// extractTitleAndShortDesc returns the first H1 and the first paragraph after
// the "Short description" heading.
func extractTitleAndShortDesc(md string) (title, short string) {
	if m := h1Re.FindStringSubmatch(md); m != nil {
		title = strings.TrimSpace(m[1])
	}

	idx := strings.Index(strings.ToLower(md), "short description")
	if idx < 0 {
		return title, title
	}

	rest := md[idx:]
	// Skip the header line
	if nl := strings.Index(rest, "\n"); nl >= 0 {
		rest = rest[nl+1:]
	}

	var paragraph []string
	for _, ln := range strings.Split(rest, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			if len(paragraph) > 0 {
				break
			}
			continue
		}
		if strings.HasPrefix(ln, "#") {
			break
		}
		paragraph = append(paragraph, ln)
	}

	short = strings.Join(paragraph, " ")
	if short == "" {
		short = title
	}
	return title, short
}

type example struct {
	Desc string
	Cmd  string
}

// extractQuickExamples reads "# description" / command pairs from the first
// fenced block after the "Quick examples" heading.
func extractQuickExamples(md string) []example {
	idx := strings.Index(strings.ToLower(md), "quick examples")
	if idx < 0 {
		return nil
	}

	const fence = "```"
	rest := md[idx:]
	start := strings.Index(rest, fence)
	if start < 0 {
		return nil
	}
	rest = rest[start+len(fence):]
	// Drop the info string, e.g. ```sh
	if nl := strings.Index(rest, "\n"); nl >= 0 {
		rest = rest[nl+1:]
	}
	end := strings.Index(rest, fence)
	if end < 0 {
		return nil
	}

	var exs []example
	desc := ""
	for _, ln := range strings.Split(rest[:end], "\n") {
		s := strings.TrimSpace(ln)
		switch {
		case s == "":
		case strings.HasPrefix(s, "#"):
			desc = strings.TrimSpace(strings.TrimPrefix(s, "#"))
		default:
			if desc == "" {
				desc = "Example"
			}
			exs = append(exs, example{Desc: desc, Cmd: strings.Join(strings.Fields(s), " ")})
			desc = ""
		}
	}
	return exs
}

func buildTLDR(title, short string, exs []example) string {
	var b strings.Builder
	b.WriteString("# " + progName + "\n\n")
	switch {
	case short != "":
		b.WriteString("> " + short + "\n")
	case title != "":
		b.WriteString("> " + title + "\n")
	default:
		b.WriteString("> " + progName + "\n")
	}
	b.WriteString("> More information: " + repoURL + ".\n\n")

	if len(exs) == 0 {
		b.WriteString("- Show help:\n\n")
		b.WriteString("`" + progName + " --help`\n")
		return b.String()
	}

	for i, ex := range exs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + ex.Desc + ":\n\n")
		b.WriteString("`" + ex.Cmd + "`\n")
	}
	return b.String()
}
