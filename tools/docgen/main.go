// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

// docgen renders docs/charm-config.md into
//   - docs/man/share/man1/charm-config.1 via md2man
//   - docs/tldr/charm-config.md from the short description and quick examples

const (
	progName = "charm-config"
	repoURL  = "https://github.com/staranto/charmconfig"
)

func main() {
	var (
		repoRoot           string
		writeOnlyIfChanged bool
	)

	flag.StringVar(&repoRoot, "root", ".", "repo root (default current dir)")
	flag.BoolVar(&writeOnlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	inPath := filepath.Join(repoRoot, "docs", progName+".md")
	manOutDir := filepath.Join(repoRoot, "docs", "man", "share", "man1")
	tldrOutDir := filepath.Join(repoRoot, "docs", "tldr")

	raw, err := os.ReadFile(inPath)
	if err != nil {
		fatalf("reading %s: %v", inPath, err)
	}

	for _, dir := range []string{manOutDir, tldrOutDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatalf("creating output dir %s: %v", dir, err)
		}
	}

	manPath := filepath.Join(manOutDir, progName+".1")
	if err := writeFileIfChanged(manPath, md2man.Render(raw), writeOnlyIfChanged); err != nil {
		fatalf("writing man page: %v", err)
	}

	title, shortDesc := extractTitleAndShortDesc(string(raw))
	tldr := buildTLDR(title, shortDesc, extractQuickExamples(string(raw)))
	tldrPath := filepath.Join(tldrOutDir, progName+".md")
	if err := writeFileIfChanged(tldrPath, []byte(tldr), writeOnlyIfChanged); err != nil {
		fatalf("writing TLDR: %v", err)
	}
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}

func writeFileIfChanged(path string, content []byte, onlyIfChanged bool) error {
	if !onlyIfChanged {
		return os.WriteFile(path, content, 0o644)
	}
	old, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.WriteFile(path, content, 0o644)
		}
		return err
	}
	if bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(content)) {
		return nil
	}
	return os.WriteFile(path, content, 0o644)
}
