// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package query

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records the invocation and replays a canned response.
type fakeRunner struct {
	name string
	args []string
	out  []byte
	err  error
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	f.name = name
	f.args = args
	return f.out, f.err
}

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return b
}

func TestRequestArgs(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{
			name: "bare",
			req:  Request{Charm: "cs:dummy-charm"},
			want: []string{"charm", "show", "--format=yaml", "cs:dummy-charm", "charm-config"},
		},
		{
			name: "channel and auth",
			req:  Request{Charm: "cs:dummy-charm", Channel: "edge", Auth: "foo"},
			want: []string{
				"charm", "show", "--format=yaml", "cs:dummy-charm", "charm-config",
				"--channel", "edge", "--auth", "foo",
			},
		},
		{
			name: "custom command",
			req:  Request{Charm: "mysql", Command: []string{"snap", "run", "charm"}},
			want: []string{"snap", "run", "charm", "show", "--format=yaml", "mysql", "charm-config"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Args())
		})
	}
}

func TestLoad(t *testing.T) {
	runner := &fakeRunner{out: readTestdata(t, "show.yaml")}
	req := Request{Charm: "cs:dummy-charm", Channel: "edge", Auth: "foo"}

	set, err := Load(context.Background(), runner, req)
	require.NoError(t, err)

	assert.Equal(t, "charm", runner.name)
	assert.Equal(t, []string{
		"show", "--format=yaml", "cs:dummy-charm", "charm-config",
		"--channel", "edge", "--auth", "foo",
	}, runner.args)

	assert.Equal(t, []string{"extra", "foo", "qux-url", "ratio", "retries"}, set.Names())
	assert.Equal(t, true, set["foo"].Default)
	assert.Equal(t, "boolean", set["foo"].Type)
	assert.Equal(t, "Does the foo if true\nor the bar if false\n", set["foo"].Description)
	assert.Equal(t, "https://qux.io/with-a-long-url", set["qux-url"].Default)
	assert.Equal(t, 3, set["retries"].Default)
	assert.Equal(t, 0.5, set["ratio"].Default)
	assert.Nil(t, set["extra"].Default)
}

func TestLoad_None(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty options", doc: "charm-config:\n  Options: {}\n"},
		{name: "null options", doc: "charm-config:\n  Options:\n"},
		{name: "no charm-config", doc: "id:\n  Id: cs:dummy-charm-1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{out: []byte(tt.doc)}
			set, err := Load(context.Background(), runner, Request{Charm: "cs:dummy-charm"})
			require.NoError(t, err)
			assert.NotNil(t, set)
			assert.Equal(t, 0, set.Len())
			assert.Equal(t, []string{"show", "--format=yaml", "cs:dummy-charm", "charm-config"}, runner.args)
		})
	}
}

func TestLoad_ExitError(t *testing.T) {
	runner := &fakeRunner{err: &ExitError{Command: "charm", Code: 3}}

	_, err := Load(context.Background(), runner, Request{Charm: "cs:dummy-charm"})
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
	assert.Contains(t, err.Error(), "status 3")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		out     string
		wantErr string
	}{
		{name: "missing charm", req: Request{}, wantErr: "charm ID is required"},
		{name: "bad channel", req: Request{Charm: "x", Channel: "nightly"}, wantErr: "invalid channel"},
		{name: "empty output", req: Request{Charm: "x"}, out: "  \n", wantErr: "empty response"},
		{name: "not yaml", req: Request{Charm: "x"}, out: "charm-config: [unterminated", wantErr: "failed to parse"},
		{name: "wrong shape", req: Request{Charm: "x"}, out: "charm-config: nope\n", wantErr: "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{out: []byte(tt.out)}
			_, err := Load(context.Background(), runner, tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_NormalizesNestedMaps(t *testing.T) {
	doc := "charm-config:\n  Options:\n    ports:\n      Default:\n        1: http\n        nested: {2: two}\n      Description: Port map\n      Type: string\n"

	set, err := Parse([]byte(doc))
	require.NoError(t, err)

	def, ok := set["ports"].Default.(map[string]any)
	require.True(t, ok, "default should be a string keyed map, got %T", set["ports"].Default)
	assert.Equal(t, "http", def["1"])
	assert.Equal(t, map[string]any{"2": "two"}, def["nested"])
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    []string
		wantErr bool
	}{
		{name: "empty", spec: "", want: []string{"charm"}},
		{name: "blank", spec: "   ", want: []string{"charm"}},
		{name: "single", spec: "charm", want: []string{"charm"}},
		{name: "words", spec: "snap run charm", want: []string{"snap", "run", "charm"}},
		{name: "quoted", spec: `"/opt/my tools/charm"`, want: []string{"/opt/my tools/charm"}},
		{name: "unterminated quote", spec: `"charm`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidChannel(t *testing.T) {
	for _, c := range append([]string{""}, Channels...) {
		assert.True(t, ValidChannel(c), c)
	}
	assert.False(t, ValidChannel("nightly"))
	assert.False(t, ValidChannel("Stable"))
}

func TestQuoteArgs(t *testing.T) {
	got := quoteArgs([]string{"charm", "show", "my charm", "--auth", "user:pw"}, "user:pw")
	assert.Equal(t, "charm show 'my charm' --auth REDACTED", got)
}

func posixShell(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not found")
	}
	return sh
}

func TestExecRunner(t *testing.T) {
	sh := posixShell(t)

	out, err := ExecRunner{}.Output(context.Background(), sh, "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))

	_, err = ExecRunner{}.Output(context.Background(), sh, "-c", "exit 5")
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 5, exitErr.ExitCode())
	assert.Nil(t, exitErr.Signal)

	_, err = ExecRunner{}.Output(context.Background(), filepath.Join(t.TempDir(), "no-such-charm"))
	require.Error(t, err)
	assert.False(t, errors.As(err, &exitErr))
}

func TestExecRunner_KilledBySignal(t *testing.T) {
	sh := posixShell(t)

	_, err := ExecRunner{}.Output(context.Background(), sh, "-c", "kill -9 $$")
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 247, exitErr.ExitCode())
	assert.Equal(t, syscall.SIGKILL, exitErr.Signal)
	assert.Contains(t, exitErr.Error(), "killed by signal")
}
