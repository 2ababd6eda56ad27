// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionSet(t *testing.T) {
	set := OptionSet{
		"qux-url": {Default: "https://qux.io", Type: "string"},
		"foo":     {Default: true, Type: "boolean"},
		"Zed":     {Default: 1, Type: "int"},
	}

	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []string{"Zed", "foo", "qux-url"}, set.Names())

	sorted := set.Sorted()
	assert.Len(t, sorted, 3)
	assert.Equal(t, "Zed", sorted[0].Name)
	assert.Equal(t, "qux-url", sorted[2].Name)
	assert.Empty(t, set["foo"].Name, "stored options stay untouched")

	opt, ok := set.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, "foo", opt.Name)
	assert.Equal(t, true, opt.Default)

	_, ok = set.Get("bar")
	assert.False(t, ok)
}

func TestOptionSet_Empty(t *testing.T) {
	var set OptionSet
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Names())
	assert.Empty(t, set.Sorted())
}
