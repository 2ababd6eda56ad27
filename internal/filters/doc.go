// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package filters narrows an option set down to the names matching shell-style
// glob patterns supplied on the command line.
package filters
