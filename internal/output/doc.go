// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders an option set as a table, YAML, JSON, bare values
// or descriptions, and writes the resulting lines.
package output
