// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the charm-config CLI. It wires flags, validators,
// the config action and the mapping of errors to process exit codes.
package command
