// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package query runs the external charm store client and decodes the charm's
// declared configuration from its YAML output.
package query
