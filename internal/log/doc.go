// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package log configures the apex/log handler and level used across
// charm-config.
package log
