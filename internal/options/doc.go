// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package options holds the data model for a charm's declared configuration:
// the individual Option and the OptionSet keyed by option name.
package options
