// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// charm-config is the main package for the charm-config command line tool. It
// shows the configuration options a charm declares in the charm store, wiring
// the CLI and delegating to internal packages.
package main
