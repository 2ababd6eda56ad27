// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package config provides loading and typed accessors for charm-config's user
// configuration. The configuration is an optional YAML document named
// charm-config.yaml, found via CHARM_CONFIG_CFG or in $XDG_CONFIG_HOME,
// %APPDATA% or $HOME, in that order.
package config
