// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// FileName is the base name of the config file.
const FileName = "charm-config.yaml"

// EnvConfigFile overrides the config file search.
const EnvConfigFile = "CHARM_CONFIG_CFG"

// Type is a loaded config file. Source is empty when no file was found.
type Type struct {
	Source string
	Data   map[string]any
}

// Config is the process-wide config, filled by Load.
var Config Type

// Load finds and parses the config file and stores it in Config.
func Load() (Type, error) {
	path, err := getConfigPath()
	if err != nil {
		return Type{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	Config = Type{Source: path, Data: data}
	return Config, nil
}

// get walks a dotted key such as colors.title through nested mappings.
func (cfg *Type) get(key string) (any, error) {
	var current any = cfg.Data
	for _, part := range strings.Split(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: %q is not a mapping", key, part)
		}
		if current, ok = m[part]; !ok {
			return nil, fmt.Errorf("%s: not set", key)
		}
	}
	return current, nil
}

// lookup lazily loads the config and resolves key.
func lookup(key string) (any, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}
	return Config.get(key)
}

// GetString returns the string at key. When key is unset the first default,
// if any, is returned instead of an error.
func GetString(key string, defaultValue ...string) (string, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s: value is not a string", key)
	}
	return s, nil
}

// GetInt is GetString for integers. YAML floats are truncated.
func GetInt(key string, defaultValue ...int) (int, error) {
	val, err := lookup(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	}
	return 0, fmt.Errorf("%s: value is not an int", key)
}

func getConfigPath() (string, error) {
	if p := os.Getenv(EnvConfigFile); p != "" {
		info, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf("config file not found: %s", p)
		}
		if info.IsDir() {
			return "", fmt.Errorf("%s points to a directory: %s", EnvConfigFile, p)
		}
		log.Debugf("using config file: %s", p)
		return p, nil
	}

	for _, env := range []string{"XDG_CONFIG_HOME", "APPDATA", "HOME"} {
		dir := os.Getenv(env)
		if dir == "" {
			continue
		}
		file := filepath.Join(dir, FileName)
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			log.Debugf("using config file: %s", file)
			return file, nil
		}
	}
	return "", fmt.Errorf("no %s found in $XDG_CONFIG_HOME, $APPDATA or $HOME", FileName)
}
