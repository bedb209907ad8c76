// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CarteraMesh

package fireblocks

import (
	"fmt"
	"os"
	"path/filepath"
)

// appNamespace is the directory name used under the per-user configuration
// directory, e.g. ~/.config/fireblocks on Linux.
const appNamespace = "fireblocks"

// baseConfigName is the base file every profile layers on top of.
const baseConfigName = "default.toml"

// Init loads configuration from the per-user configuration directory
// (~/.config/fireblocks/default.toml or the platform equivalent) with no
// profile overrides, using a default Loader.
func Init() (*FireblocksConfig, error) {
	return NewLoader().LoadProfiles()
}

// InitWithProfiles loads default.toml from the per-user configuration
// directory, then applies <profile>.toml for each profile in order, using a
// default Loader.
func InitWithProfiles(profiles ...string) (*FireblocksConfig, error) {
	return NewLoader().LoadProfiles(profiles...)
}

// LoadProfiles resolves the per-user configuration directory, uses
// default.toml inside it as the base file, and layers <profile>.toml for
// each named profile in order.
//
// A named profile file that does not exist is a hard ProfileNotFoundError.
// WithSkipMissingProfiles relaxes this to a skip with a warning; a
// misconfigured profile name then degrades to the base configuration
// instead of failing startup, which is why the strict mode is the default.
func (l *Loader) LoadProfiles(profiles ...string) (*FireblocksConfig, error) {
	dir, err := l.configDirPath()
	if err != nil {
		return nil, err
	}

	base := filepath.Join(dir, baseConfigName)
	overrides := make([]string, 0, len(profiles))
	for _, profile := range profiles {
		path := filepath.Join(dir, profile+".toml")
		if _, err := os.Stat(path); err != nil {
			if l.skipMissingProfiles {
				l.log.Warn().Str("profile", profile).Str("path", path).Msg("skipping missing profile config")
				continue
			}
			return nil, &ProfileNotFoundError{Profile: profile, Path: path}
		}
		l.log.Debug().Str("profile", profile).Str("path", path).Msg("adding profile config")
		overrides = append(overrides, path)
	}

	return l.Load(base, overrides...)
}

// configDirPath resolves the application's per-user configuration
// directory: an explicit WithConfigDir override first, then
// XDG_CONFIG_HOME, then the platform default from os.UserConfigDir.
func (l *Loader) configDirPath() (string, error) {
	if l.configDir != "" {
		return l.configDir, nil
	}
	if xdg := l.getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appNamespace), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, appNamespace), nil
}

func (l *Loader) getenv(key string) string {
	if l.environment != nil {
		return l.environment[key]
	}
	return os.Getenv(key)
}
