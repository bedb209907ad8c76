// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CarteraMesh

// Package fireblocks loads, layers, and validates the configuration used to
// authenticate against the Fireblocks signing API.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier ones, key by key):
//  1. A base TOML file
//  2. Zero or more override TOML files, in caller-given order
//  3. Environment variables prefixed with FIREBLOCKS_
//
// Tables are deep-merged; scalar and array values are replaced wholesale.
// Keys that do not match a declared field are captured into the Extra bucket
// instead of being rejected, so downstream tooling can carry its own settings
// in the same file.
//
// The main entry points are [Load] for explicit file paths and [Init] /
// [InitWithProfiles] for the per-user config directory layout
// (~/.config/fireblocks/default.toml plus <profile>.toml overrides).
//
//	cfg, err := fireblocks.Load("config.toml")
//	if err != nil {
//	    log.Fatal().Err(err).Msg("config")
//	}
//	key, err := cfg.GetKey()
//
// Signing key material is resolved on demand by [FireblocksConfig.GetKey]:
// an inline secret wins over secret_path, a ~ prefix is expanded to the
// user's home directory, and files with a .gpg extension are handed to the
// optional [Decryptor] capability (see the gpg subpackage). Nothing is
// cached; each call re-reads from disk.
package fireblocks
