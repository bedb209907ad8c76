// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CarteraMesh

package fireblocks

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is the prefix shared by every recognized environment variable.
// The remainder of the name maps onto the configuration key tree, e.g.
// FIREBLOCKS_SECRET sets secret and FIREBLOCKS_SIGNER_VAULT sets
// signer.vault.
const EnvPrefix = "FIREBLOCKS_"

// envOverlay mirrors the FireblocksConfig schema with pointer fields so
// that a variable that is not set leaves no trace in the layer, while a set
// variable overrides every file source. Booleans are parsed structurally;
// durations stay strings for the seconds codec to decode.
type envOverlay struct {
	APIKey     *string `env:"API_KEY"`
	URL        *string `env:"URL"`
	Secret     *string `env:"SECRET"`
	SecretPath *string `env:"SECRET_PATH"`
	Debug      *bool   `env:"DEBUG"`
	Mainnet    *bool   `env:"MAINNET"`

	Display struct {
		Output *string `env:"OUTPUT"`
	} `envPrefix:"DISPLAY_"`

	Signer struct {
		Vault        *string `env:"VAULT"`
		PollTimeout  *string `env:"POLL_TIMEOUT"`
		PollInterval *string `env:"POLL_INTERVAL"`
		SignOnly     *bool   `env:"SIGN_ONLY"`
	} `envPrefix:"SIGNER_"`
}

// envLayer parses FIREBLOCKS_-prefixed variables into a key tree suitable
// for merging on top of the file layers. When environment is nil the real
// process environment is used; otherwise only the given map is consulted.
func envLayer(environment map[string]string) (map[string]any, error) {
	var overlay envOverlay
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(&overlay, opts); err != nil {
		return nil, fmt.Errorf("parsing environment overrides: %w", err)
	}

	layer := map[string]any{}
	putEnv(layer, "api_key", overlay.APIKey)
	putEnv(layer, "url", overlay.URL)
	putEnv(layer, "secret", overlay.Secret)
	putEnv(layer, "secret_path", overlay.SecretPath)
	putEnv(layer, "debug", overlay.Debug)
	putEnv(layer, "mainnet", overlay.Mainnet)

	display := map[string]any{}
	putEnv(display, "output", overlay.Display.Output)
	if len(display) > 0 {
		layer["display"] = display
	}

	signer := map[string]any{}
	putEnv(signer, "vault", overlay.Signer.Vault)
	putEnv(signer, "poll_timeout", overlay.Signer.PollTimeout)
	putEnv(signer, "poll_interval", overlay.Signer.PollInterval)
	putEnv(signer, "sign_only", overlay.Signer.SignOnly)
	if len(signer) > 0 {
		layer["signer"] = signer
	}

	return layer, nil
}

func putEnv[T any](m map[string]any, key string, v *T) {
	if v != nil {
		m[key] = *v
	}
}
