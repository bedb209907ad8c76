// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CarteraMesh

package fireblocks

import (
	"errors"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// FireblocksConfig is the fully-resolved configuration for a Fireblocks API
// client. It is populated by merging a base TOML file, zero or more override
// files, and FIREBLOCKS_-prefixed environment variables, and is immutable
// after load.
//
// Struct tags:
//   - mapstructure — key name in the merged configuration tree.
//   - ",remain"    — catch-all for keys that match no declared field.
type FireblocksConfig struct {
	// APIKey is the Fireblocks API key. Required.
	// Key: api_key. Env: FIREBLOCKS_API_KEY.
	APIKey string `mapstructure:"api_key"`

	// URL is the base URL of the Fireblocks API, e.g.
	// "https://sandbox-api.fireblocks.io/v1". Required.
	// Env: FIREBLOCKS_URL.
	URL string `mapstructure:"url"`

	// SecretPath is an optional filesystem path to the signing key. A
	// leading ~ is expanded to the user's home directory and a .gpg
	// extension routes the file through the configured Decryptor.
	// Env: FIREBLOCKS_SECRET_PATH.
	SecretPath string `mapstructure:"secret_path"`

	// Secret is an optional inline signing key. When non-empty it takes
	// priority over SecretPath in GetKey.
	// Env: FIREBLOCKS_SECRET.
	Secret string `mapstructure:"secret"`

	// Display holds settings consumed by the external display layer.
	Display DisplayConfig `mapstructure:"display"`

	// Signer holds transaction signing settings.
	Signer Signer `mapstructure:"signer"`

	// Extra captures every key that matches no declared field, including
	// the contents of an explicit [extra] table. Values stay opaque until
	// a caller extracts them with GetExtra or GetExtraDuration.
	Extra map[string]any `mapstructure:",remain"`

	// Debug enables debug mode. Default false.
	// Env: FIREBLOCKS_DEBUG.
	Debug bool `mapstructure:"debug"`

	// Mainnet selects the production network. Default false.
	// Env: FIREBLOCKS_MAINNET.
	Mainnet bool `mapstructure:"mainnet"`

	// Seams injected by the Loader. Nil values fall back to os defaults
	// (os.UserHomeDir) or, for the decryptor, to reading .gpg files
	// verbatim.
	decryptor Decryptor
	homeDir   func() (string, error)
}

// DisplayConfig holds output rendering settings for the external display
// layer.
type DisplayConfig struct {
	// Output selects the rendering format. Default Table.
	// Key: display.output. Env: FIREBLOCKS_DISPLAY_OUTPUT.
	Output OutputFormat `mapstructure:"output"`
}

// Signer holds settings for polling a signing vault.
type Signer struct {
	// PollTimeout is how long to wait for a signature before giving up.
	// Accepts an integer or decimal string count of seconds.
	// Default 180s when absent.
	PollTimeout time.Duration `mapstructure:"poll_timeout"`

	// PollInterval is the delay between signature status polls.
	// Accepts an integer or decimal string count of seconds.
	// Default 5s when absent.
	PollInterval time.Duration `mapstructure:"poll_interval"`

	// Vault identifies the signing vault by id. Required.
	Vault string `mapstructure:"vault"`

	// SignOnly skips broadcasting after signing. Default false.
	SignOnly bool `mapstructure:"sign_only"`
}

// decodeTree deserializes the final merged key tree into a FireblocksConfig
// and validates the required fields.
func decodeTree(tree map[string]any) (*FireblocksConfig, error) {
	var cfg FireblocksConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &cfg,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			decodeSecondsHook,
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if err := dec.Decode(tree); err != nil {
		var invalid *InvalidDurationError
		if errors.As(err, &invalid) {
			return nil, invalid
		}
		return nil, &ParseError{Err: err}
	}
	cfg.hoistExtraTable()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// hoistExtraTable flattens an explicit [extra] table into the top level of
// the Extra bucket so that a key declared as [extra] rpc_url is addressed as
// "rpc_url", not "extra.rpc_url". Table entries win over stray top-level
// keys of the same name.
func (c *FireblocksConfig) hoistExtraTable() {
	if c.Extra == nil {
		c.Extra = map[string]any{}
	}
	sub, ok := c.Extra["extra"].(map[string]any)
	if !ok {
		return
	}
	delete(c.Extra, "extra")
	for k, v := range sub {
		c.Extra[k] = v
	}
}

// validate checks that the final merged [FireblocksConfig] satisfies the
// invariants a caller relies on at startup: the API credentials and the
// signing vault id must be present. Secret material is deliberately not
// checked here; it is resolved lazily by GetKey.
func (c *FireblocksConfig) validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.URL == "" {
		return ErrMissingURL
	}
	if c.Signer.Vault == "" {
		return ErrMissingVault
	}
	return nil
}
