// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CarteraMesh

package fireblocks

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/rs/zerolog"
)

// Loader assembles a FireblocksConfig from layered sources. The zero-config
// loader reads the real process environment, resolves the home directory via
// os.UserHomeDir, carries no decryption capability, and logs nothing.
type Loader struct {
	log                 zerolog.Logger
	environment         map[string]string
	homeDir             func() (string, error)
	decryptor           Decryptor
	configDir           string
	skipMissingProfiles bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for source-resolution debug lines.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// WithEnvironment replaces the process environment with an explicit map for
// both the FIREBLOCKS_ overlay and the profile-directory lookup. Intended
// for tests that need deterministic values without mutating process state.
func WithEnvironment(environment map[string]string) Option {
	return func(l *Loader) { l.environment = environment }
}

// WithHomeDir replaces the home-directory lookup used for tilde expansion.
func WithHomeDir(homeDir func() (string, error)) Option {
	return func(l *Loader) { l.homeDir = homeDir }
}

// WithDecryptor installs the decryption capability applied to .gpg secret
// files. Without it, encrypted files are read verbatim.
func WithDecryptor(d Decryptor) Option {
	return func(l *Loader) { l.decryptor = d }
}

// WithConfigDir overrides the per-user configuration directory used by
// LoadProfiles instead of resolving XDG_CONFIG_HOME / os.UserConfigDir.
func WithConfigDir(dir string) Option {
	return func(l *Loader) { l.configDir = dir }
}

// WithSkipMissingProfiles relaxes profile resolution: a named profile file
// that does not exist is skipped with a warning instead of failing the load.
func WithSkipMissingProfiles() Option {
	return func(l *Loader) { l.skipMissingProfiles = true }
}

// NewLoader constructs a Loader with the given options.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the base file, merges each override file on top of it in order,
// merges FIREBLOCKS_-prefixed environment variables last, and deserializes
// the result. Every named file must exist.
func (l *Loader) Load(base string, overrides ...string) (*FireblocksConfig, error) {
	b := newTreeBuilder(l.log)
	b.withFile(base)
	for _, path := range overrides {
		b.withFile(path)
	}
	b.withEnv(l.environment)

	tree, err := b.build()
	if err != nil {
		return nil, err
	}
	if err := applyDurationDefaults(tree); err != nil {
		return nil, err
	}

	cfg, err := decodeTree(tree)
	if err != nil {
		return nil, err
	}
	cfg.homeDir = l.homeDir
	cfg.decryptor = l.decryptor
	l.log.Trace().Interface("config", cfg).Msg("loaded config")
	return cfg, nil
}

// Load assembles a FireblocksConfig from a base file, ordered override
// files, and the process environment, using a default Loader.
func Load(base string, overrides ...string) (*FireblocksConfig, error) {
	return NewLoader().Load(base, overrides...)
}

// treeBuilder accumulates configuration layers, each a nested key tree, and
// deep-merges them with later layers taking precedence.
type treeBuilder struct {
	layers []map[string]any
	err    error
	log    zerolog.Logger
}

func newTreeBuilder(log zerolog.Logger) *treeBuilder {
	return &treeBuilder{
		layers: make([]map[string]any, 0, 4),
		log:    log,
	}
}

func (b *treeBuilder) withFile(path string) *treeBuilder {
	layer, err := loadTOMLFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.log.Debug().Str("path", path).Msg("adding config source")
	b.layers = append(b.layers, layer)
	return b
}

func (b *treeBuilder) withEnv(environment map[string]string) *treeBuilder {
	layer, err := envLayer(environment)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if len(layer) > 0 {
		b.log.Debug().Msg("adding environment source")
		b.layers = append(b.layers, layer)
	}
	return b
}

func (b *treeBuilder) build() (map[string]any, error) {
	if b.err != nil {
		return nil, fmt.Errorf("building layered config: %w", b.err)
	}

	tree := map[string]any{}
	for _, layer := range b.layers {
		if err := mergo.Merge(&tree, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging config layers: %w", err)
		}
	}

	return tree, nil
}
