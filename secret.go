// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CarteraMesh

package fireblocks

import (
	"os"
	"path/filepath"
	"strings"
)

// Decryptor decrypts the raw bytes of an encrypted secret file. It is an
// optional capability: installed at Loader construction time with
// WithDecryptor, typically backed by the gpg subpackage.
type Decryptor interface {
	Decrypt(ciphertext []byte) ([]byte, error)
}

// GetKey resolves the raw signing-key bytes. The first source to succeed
// wins, in strict order:
//
//  1. The inline Secret, when non-empty. No file I/O occurs.
//  2. SecretPath, which must then be present (ErrMissingSecret otherwise).
//     A leading ~ is expanded to the home directory, and a file whose
//     extension case-insensitively matches .gpg is routed through the
//     configured Decryptor. Without a Decryptor the file bytes are
//     returned verbatim.
//
// Nothing is cached: every call re-reads and, if applicable, re-decrypts
// from disk. Callers that need to avoid repeated decryption must hold on to
// the returned bytes themselves.
func (c *FireblocksConfig) GetKey() ([]byte, error) {
	if c.Secret != "" {
		return []byte(c.Secret), nil
	}

	if c.SecretPath == "" {
		return nil, ErrMissingSecret
	}

	homeDir := c.homeDir
	if homeDir == nil {
		homeDir = os.UserHomeDir
	}
	path := expandTilde(c.SecretPath, homeDir)

	if c.decryptor != nil && strings.EqualFold(filepath.Ext(path), ".gpg") {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, &IOError{Path: path, Err: err}
		}
		plain, err := c.decryptor.Decrypt(raw)
		if err != nil {
			return nil, &DecryptError{Path: path, Err: err}
		}
		return plain, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return raw, nil
}
