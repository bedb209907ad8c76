// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CarteraMesh

// Package gpg implements the OpenPGP decryption capability for encrypted
// secret files. A Decryptor is built from a local private keyring and
// installed on a loader with fireblocks.WithDecryptor; the core stays free
// of any OpenPGP dependency when the capability is not wanted.
package gpg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"

	fireblocks "github.com/CarteraMesh/fireblocks-config"
)

// Decryptor decrypts OpenPGP messages against a private keyring. Both
// armored and binary keyrings and messages are accepted.
type Decryptor struct {
	keyring    openpgp.EntityList
	passphrase []byte
}

var _ fireblocks.Decryptor = (*Decryptor)(nil)

// Option configures a Decryptor.
type Option func(*Decryptor)

// WithPassphrase supplies the passphrase protecting the private keys in the
// keyring. Without it, an encrypted private key fails decryption.
func WithPassphrase(passphrase []byte) Option {
	return func(d *Decryptor) { d.passphrase = passphrase }
}

// New builds a Decryptor from a keyring file on disk.
func New(keyringPath string, opts ...Option) (*Decryptor, error) {
	f, err := os.Open(keyringPath)
	if err != nil {
		return nil, fmt.Errorf("opening keyring %q: %w", keyringPath, err)
	}
	defer f.Close()
	return NewFromKeyRing(f, opts...)
}

// NewFromKeyRing builds a Decryptor from a keyring read from r.
func NewFromKeyRing(r io.Reader, opts ...Option) (*Decryptor, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keyring: %w", err)
	}

	var keyring openpgp.EntityList
	if bytes.Contains(raw, []byte("-----BEGIN PGP")) {
		keyring, err = openpgp.ReadArmoredKeyRing(bytes.NewReader(raw))
	} else {
		keyring, err = openpgp.ReadKeyRing(bytes.NewReader(raw))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing keyring: %w", err)
	}

	d := &Decryptor{keyring: keyring}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Decrypt decrypts a single OpenPGP message and returns its plaintext.
func (d *Decryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	var r io.Reader = bytes.NewReader(ciphertext)
	if bytes.Contains(ciphertext, []byte("-----BEGIN PGP MESSAGE")) {
		block, err := armor.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("decoding armored message: %w", err)
		}
		r = block.Body
	}

	md, err := openpgp.ReadMessage(r, d.keyring, d.promptFunc(), nil)
	if err != nil {
		return nil, fmt.Errorf("reading pgp message: %w", err)
	}
	plain, err := io.ReadAll(md.UnverifiedBody)
	if err != nil {
		return nil, fmt.Errorf("decrypting pgp message: %w", err)
	}
	return plain, nil
}

// promptFunc feeds the configured passphrase to ReadMessage exactly once.
// A second invocation means the passphrase was wrong; returning an error
// stops the otherwise endless prompt loop.
func (d *Decryptor) promptFunc() openpgp.PromptFunction {
	prompted := false
	return func(keys []openpgp.Key, _ bool) ([]byte, error) {
		if prompted || len(d.passphrase) == 0 {
			return nil, errors.New("private key passphrase missing or incorrect")
		}
		prompted = true
		for _, key := range keys {
			if key.PrivateKey != nil && key.PrivateKey.Encrypted {
				_ = key.PrivateKey.Decrypt(d.passphrase)
			}
		}
		return d.passphrase, nil
	}
}
