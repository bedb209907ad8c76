package fireblocks

import (
	"errors"
	"fmt"
)

// ErrMissingSecret is returned by GetKey when the configuration carries
// neither an inline secret nor a secret_path.
var ErrMissingSecret = errors.New("missing secret key; check your configuration file or set env FIREBLOCKS_SECRET")

// Schema errors returned by validation when required keys are absent from
// every configured source.
var (
	// ErrMissingAPIKey indicates the api_key key is absent.
	ErrMissingAPIKey = errors.New("missing required key: api_key")
	// ErrMissingURL indicates the url key is absent.
	ErrMissingURL = errors.New("missing required key: url")
	// ErrMissingVault indicates the signer.vault key is absent.
	ErrMissingVault = errors.New("missing required key: signer.vault")
)

// ConfigNotFoundError indicates a configuration source file does not exist.
type ConfigNotFoundError struct {
	Path string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("config not found %s", e.Path)
}

// ParseError indicates a configuration source could not be parsed or the
// merged tree does not match the schema. Path names the offending file and
// is empty for schema-level failures.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parsing config: %v", e.Err)
	}
	return fmt.Sprintf("parsing config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError indicates a file read failure and carries the offending path with
// the underlying cause.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("IO error for file %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// InvalidDurationError indicates a duration value that is neither a
// non-negative integer nor a decimal string of whole seconds.
type InvalidDurationError struct {
	Value string
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid duration: %s", e.Value)
}

// NotPresentError indicates a requested extra configuration key is absent.
type NotPresentError struct {
	Key string
}

func (e *NotPresentError) Error() string {
	return fmt.Sprintf("key %q not present in extra configuration", e.Key)
}

// ProfileNotFoundError indicates a named profile file does not exist in the
// per-user configuration directory.
type ProfileNotFoundError struct {
	Profile string
	Path    string
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("profile config not found: %s (%s)", e.Profile, e.Path)
}

// DecryptError indicates the decryption engine failed on an encrypted
// secret file.
type DecryptError struct {
	Path string
	Err  error
}

func (e *DecryptError) Error() string {
	return fmt.Sprintf("decrypting %q: %v", e.Path, e.Err)
}

func (e *DecryptError) Unwrap() error { return e.Err }
