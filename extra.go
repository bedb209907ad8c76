package fireblocks

import (
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// GetExtra extracts an extra configuration value as T. It fails with a
// NotPresentError when the key is absent and a ParseError when the value
// cannot be converted to the requested type.
//
//	rpc, err := fireblocks.GetExtra[string](cfg, "rpc_url")
func GetExtra[T any](c *FireblocksConfig, key string) (T, error) {
	var out T
	value, ok := c.Extra[key]
	if !ok {
		return out, &NotPresentError{Key: key}
	}
	if err := mapstructure.Decode(value, &out); err != nil {
		return out, &ParseError{Err: err}
	}
	return out, nil
}

// GetExtraDuration extracts a numeric extra configuration value interpreted
// as a count of whole seconds.
func (c *FireblocksConfig) GetExtraDuration(key string) (time.Duration, error) {
	value, ok := c.Extra[key]
	if !ok {
		return 0, &NotPresentError{Key: key}
	}
	return decodeSeconds(value)
}

// HasExtra reports whether an extra configuration key exists. It never
// fails.
func (c *FireblocksConfig) HasExtra(key string) bool {
	_, ok := c.Extra[key]
	return ok
}
