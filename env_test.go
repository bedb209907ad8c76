package fireblocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnvLayer_Shape verifies that set variables fold into a nested key
// tree and unset ones leave no trace.
func TestEnvLayer_Shape(t *testing.T) {
	layer, err := envLayer(map[string]string{
		"FIREBLOCKS_API_KEY":      "k",
		"FIREBLOCKS_SECRET":       "s",
		"FIREBLOCKS_MAINNET":      "true",
		"FIREBLOCKS_SIGNER_VAULT": "3",
	})
	require.NoError(t, err)

	assert.Equal(t, "k", layer["api_key"])
	assert.Equal(t, "s", layer["secret"])
	assert.Equal(t, true, layer["mainnet"])
	assert.Equal(t, map[string]any{"vault": "3"}, layer["signer"])

	_, hasURL := layer["url"]
	assert.False(t, hasURL)
	_, hasDisplay := layer["display"]
	assert.False(t, hasDisplay)
}

// TestEnvLayer_Empty verifies that an empty environment produces an empty
// layer rather than a layer of zero values.
func TestEnvLayer_Empty(t *testing.T) {
	layer, err := envLayer(map[string]string{})
	require.NoError(t, err)
	assert.Empty(t, layer)
}

// TestEnvLayer_UnprefixedIgnored verifies that variables without the
// FIREBLOCKS_ prefix are ignored.
func TestEnvLayer_UnprefixedIgnored(t *testing.T) {
	layer, err := envLayer(map[string]string{"SECRET": "nope", "API_KEY": "nope"})
	require.NoError(t, err)
	assert.Empty(t, layer)
}
