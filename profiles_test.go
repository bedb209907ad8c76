package fireblocks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeProfileDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

const profileBase = `api_key = "blah"
url = "https://sandbox-api.fireblocks.io/v1"

[signer]
vault = "0"
`

// ── profile layering ──────────────────────────────────────────────────────────

// TestLoadProfiles_Default verifies loading default.toml alone from the
// configured directory.
func TestLoadProfiles_Default(t *testing.T) {
	dir := writeProfileDir(t, map[string]string{"default.toml": profileBase})

	cfg, err := NewLoader(WithConfigDir(dir)).LoadProfiles()
	require.NoError(t, err)
	assert.Equal(t, "blah", cfg.APIKey)
}

// TestLoadProfiles_Ordered verifies that profiles layer on top of
// default.toml in the given order, last profile winning.
func TestLoadProfiles_Ordered(t *testing.T) {
	dir := writeProfileDir(t, map[string]string{
		"default.toml": profileBase,
		"staging.toml": "api_key = \"staging\"\nurl = \"https://staging\"\n",
		"prod.toml":    "api_key = \"production\"\nmainnet = true\n",
	})

	cfg, err := NewLoader(WithConfigDir(dir)).LoadProfiles("staging", "prod")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.APIKey)
	assert.Equal(t, "https://staging", cfg.URL)
	assert.True(t, cfg.Mainnet)
	assert.Equal(t, "0", cfg.Signer.Vault)
}

// TestLoadProfiles_MissingBase verifies that an absent default.toml fails
// with a ConfigNotFoundError.
func TestLoadProfiles_MissingBase(t *testing.T) {
	dir := t.TempDir()

	_, err := NewLoader(WithConfigDir(dir)).LoadProfiles()
	require.Error(t, err)

	var notFound *ConfigNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, filepath.Join(dir, "default.toml"), notFound.Path)
}

// TestLoadProfiles_MissingProfileStrict verifies the default policy: a
// named profile that does not exist is a hard error naming the profile.
func TestLoadProfiles_MissingProfileStrict(t *testing.T) {
	dir := writeProfileDir(t, map[string]string{"default.toml": profileBase})

	_, err := NewLoader(WithConfigDir(dir)).LoadProfiles("production")
	require.Error(t, err)

	var notFound *ProfileNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "production", notFound.Profile)
	assert.Equal(t, filepath.Join(dir, "production.toml"), notFound.Path)
}

// TestLoadProfiles_MissingProfileRelaxed verifies the opt-in relaxed mode:
// missing profiles are skipped and the remaining layers still apply.
func TestLoadProfiles_MissingProfileRelaxed(t *testing.T) {
	dir := writeProfileDir(t, map[string]string{
		"default.toml": profileBase,
		"prod.toml":    "api_key = \"production\"\n",
	})

	cfg, err := NewLoader(WithConfigDir(dir), WithSkipMissingProfiles()).
		LoadProfiles("missing", "prod")
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.APIKey)
}

// ── directory resolution ──────────────────────────────────────────────────────

// TestLoadProfiles_XDGConfigHome verifies that XDG_CONFIG_HOME from the
// injected environment locates <xdg>/fireblocks.
func TestLoadProfiles_XDGConfigHome(t *testing.T) {
	xdg := t.TempDir()
	appDir := filepath.Join(xdg, "fireblocks")
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "default.toml"), []byte(profileBase), 0o600))

	loader := NewLoader(WithEnvironment(map[string]string{"XDG_CONFIG_HOME": xdg}))
	cfg, err := loader.LoadProfiles()
	require.NoError(t, err)
	assert.Equal(t, "blah", cfg.APIKey)
}

// TestInitWithProfiles verifies the package-level entry points against a
// process-level XDG_CONFIG_HOME.
func TestInitWithProfiles(t *testing.T) {
	xdg := t.TempDir()
	appDir := filepath.Join(xdg, "fireblocks")
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "default.toml"), []byte(profileBase), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "prod.toml"), []byte("api_key = \"production\"\n"), 0o600))
	t.Setenv("XDG_CONFIG_HOME", xdg)

	cfg, err := Init()
	require.NoError(t, err)
	assert.Equal(t, "blah", cfg.APIKey)

	cfg, err = InitWithProfiles("prod")
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.APIKey)
}
