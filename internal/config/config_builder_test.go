package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{RemoteSettings: RemoteSettings{Server: "stage"}},
		&StructuredConfig{RemoteSettings: RemoteSettings{CollectionName: "quicksuggest"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "stage", cfg.RemoteSettings.Server)
	assert.Equal(t, "quicksuggest", cfg.RemoteSettings.CollectionName)
}

// TestBuild_LastSourceWins verifies that a later non-zero field overrides an
// earlier one while zero fields leave earlier values intact.
func TestBuild_LastSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{RemoteSettings: RemoteSettings{Server: "prod", BucketName: "main"}},
		&StructuredConfig{RemoteSettings: RemoteSettings{Server: "dev"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.RemoteSettings.Server)
	assert.Equal(t, "main", cfg.RemoteSettings.BucketName)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("REMOTE_SETTINGS_SERVER", "stage")
	t.Setenv("REMOTE_SETTINGS_COLLECTION_NAME", "quicksuggest")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "stage", b.configs[0].RemoteSettings.Server)
	assert.Equal(t, "quicksuggest", b.configs[0].RemoteSettings.CollectionName)
}

// TestWithEnv_SetsErrorOnBadDuration verifies that an unparsable env value
// is recorded on the builder and no config is appended.
func TestWithEnv_SetsErrorOnBadDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	resetFlags(t)

	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags())
	assert.Len(t, b.configs, 1)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.RemoteSettings.Server = "dev"
	payload.RemoteSettings.CollectionName = "json-collection"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "dev", b.configs[1].RemoteSettings.Server)
	assert.Equal(t, "json-collection", b.configs[1].RemoteSettings.CollectionName)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.RemoteSettings.BucketName = "first"
	last := StructuredJSONConfig{}
	last.RemoteSettings.BucketName = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].RemoteSettings.BucketName)
}

// TestGetStructuredConfig_JSONOverridesEnv verifies the full source chain:
// the JSON file named by CONFIG overrides values taken from the environment.
func TestGetStructuredConfig_JSONOverridesEnv(t *testing.T) {
	resetFlags(t)

	payload := StructuredJSONConfig{}
	payload.RemoteSettings.Server = "http://localhost:8000"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("CONFIG", path)
	t.Setenv("REMOTE_SETTINGS_SERVER", "stage")
	t.Setenv("REMOTE_SETTINGS_COLLECTION_NAME", "quicksuggest")

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.RemoteSettings.Server)
	assert.Equal(t, "quicksuggest", cfg.RemoteSettings.CollectionName)
	assert.Equal(t, path, cfg.JSONFilePath)
}
