package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
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

func newTestFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a non-zero field of a later source
// overrides the same field of an earlier one, while zero fields keep the
// earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{SignerSecret: "first", HashKey: "kept"}},
		&StructuredConfig{App: App{SignerSecret: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.App.SignerSecret)
	assert.Equal(t, "kept", cfg.App.HashKey)
}

func TestBuild_RejectsNegativeConcurrency(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Workers: Workers{DecryptConcurrency: -1}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_DesignatedNetwork(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, SepoliaChainID, cfg.Network.ChainID)
	assert.Equal(t, 8, cfg.Workers.DecryptConcurrency)
	assert.Equal(t, 5*time.Minute, cfg.App.PermitTTL)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_NilFlagSetIsSkipped(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_OverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_SIGNER_SECRET": "from-env"})
	fs := newTestFlagSet(t, "--signer-secret", "from-flag")

	cfg, err := newConfigBuilder().withDefaults().withEnv().withFlags(fs).build()
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.App.SignerSecret)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_PathFromEnv(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"signer_secret": "from-json"},
		"network": map[string]any{"chain_id": 31337},
	})
	setEnvVars(t, map[string]string{
		"CONFIG":            path,
		"APP_SIGNER_SECRET": "from-env",
	})

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.SignerSecret)
	assert.Equal(t, uint64(31337), cfg.Network.ChainID)
}

func TestWithJSON_MissingFile(t *testing.T) {
	clearEnvVars(t)
	fs := newTestFlagSet(t, "-c", "/definitely/not/here.json")

	cfg, err := GetStructuredConfig(fs)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestWithJSON_NoPathNoConfig(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}
