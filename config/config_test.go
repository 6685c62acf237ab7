package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	err := cfg.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "enable1", cfg.GetString(Lexicon))
	assert.Equal(t, 10, cfg.GetInt(PoolSize))
	assert.Equal(t, 10, cfg.GetInt(TableSize))
	assert.False(t, cfg.GetBool(Debug))
}

func TestLoadFlags(t *testing.T) {
	cfg := &Config{}
	err := cfg.Load([]string{"--pool-size", "12", "--lexicon", "csw21", "--debug"})
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.GetInt(PoolSize))
	assert.Equal(t, "csw21", cfg.GetString(Lexicon))
	assert.True(t, cfg.GetBool(Debug))
}

func TestAdjustRelativePaths(t *testing.T) {
	cfg := &Config{}
	err := cfg.Load(nil)
	require.NoError(t, err)

	cfg.AdjustRelativePaths("/opt/grabbag")
	assert.Equal(t, filepath.Join("/opt/grabbag", "data"), cfg.GetString(DataPath))

	// absolute paths stay put
	cfg.Set(DataPath, "/var/lib/grabbag")
	cfg.AdjustRelativePaths("/opt/grabbag")
	assert.Equal(t, "/var/lib/grabbag", cfg.GetString(DataPath))
}

func TestLexiconPath(t *testing.T) {
	cfg := &Config{}
	err := cfg.Load([]string{"--data-path", "/data", "--lexicon", "csw21"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/data", "lexica", "csw21.txt"), cfg.LexiconPath())
}
