package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_LayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	doc := `
version: "1"
catalog_path: content/catalog.yml
game:
  initial_coins: 25
  draw_count: 7
  visitor_rate: 2.0
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "content/catalog.yml", cfg.CatalogPath)
	assert.Equal(t, 25, cfg.Game.InitialCoins)
	assert.Equal(t, 7, cfg.Game.DrawCount)
	assert.InDelta(t, 2.0, cfg.Game.VisitorRate, 1e-9)

	// Untouched fields keep their defaults.
	assert.Equal(t, 3, cfg.Game.MaxPlaysPerTurn)
	assert.Equal(t, []int{0, 100, 250, 450, 700}, cfg.Game.XPThresholds)
	assert.Equal(t, 10, cfg.Game.RarityWeights.Common)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestDefault_Invariants(t *testing.T) {
	bal := Default()

	assert.InDelta(t, 1.0, bal.WeightEnvironment+bal.WeightEconomy+bal.WeightSociety, 1e-9)
	assert.Greater(t, bal.DrawCount, 0)
	assert.Greater(t, bal.MaxPlaysPerTurn, 0)
	assert.NotEmpty(t, bal.XPThresholds)
	for i := 1; i < len(bal.XPThresholds); i++ {
		assert.Greater(t, bal.XPThresholds[i], bal.XPThresholds[i-1])
	}
}

func TestServerFromEnv(t *testing.T) {
	t.Setenv("SISTUR_ADDR", ":9999")
	t.Setenv("SISTUR_DEBUG", "true")

	s, err := ServerFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9999", s.Addr)
	assert.Equal(t, "data", s.DataDir)
	assert.True(t, s.Debug)
}
