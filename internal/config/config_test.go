package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "FP.CPI.TOTL.ZG", cfg.Indicator)
	assert.Equal(t, 2010, cfg.YearFrom)
	assert.Equal(t, 2024, cfg.YearTo)
	assert.Equal(t, int64(42), cfg.ClusterSeed)
	assert.Equal(t, 10.0, cfg.HighInflation)
	assert.Equal(t, "@hourly", cfg.RefreshSchedule)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("YEAR_FROM", "2015")
	t.Setenv("HIGH_INFLATION_THRESHOLD", "7.5")
	t.Setenv("DEV_MODE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, 2015, cfg.YearFrom)
	assert.Equal(t, 7.5, cfg.HighInflation)
	assert.True(t, cfg.DevMode)
}

func TestValidateRejectsInvertedYears(t *testing.T) {
	t.Setenv("YEAR_FROM", "2024")
	t.Setenv("YEAR_TO", "2010")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRejectsEmptyCachePath(t *testing.T) {
	cfg := &Config{WorldBankURL: "https://example.com", YearFrom: 2010, YearTo: 2024}
	assert.Error(t, cfg.Validate())
}
