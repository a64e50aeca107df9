package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "http://score-model:9200", cfg.Model.URL)
	assert.Equal(t, 10*time.Second, cfg.Model.Timeout)
	assert.Equal(t, 20, cfg.Ranking.DefaultTopK)
	assert.Equal(t, 100, cfg.Ranking.MaxTopK)
	assert.Equal(t, 3, cfg.Ranking.CandidateMultiplier)
	assert.Equal(t, 24, cfg.Ranking.CandidateWindowHours)
	assert.Equal(t, 100, cfg.Ranking.InteractionLimit)
	assert.Equal(t, 30, cfg.Ranking.LookbackDays)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("RANKING_DEFAULT_TOP_K", "10")
	t.Setenv("SCORE_MODEL_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Ranking.DefaultTopK)
	assert.Equal(t, 2*time.Second, cfg.Model.Timeout)
}

func TestLoad_InvalidInteger(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("SCORE_MODEL_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
