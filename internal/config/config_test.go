package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefaultWeights(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0.6, cfg.TextGrammarWeight)
	assert.Equal(t, 0.4, cfg.TextSemanticWeight)
	assert.Equal(t, 0.4, cfg.SpeechGrammarWeight)
	assert.Equal(t, 0.3, cfg.SpeechPronunciationWeight)
	assert.Equal(t, 0.2, cfg.SpeechSemanticWeight)
	assert.Equal(t, 0.1, cfg.SpeechIntonationWeight)
}

func TestValidateRejectsBadWeights(t *testing.T) {
	cfg := Default()
	cfg.TextGrammarWeight = 0.9
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadThresholds(t *testing.T) {
	cfg := Default()
	cfg.WeaknessThreshold = 1.5
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.TierAdvanceThreshold = 0
	assert.Error(t, cfg.Validate())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("LIMBA_WEAKNESS_THRESHOLD", "0.5")
	t.Setenv("LIMBA_TIER_ADVANCE_THRESHOLD", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.WeaknessThreshold)
	assert.Equal(t, 3, cfg.TierAdvanceThreshold)
	// Untouched keys keep defaults.
	assert.Equal(t, 0.6, cfg.TextGrammarWeight)
}
