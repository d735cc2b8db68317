package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (Default())
//  2. file (YAML) if LIMBA_CONFIG is set
//  3. env (prefix LIMBA_)
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("LIMBA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Environment variables: LIMBA_WEAKNESS_THRESHOLD, LIMBA_TIER_ADVANCE_THRESHOLD, ...
	// Map env keys like LIMBA_WEAK_FEATURE_BONUS -> weak_feature_bonus (flat keys).
	envProvider := env.Provider("LIMBA_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "limba_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects weight sets that cannot produce a score in [0,100].
func (c *Config) Validate() error {
	if !sumsToOne(c.TextGrammarWeight, c.TextSemanticWeight) {
		return fmt.Errorf("text weights must sum to 1, got %v + %v",
			c.TextGrammarWeight, c.TextSemanticWeight)
	}
	if !sumsToOne(c.SpeechGrammarWeight, c.SpeechPronunciationWeight,
		c.SpeechSemanticWeight, c.SpeechIntonationWeight) {
		return fmt.Errorf("speech weights must sum to 1")
	}
	if c.WeaknessThreshold < 0 || c.WeaknessThreshold > 1 {
		return fmt.Errorf("weakness_threshold must be in [0,1], got %v", c.WeaknessThreshold)
	}
	if c.TierAdvanceThreshold < 1 {
		return fmt.Errorf("tier_advance_threshold must be >= 1, got %d", c.TierAdvanceThreshold)
	}
	return nil
}

func sumsToOne(weights ...float64) bool {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	return sum > 0.999 && sum < 1.001
}
