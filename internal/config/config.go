// Package config holds the engine's tunable policy in one place: scoring
// weights, the weakness threshold, selection bonuses, the tier advancement
// threshold, and operational knobs. The constants are defaults inferred from
// historical scoring behavior; keeping them here lets them be recalibrated
// without touching aggregation or targeting logic.
package config

// Config contains engine policy and operational configuration.
type Config struct {
	// TextGrammarWeight and TextSemanticWeight combine grammar score and
	// semantic similarity for text submissions. Must sum to 1.
	TextGrammarWeight  float64 `koanf:"text_grammar_weight"`
	TextSemanticWeight float64 `koanf:"text_semantic_weight"`

	// Speech weights combine four signals. Must sum to 1.
	SpeechGrammarWeight       float64 `koanf:"speech_grammar_weight"`
	SpeechPronunciationWeight float64 `koanf:"speech_pronunciation_weight"`
	SpeechSemanticWeight      float64 `koanf:"speech_semantic_weight"`
	SpeechIntonationWeight    float64 `koanf:"speech_intonation_weight"`

	// IntonationWarningPenalty is subtracted from 100 per intonation
	// warning (floored at 0) to form the intonation score.
	IntonationWarningPenalty float64 `koanf:"intonation_warning_penalty"`

	// Neutral defaults substituted when a component fails, keeping the
	// score defined under partial failure.
	NeutralGrammarScore       float64 `koanf:"neutral_grammar_score"`
	NeutralSimilarity         float64 `koanf:"neutral_similarity"`
	NeutralPronunciationScore float64 `koanf:"neutral_pronunciation_score"`
	NeutralIntonationScore    float64 `koanf:"neutral_intonation_score"`

	// AnalyzerTimeoutMS bounds each analyzer call during aggregation.
	AnalyzerTimeoutMS int `koanf:"analyzer_timeout_ms"`

	// WeaknessThreshold: a feature with corrected/(produced+corrected+1)
	// at or above this ratio counts as weak.
	WeaknessThreshold float64 `koanf:"weakness_threshold"`

	// WeakFeatureBonus and NoveltyBonus are per-feature additions to the
	// base selection weight of 1.
	WeakFeatureBonus float64 `koanf:"weak_feature_bonus"`
	NoveltyBonus     float64 `koanf:"novelty_bonus"`

	// TierAdvanceThreshold is the consecutive-correct run needed to
	// advance a destabilization tier.
	TierAdvanceThreshold int `koanf:"tier_advance_threshold"`

	// FossilizationThreshold: unresolved occurrences of the same error
	// category at or above this count flag the pattern as fossilizing.
	FossilizationThreshold int `koanf:"fossilization_threshold"`

	// TrackerQueueSize and TrackerWorkers bound the fire-and-forget
	// persistence pool.
	TrackerQueueSize int `koanf:"tracker_queue_size"`
	TrackerWorkers   int `koanf:"tracker_workers"`

	// EmbeddingCacheTTLSecs bounds how long embedding vectors are reused.
	EmbeddingCacheTTLSecs int `koanf:"embedding_cache_ttl_secs"`

	// SemanticThreshold is the similarity at or above which a response
	// counts as a semantic match.
	SemanticThreshold float64 `koanf:"semantic_threshold"`
}

// Default returns the engine's default policy.
func Default() *Config {
	return &Config{
		TextGrammarWeight:  0.6,
		TextSemanticWeight: 0.4,

		SpeechGrammarWeight:       0.4,
		SpeechPronunciationWeight: 0.3,
		SpeechSemanticWeight:      0.2,
		SpeechIntonationWeight:    0.1,

		IntonationWarningPenalty: 20,

		NeutralGrammarScore:       70,
		NeutralSimilarity:         0.7,
		NeutralPronunciationScore: 70,
		NeutralIntonationScore:    100,

		AnalyzerTimeoutMS: 10_000,

		WeaknessThreshold: 0.4,
		WeakFeatureBonus:  2.0,
		NoveltyBonus:      0.5,

		TierAdvanceThreshold:   2,
		FossilizationThreshold: 3,

		TrackerQueueSize: 1024,
		TrackerWorkers:   4,

		EmbeddingCacheTTLSecs: 3600,
		SemanticThreshold:     0.75,
	}
}
