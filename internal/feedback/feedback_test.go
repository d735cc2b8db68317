package feedback

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/lmdrew96/chaoslimba/internal/analyzer"
	"github.com/lmdrew96/chaoslimba/internal/config"
	"github.com/lmdrew96/chaoslimba/internal/metrics"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAggregator(a Analyzers) *Aggregator {
	return New(a, config.Default(), testLogger(), metrics.NewNop())
}

func healthyAnalyzers() Analyzers {
	return Analyzers{
		Grammar: &analyzer.MockGrammar{Result: &analyzer.GrammarResult{
			GrammarScore: 85, CorrectedText: "ok", Confidence: 0.9,
		}},
		Semantic: &analyzer.MockSemantic{Result: &analyzer.SemanticResult{
			Similarity: 0.9, SemanticMatch: true,
		}},
		Pronunciation: &analyzer.MockPronunciation{Result: &analyzer.PronunciationResult{Score: 75}},
		Intonation:    &analyzer.MockIntonation{Result: &analyzer.IntonationResult{}},
	}
}

func TestAggregateTextWorkedExample(t *testing.T) {
	// 0.6*85 + 0.4*90 = 87
	ag := newAggregator(healthyAnalyzers())

	res, err := ag.Aggregate(context.Background(), Input{
		Modality: ModalityText, UserText: "hola", ExpectedText: "hola",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OverallScore != 87 {
		t.Errorf("OverallScore = %d, want 87", res.OverallScore)
	}
	if len(res.ComponentResults) != 2 {
		t.Errorf("got %d component results, want 2 (grammar, semantic)", len(res.ComponentResults))
	}
	for kind, cr := range res.ComponentResults {
		if cr.Status != StatusHealthy {
			t.Errorf("%s status = %s, want healthy", kind, cr.Status)
		}
	}
}

func TestAggregateSpeechWorkedExampleHalfRoundsUp(t *testing.T) {
	// 0.4*70 + 0.3*75 + 0.2*80 + 0.1*80 = 74.5, rounds to 75.
	a := healthyAnalyzers()
	a.Grammar = &analyzer.MockGrammar{Result: &analyzer.GrammarResult{GrammarScore: 70}}
	a.Semantic = &analyzer.MockSemantic{Result: &analyzer.SemanticResult{Similarity: 0.8}}
	a.Intonation = &analyzer.MockIntonation{Result: &analyzer.IntonationResult{
		Warnings: []analyzer.IntonationWarning{{Word: "record", Severity: 0.6}},
	}}
	ag := newAggregator(a)

	res, err := ag.Aggregate(context.Background(), Input{
		Modality: ModalitySpeech, UserText: "x", ExpectedText: "x", Transcript: "x",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OverallScore != 75 {
		t.Errorf("OverallScore = %d, want 75", res.OverallScore)
	}
	if len(res.ComponentResults) != 4 {
		t.Errorf("got %d component results, want 4", len(res.ComponentResults))
	}
}

func TestAggregateAllFail(t *testing.T) {
	boom := errors.New("down")
	ag := newAggregator(Analyzers{
		Grammar:  &analyzer.MockGrammar{Err: boom},
		Semantic: &analyzer.MockSemantic{Err: boom},
	})

	_, err := ag.Aggregate(context.Background(), Input{
		Modality: ModalityText, UserText: "x", ExpectedText: "x",
	})
	var aerr *AggregationFailedError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected *AggregationFailedError, got %v", err)
	}
	if aerr.Attempted != 2 {
		t.Errorf("Attempted = %d, want 2", aerr.Attempted)
	}
}

func TestAggregateSubsetFailDegrades(t *testing.T) {
	// Grammar fails: neutral 70 substitutes. 0.6*70 + 0.4*90 = 78.
	a := healthyAnalyzers()
	a.Grammar = &analyzer.MockGrammar{Err: errors.New("down")}
	ag := newAggregator(a)

	res, err := ag.Aggregate(context.Background(), Input{
		Modality: ModalityText, UserText: "x", ExpectedText: "x",
	})
	if err != nil {
		t.Fatalf("subset failure should not error: %v", err)
	}
	if res.OverallScore != 78 {
		t.Errorf("OverallScore = %d, want 78 with neutral grammar default", res.OverallScore)
	}
	if res.ComponentResults[analyzer.KindGrammar].Status != StatusUnhealthy {
		t.Error("failed grammar component not marked unhealthy")
	}
	if res.ComponentResults[analyzer.KindSemantic].Status != StatusHealthy {
		t.Error("healthy semantic component mismarked")
	}
}

func TestAggregateMissingSpeechSignalsStillScores(t *testing.T) {
	// No transcript: pronunciation and intonation go unavailable and take
	// neutral defaults (70 and 100). 0.4*70+0.3*70+0.2*80+0.1*100 = 75.
	a := healthyAnalyzers()
	a.Grammar = &analyzer.MockGrammar{Result: &analyzer.GrammarResult{GrammarScore: 70}}
	a.Semantic = &analyzer.MockSemantic{Result: &analyzer.SemanticResult{Similarity: 0.8}}
	a.Pronunciation = &analyzer.MockPronunciation{Err: &analyzer.UnavailableError{
		Kind: analyzer.KindPronunciation, Err: analyzer.ErrNoSpeechSignal,
	}}
	ag := newAggregator(a)

	res, err := ag.Aggregate(context.Background(), Input{
		Modality: ModalitySpeech, UserText: "x", ExpectedText: "x",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OverallScore != 75 {
		t.Errorf("OverallScore = %d, want 75", res.OverallScore)
	}
	if res.ComponentResults[analyzer.KindPronunciation].Status != StatusUnhealthy {
		t.Error("missing pronunciation signal not marked unhealthy")
	}
	if res.ComponentResults[analyzer.KindIntonation].Status != StatusUnhealthy {
		t.Error("missing intonation signal not marked unhealthy")
	}
}

func TestAggregateScoreBounds(t *testing.T) {
	cases := []struct {
		name       string
		grammar    float64
		similarity float64
	}{
		{"floor", 0, 0},
		{"ceiling", 100, 1},
		{"mid", 50, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ag := newAggregator(Analyzers{
				Grammar:  &analyzer.MockGrammar{Result: &analyzer.GrammarResult{GrammarScore: tc.grammar}},
				Semantic: &analyzer.MockSemantic{Result: &analyzer.SemanticResult{Similarity: tc.similarity}},
			})
			res, err := ag.Aggregate(context.Background(), Input{
				Modality: ModalityText, UserText: "x", ExpectedText: "x",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.OverallScore < 0 || res.OverallScore > 100 {
				t.Errorf("OverallScore = %d out of [0,100]", res.OverallScore)
			}
		})
	}
}

func TestAggregateErrorPatterns(t *testing.T) {
	a := healthyAnalyzers()
	a.Grammar = &analyzer.MockGrammar{Result: &analyzer.GrammarResult{
		GrammarScore: 60,
		Errors: []analyzer.GrammarError{
			{Type: "grammar", Category: "verb_conjugation", LearnerProduction: "yo fue", CorrectForm: "yo fui", Confidence: 0.95},
			{Type: "vocabulary", Category: "false_friend", LearnerProduction: "embarazada", CorrectForm: "avergonzada", Confidence: 0.6},
		},
	}}
	a.Intonation = &analyzer.MockIntonation{Result: &analyzer.IntonationResult{
		Warnings: []analyzer.IntonationWarning{
			{Word: "papa", ExpectedMeaning: "potato", ActualMeaning: "father", Severity: 0.9},
		},
	}}
	ag := newAggregator(a)

	res, err := ag.Aggregate(context.Background(), Input{
		Modality: ModalitySpeech, UserText: "x", ExpectedText: "x", Transcript: "x",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.ErrorPatterns) != 3 {
		t.Fatalf("got %d error patterns, want 3 (2 grammar + 1 intonation)", len(res.ErrorPatterns))
	}
	if res.ErrorPatterns[0].Severity != SeverityHigh {
		t.Errorf("pattern 0 severity = %s, want high", res.ErrorPatterns[0].Severity)
	}
	if res.ErrorPatterns[1].Severity != SeverityMedium {
		t.Errorf("pattern 1 severity = %s, want medium", res.ErrorPatterns[1].Severity)
	}
	synth := res.ErrorPatterns[2]
	if synth.Type != "pronunciation" || synth.Category != "word_stress" {
		t.Errorf("synthesized pattern = %+v", synth)
	}
}

func TestSeverityBoundariesInclusiveUpward(t *testing.T) {
	cases := []struct {
		confidence float64
		want       string
	}{
		{0.9, SeverityHigh},
		{0.8, SeverityHigh},
		{0.79, SeverityMedium},
		{0.6, SeverityMedium},
		{0.5, SeverityMedium},
		{0.49, SeverityLow},
		{0.3, SeverityLow},
	}
	for _, tc := range cases {
		if got := SeverityFor(tc.confidence); got != tc.want {
			t.Errorf("SeverityFor(%v) = %s, want %s", tc.confidence, got, tc.want)
		}
	}
}

func TestAggregateSemanticFallbackMarkedDegraded(t *testing.T) {
	a := healthyAnalyzers()
	a.Semantic = &analyzer.MockSemantic{Result: &analyzer.SemanticResult{
		Similarity: 0.5, FallbackMethod: analyzer.FallbackLexical,
	}}
	ag := newAggregator(a)

	res, err := ag.Aggregate(context.Background(), Input{
		Modality: ModalityText, UserText: "x", ExpectedText: "x",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ComponentResults[analyzer.KindSemantic].Status != StatusDegraded {
		t.Error("lexical-fallback semantic component not marked degraded")
	}
}

func TestAggregateRelevanceAttemptedWithTopics(t *testing.T) {
	a := healthyAnalyzers()
	a.Relevance = &analyzer.MockRelevance{Result: &analyzer.RelevanceResult{
		RelevanceScore: 90, Interpretation: "on topic",
	}}
	ag := newAggregator(a)

	res, err := ag.Aggregate(context.Background(), Input{
		Modality: ModalityText, UserText: "x", ExpectedText: "x",
		ContentTopics: []string{"daily routine"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := res.ComponentResults[analyzer.KindRelevance]; !ok {
		t.Error("relevance component missing from results")
	}
	if res.Relevance == nil || res.Relevance.RelevanceScore != 90 {
		t.Errorf("Relevance = %+v", res.Relevance)
	}

	// Relevance is advisory: the score formula ignores it. 0.6*85+0.4*90 = 87.
	if res.OverallScore != 87 {
		t.Errorf("OverallScore = %d, want 87", res.OverallScore)
	}
}
