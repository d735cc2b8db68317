package engine

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/lmdrew96/chaoslimba/internal/exposure"
	"github.com/lmdrew96/chaoslimba/internal/feedback"
	"github.com/lmdrew96/chaoslimba/internal/features"
	"github.com/lmdrew96/chaoslimba/internal/llm"
	"github.com/lmdrew96/chaoslimba/internal/proficiency"
	"github.com/lmdrew96/chaoslimba/internal/store"
)

func newTestEngine(t *testing.T, provider llm.Provider) (*Engine, *store.Store) {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	if err := s.FeatureRepo().Seed(ctx, features.Catalog()); err != nil {
		t.Fatalf("seed features: %v", err)
	}
	if err := s.ContentRepo().Seed(ctx, features.StarterContent()); err != nil {
		t.Fatalf("seed content: %v", err)
	}

	e := New(Options{
		Store:    s,
		Provider: provider,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	t.Cleanup(e.Close)
	return e, s
}

func grammarResponse() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(
		`{"corrected_text": "ok", "errors": [], "grammar_score": 85, "confidence": 0.9}`,
	)}
}

func TestAggregateValidation(t *testing.T) {
	e, _ := newTestEngine(t, llm.NewMockProvider())

	cases := []struct {
		name   string
		params AggregateParams
	}{
		{"missing user", AggregateParams{Input: feedback.Input{
			Modality: feedback.ModalityText, UserText: "x", ExpectedText: "x",
		}}},
		{"missing text", AggregateParams{UserID: "u1", Input: feedback.Input{
			Modality: feedback.ModalityText, ExpectedText: "x",
		}}},
		{"bad modality", AggregateParams{UserID: "u1", Input: feedback.Input{
			Modality: "video", UserText: "x", ExpectedText: "x",
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := e.Aggregate(context.Background(), tc.params)
			if _, ok := err.(*ValidationError); !ok {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
		})
	}
}

func TestAggregateGeneratesSessionID(t *testing.T) {
	e, _ := newTestEngine(t, llm.NewMockProvider(grammarResponse()))

	res, sessionID, err := e.Aggregate(context.Background(), AggregateParams{
		UserID: "u1",
		Input: feedback.Input{
			Modality: feedback.ModalityText, UserText: "hola mundo", ExpectedText: "hola mundo",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sessionID == "" {
		t.Error("no session id generated")
	}
	// Lexical semantic fallback on identical text gives similarity 1:
	// 0.6*85 + 0.4*100 = 91.
	if res.OverallScore != 91 {
		t.Errorf("OverallScore = %d, want 91", res.OverallScore)
	}
}

func TestTrackThenSelectBiasesWeakFeature(t *testing.T) {
	e, _ := newTestEngine(t, llm.NewMockProvider())
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		e.Track(ctx, exposure.Params{
			UserID:    "u1",
			SessionID: "s1",
			Corrected: []string{"ser_vs_estar"},
		})
	}
	e.Close() // drain background appends

	sel, err := e.SelectNext(ctx, "u1", "A1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.IsFirstSession {
		t.Error("IsFirstSession set despite tracked history")
	}
}

func TestSelectNextValidatesLevel(t *testing.T) {
	e, _ := newTestEngine(t, llm.NewMockProvider())

	_, err := e.SelectNext(context.Background(), "u1", "Z9", 0)
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestRecordOutcomeRoundTrip(t *testing.T) {
	e, _ := newTestEngine(t, llm.NewMockProvider())
	ctx := context.Background()

	tier, err := e.RecordOutcome(ctx, "u1", "gustar_verbs", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tier != 1 {
		t.Errorf("tier = %d, want 1 after a single correct", tier)
	}
}

func TestComputeLevelPersistsRecord(t *testing.T) {
	e, s := newTestEngine(t, llm.NewMockProvider())
	ctx := context.Background()

	score := 70.0
	skills := proficiency.Skills{
		Listening: &score, Reading: &score, Speaking: &score, Writing: &score,
	}
	level, weighted, err := e.ComputeLevel(ctx, "u1", skills, proficiency.SelfIntermediate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 70*0.8 + 20*0.2 = 60 -> B2.
	if weighted != 60 {
		t.Errorf("weighted = %v, want 60", weighted)
	}
	if level != proficiency.LevelB2 {
		t.Errorf("level = %s, want B2", level)
	}

	records, err := s.ProficiencyRepo().Recent(ctx, "u1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].CEFRLevel != proficiency.LevelB2 {
		t.Errorf("stored level = %s, want B2", records[0].CEFRLevel)
	}
}

func TestNewChallengeGenerates(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"type": "recognition",
		"prompt": "¿Cuál es correcto?",
		"choices": ["soy cansado", "estoy cansado", "es cansado", "está cansado"],
		"expected_answer": "estoy cansado",
		"hint": "Temporary states take estar."
	}`)})
	e, _ := newTestEngine(t, provider)

	target, ch, err := e.NewChallenge(context.Background(), "u1", "A1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if target.Tier != 1 {
		t.Errorf("tier = %d, want 1 for fresh user", target.Tier)
	}
	if ch.Type != "recognition" || len(ch.Choices) != 4 {
		t.Errorf("challenge = %+v", ch)
	}
	if ch.FeatureKey != target.Feature.FeatureKey {
		t.Error("challenge feature does not match target")
	}
}
