package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/lmdrew96/chaoslimba/internal/llm"
)

func TestGrammarAnalyzeParsesResponse(t *testing.T) {
	content := `{
		"corrected_text": "Yo fui al mercado ayer.",
		"errors": [{
			"type": "grammar",
			"category": "verb_conjugation",
			"learner_production": "Yo fue",
			"correct_form": "Yo fui",
			"explanation": "First person preterite of ir is fui.",
			"confidence": 0.95
		}],
		"grammar_score": 82,
		"confidence": 0.9
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})

	a := NewGrammarAnalyzer(mock)
	res, err := a.Analyze(context.Background(), "Yo fue al mercado ayer.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.GrammarScore != 82 {
		t.Errorf("GrammarScore = %v, want 82", res.GrammarScore)
	}
	if len(res.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(res.Errors))
	}
	if res.Errors[0].Category != "verb_conjugation" {
		t.Errorf("category = %q", res.Errors[0].Category)
	}
	if res.CorrectedText != "Yo fui al mercado ayer." {
		t.Errorf("corrected text = %q", res.CorrectedText)
	}
}

func TestGrammarAnalyzeClampsScore(t *testing.T) {
	content := `{"corrected_text": "ok", "errors": [], "grammar_score": 120, "confidence": 1}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})

	a := NewGrammarAnalyzer(mock)
	res, err := a.Analyze(context.Background(), "ok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.GrammarScore != 100 {
		t.Errorf("GrammarScore = %v, want clamped to 100", res.GrammarScore)
	}
}

func TestGrammarAnalyzeWrapsProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	a := NewGrammarAnalyzer(mock)
	_, err := a.Analyze(context.Background(), "texto")
	if err == nil {
		t.Fatal("expected error when provider fails")
	}
	var uerr *UnavailableError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *UnavailableError, got %T", err)
	}
	if uerr.Kind != KindGrammar {
		t.Errorf("Kind = %q, want grammar", uerr.Kind)
	}
}

func TestPronunciationRequiresTranscript(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewPronunciationScorer(mock)

	_, err := s.Analyze(context.Background(), PronunciationInput{ExpectedText: "hola"})
	if err == nil {
		t.Fatal("expected error without transcript")
	}
	if !errors.Is(err, ErrNoSpeechSignal) {
		t.Fatalf("expected ErrNoSpeechSignal, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Error("provider called despite missing transcript")
	}
}
