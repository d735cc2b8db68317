package analyzer

import (
	"errors"
	"testing"
)

type sample struct {
	Score float64 `json:"score"`
	Note  string  `json:"note"`
}

func TestParseGeneratedCleanJSON(t *testing.T) {
	got, err := ParseGenerated[sample]([]byte(`{"score": 80, "note": "ok"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Score != 80 || got.Note != "ok" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestParseGeneratedStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"score\": 65, \"note\": \"fenced\"}\n```"
	got, err := ParseGenerated[sample]([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Score != 65 {
		t.Fatalf("got score %v, want 65", got.Score)
	}
}

func TestParseGeneratedStripsThinkingTags(t *testing.T) {
	raw := "<thinking>the learner mixed up tenses\nso the score is low</thinking>{\"score\": 40, \"note\": \"tenses\"}"
	got, err := ParseGenerated[sample]([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Score != 40 {
		t.Fatalf("got score %v, want 40", got.Score)
	}
}

func TestParseGeneratedSkipsLeadingProse(t *testing.T) {
	raw := "Here is the analysis:\n{\"score\": 55, \"note\": \"prose\"}"
	got, err := ParseGenerated[sample]([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Note != "prose" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestParseGeneratedReportsParseError(t *testing.T) {
	_, err := ParseGenerated[sample]([]byte("not json at all"))
	if err == nil {
		t.Fatal("expected error for unparseable input")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Raw != "not json at all" {
		t.Fatalf("ParseError.Raw = %q", perr.Raw)
	}
}
