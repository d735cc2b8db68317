package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func boolPtr(b bool) *bool { return &b }

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestExposureAppendAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.ExposureRepo()
	ctx := context.Background()

	has, err := repo.HasHistory(ctx, "u1")
	if err != nil {
		t.Fatalf("HasHistory: %v", err)
	}
	if has {
		t.Fatal("expected no history for fresh user")
	}

	events := []ExposureEventData{
		{UserID: "u1", FeatureKey: "noun-gender", ExposureType: "encountered", SessionID: "s1"},
		{UserID: "u1", FeatureKey: "noun-gender", ExposureType: "produced", SessionID: "s1", IsCorrect: boolPtr(true)},
		{UserID: "u1", FeatureKey: "noun-gender", ExposureType: "corrected", SessionID: "s1", IsCorrect: boolPtr(false)},
		{UserID: "u1", FeatureKey: "verb-aspect", ExposureType: "encountered", SessionID: "s1", ContentID: "42"},
	}
	for _, e := range events {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	has, err = repo.HasHistory(ctx, "u1")
	if err != nil {
		t.Fatalf("HasHistory: %v", err)
	}
	if !has {
		t.Fatal("expected history after appends")
	}

	stats, err := repo.FeatureStats(ctx, "u1")
	if err != nil {
		t.Fatalf("FeatureStats: %v", err)
	}
	ng := stats["noun-gender"]
	if ng == nil {
		t.Fatal("missing noun-gender stats")
	}
	if ng.Encountered != 1 || ng.Produced != 1 || ng.Corrected != 1 {
		t.Errorf("noun-gender counts = %d/%d/%d, want 1/1/1",
			ng.Encountered, ng.Produced, ng.Corrected)
	}
	if ng.LastPracticed.IsZero() {
		t.Error("expected non-zero LastPracticed after produced/corrected")
	}
	va := stats["verb-aspect"]
	if va == nil || va.Encountered != 1 || va.Produced != 0 {
		t.Errorf("unexpected verb-aspect stats: %+v", va)
	}
}

func TestExposureOutcomesOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.ExposureRepo()
	ctx := context.Background()

	seq := []bool{true, true, false, true}
	for _, correct := range seq {
		typ := "produced"
		if !correct {
			typ = "corrected"
		}
		c := correct
		err := repo.Append(ctx, ExposureEventData{
			UserID: "u1", FeatureKey: "clitic-doubling",
			ExposureType: typ, SessionID: "s1", IsCorrect: &c,
		})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := repo.Outcomes(ctx, "u1", "clitic-doubling")
	if err != nil {
		t.Fatalf("Outcomes: %v", err)
	}
	if len(got) != len(seq) {
		t.Fatalf("got %d outcomes, want %d", len(got), len(seq))
	}
	for i := range seq {
		if got[i] != seq[i] {
			t.Errorf("outcome[%d] = %v, want %v", i, got[i], seq[i])
		}
	}
}

func TestErrorLogAppendResolveCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.ErrorLogRepo()
	ctx := context.Background()

	_, err := repo.Append(ctx, ErrorPatternData{
		UserID:            "u1",
		PatternType:       "grammar",
		Category:          "verb-agreement",
		LearnerProduction: "ei merge",
		CorrectForm:       "ei merg",
		Confidence:        0.9,
		Severity:          "high",
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	n, err := repo.CategoryCount(ctx, "u1", "verb-agreement")
	if err != nil {
		t.Fatalf("CategoryCount: %v", err)
	}
	if n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}

	resolved, err := repo.ResolveCategory(ctx, "u1", "verb-agreement", time.Now())
	if err != nil {
		t.Fatalf("ResolveCategory: %v", err)
	}
	if resolved != 1 {
		t.Fatalf("resolved = %d, want 1", resolved)
	}

	n, err = repo.CategoryCount(ctx, "u1", "verb-agreement")
	if err != nil {
		t.Fatalf("CategoryCount: %v", err)
	}
	if n != 0 {
		t.Fatalf("count after resolve = %d, want 0", n)
	}
}

func TestFeatureSeedIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.FeatureRepo()
	ctx := context.Background()

	features := []*Feature{
		{FeatureKey: "noun-gender", FeatureName: "Noun gender", Category: "morphology", CEFRLevel: "A1"},
		{FeatureKey: "subjunctive", FeatureName: "Subjunctive mood", Category: "syntax", CEFRLevel: "B1"},
	}

	for range 2 {
		if err := repo.Seed(ctx, features); err != nil {
			t.Fatalf("Seed: %v", err)
		}
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("catalog has %d features after double seed, want 2", len(all))
	}

	upTo, err := repo.UpToLevel(ctx, "A2")
	if err != nil {
		t.Fatalf("UpToLevel: %v", err)
	}
	if len(upTo) != 1 || upTo[0].FeatureKey != "noun-gender" {
		t.Errorf("UpToLevel(A2) = %+v, want only noun-gender", upTo)
	}
}

func TestProficiencyAppendOnlyTrend(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProficiencyRepo()
	ctx := context.Background()

	listening := 60.0
	for i, score := range []float64{42, 55} {
		data := ProficiencyRecordData{
			UserID:       "u1",
			OverallScore: score,
			CEFRLevel:    "A2",
		}
		if i == 1 {
			data.Listening = &listening
			data.CEFRLevel = "B1"
		}
		if err := repo.Append(ctx, data); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	records, err := repo.Recent(ctx, "u1", 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Newest first.
	if records[0].OverallScore != 55 || records[1].OverallScore != 42 {
		t.Errorf("records out of order: %v then %v",
			records[0].OverallScore, records[1].OverallScore)
	}
	if records[0].Listening == nil || *records[0].Listening != 60 {
		t.Error("expected listening sub-score on newest record")
	}
	if records[1].Listening != nil {
		t.Error("expected nil listening on older record")
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:    "mock",
		Model:       "mock",
		Purpose:     "grammar",
		InputTokens: 10,
		Success:     true,
	})
	if err != nil {
		t.Fatalf("AppendLLMRequest: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 5})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Purpose != "grammar" {
		t.Errorf("purpose = %q, want grammar", events[0].Purpose)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("GetLLMEvent: %v", err)
	}
	if got.Provider != "mock" {
		t.Errorf("provider = %q, want mock", got.Provider)
	}
}
