package proficiency

import (
	"context"
	"testing"

	"github.com/lmdrew96/chaoslimba/internal/store"
)

func fptr(v float64) *float64 { return &v }

func TestScoreDefaultsMissingSkillsToMidpoint(t *testing.T) {
	// Only speaking measured; the other three default to 50.
	got := Score(Skills{Speaking: fptr(90)})
	want := (90.0 + 50 + 50 + 50) / 4
	if got != want {
		t.Errorf("Score = %v, want %v", got, want)
	}

	if got := Score(Skills{}); got != 50 {
		t.Errorf("Score of empty skills = %v, want 50", got)
	}
}

func TestComputeLevelSelfAssessmentBlend(t *testing.T) {
	skills := Skills{
		Listening: fptr(60), Reading: fptr(60), Speaking: fptr(60), Writing: fptr(60),
	}

	_, withoutSelf := ComputeLevel(skills, "")
	if withoutSelf != 60 {
		t.Errorf("weighted without self = %v, want 60", withoutSelf)
	}

	// 60*0.8 + 30*0.2 = 54
	_, withSelf := ComputeLevel(skills, SelfAdvanced)
	if withSelf != 54 {
		t.Errorf("weighted with advanced self = %v, want 54", withSelf)
	}

	// 60*0.8 + 0*0.2 = 48
	_, beginner := ComputeLevel(skills, SelfCompleteBeginner)
	if beginner != 48 {
		t.Errorf("weighted with beginner self = %v, want 48", beginner)
	}
}

func TestSelfModifiers(t *testing.T) {
	cases := []struct {
		self SelfAssessment
		want float64
	}{
		{SelfCompleteBeginner, 0},
		{SelfSomeBasics, 10},
		{SelfIntermediate, 20},
		{SelfAdvanced, 30},
	}
	for _, tc := range cases {
		if got := selfModifiers[tc.self]; got != tc.want {
			t.Errorf("modifier(%s) = %v, want %v", tc.self, got, tc.want)
		}
	}
}

func TestLevelBandsCoverRange(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, LevelA1},
		{19.9, LevelA1},
		{20, LevelA2},
		{34.9, LevelA2},
		{35, LevelB1},
		{49.9, LevelB1},
		{50, LevelB2},
		{64.9, LevelB2},
		{65, LevelC1},
		{79.9, LevelC1},
		{80, LevelC2},
		{100, LevelC2},
	}
	for _, tc := range cases {
		if got := LevelFor(tc.score); got != tc.want {
			t.Errorf("LevelFor(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestLevelMonotonicity(t *testing.T) {
	rank := map[string]int{
		LevelA1: 1, LevelA2: 2, LevelB1: 3, LevelB2: 4, LevelC1: 5, LevelC2: 6,
	}

	prev := LevelFor(0)
	for score := 0.0; score <= 100; score += 0.5 {
		cur := LevelFor(score)
		if rank[cur] < rank[prev] {
			t.Fatalf("level dropped from %s to %s at score %v", prev, cur, score)
		}
		prev = cur
	}
}

type fakeProficiencyRepo struct {
	records []*store.ProficiencyRecord
}

func (f *fakeProficiencyRepo) Append(ctx context.Context, data store.ProficiencyRecordData) error {
	f.records = append([]*store.ProficiencyRecord{{
		UserID:       data.UserID,
		OverallScore: data.OverallScore,
		CEFRLevel:    data.CEFRLevel,
	}}, f.records...)
	return nil
}

func (f *fakeProficiencyRepo) Recent(ctx context.Context, userID string, limit int) ([]*store.ProficiencyRecord, error) {
	if len(f.records) > limit {
		return f.records[:limit], nil
	}
	return f.records, nil
}

func TestRecordAndTrend(t *testing.T) {
	repo := &fakeProficiencyRepo{}
	s := NewScorer(repo)

	skills1 := Skills{Listening: fptr(40), Reading: fptr(40), Speaking: fptr(40), Writing: fptr(40)}
	if _, err := s.Record(context.Background(), "u1", skills1, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, ok, err := s.Trend(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("trend reported with a single record")
	}

	skills2 := Skills{Listening: fptr(55), Reading: fptr(55), Speaking: fptr(55), Writing: fptr(55)}
	if _, err := s.Record(context.Background(), "u1", skills2, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	delta, ok, err := s.Trend(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("trend unavailable with two records")
	}
	if delta != 15 {
		t.Errorf("delta = %v, want 15", delta)
	}
}
