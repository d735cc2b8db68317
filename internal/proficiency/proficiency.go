// Package proficiency maps skill scores to CEFR levels and keeps the
// append-only proficiency history.
package proficiency

import (
	"context"

	"github.com/lmdrew96/chaoslimba/internal/store"
)

// CEFR levels in band order.
const (
	LevelA1 = "A1"
	LevelA2 = "A2"
	LevelB1 = "B1"
	LevelB2 = "B2"
	LevelC1 = "C1"
	LevelC2 = "C2"
)

// neutralSkillScore substitutes for skills the learner has no score in,
// so a partial skill set never null-propagates into the average.
const neutralSkillScore = 50.0

// Skills holds per-skill scores on [0,100]. Nil means unmeasured.
type Skills struct {
	Listening *float64
	Reading   *float64
	Speaking  *float64
	Writing   *float64
}

// SelfAssessment is the learner's own placement, blended into the level
// computation at 20%.
type SelfAssessment string

const (
	SelfCompleteBeginner SelfAssessment = "complete_beginner"
	SelfSomeBasics       SelfAssessment = "some_basics"
	SelfIntermediate     SelfAssessment = "intermediate"
	SelfAdvanced         SelfAssessment = "advanced"
)

// selfModifiers maps a self-assessment to its score contribution.
var selfModifiers = map[SelfAssessment]float64{
	SelfCompleteBeginner: 0,
	SelfSomeBasics:       10,
	SelfIntermediate:     20,
	SelfAdvanced:         30,
}

// bands are contiguous over [0,100] and monotonic in level order. The
// upper bound is exclusive except C2, which closes the range.
var bands = []struct {
	upTo  float64
	level string
}{
	{20, LevelA1},
	{35, LevelA2},
	{50, LevelB1},
	{65, LevelB2},
	{80, LevelC1},
	{101, LevelC2},
}

// Score averages the skill scores, defaulting unmeasured skills to the
// neutral midpoint.
func Score(skills Skills) float64 {
	total := skillOr(skills.Listening) + skillOr(skills.Reading) +
		skillOr(skills.Speaking) + skillOr(skills.Writing)
	return total / 4
}

// ComputeLevel maps skills (and an optional self-assessment) to a CEFR
// level. With a self-assessment the weighted score is 80% measured, 20%
// self-placed. Unknown self-assessment values are ignored.
func ComputeLevel(skills Skills, self SelfAssessment) (string, float64) {
	weighted := Score(skills)
	if modifier, ok := selfModifiers[self]; ok {
		weighted = weighted*0.8 + modifier*0.2
	}
	return LevelFor(weighted), weighted
}

// LevelFor maps a weighted score to its CEFR band. Monotonic: a higher
// score never maps to a lower level.
func LevelFor(weighted float64) string {
	for _, b := range bands {
		if weighted < b.upTo {
			return b.level
		}
	}
	return LevelC2
}

func skillOr(v *float64) float64 {
	if v == nil {
		return neutralSkillScore
	}
	return *v
}

// Scorer persists proficiency measurements and reads trend.
type Scorer struct {
	repo store.ProficiencyRepo
}

// NewScorer creates a Scorer over the proficiency history.
func NewScorer(repo store.ProficiencyRepo) *Scorer {
	return &Scorer{repo: repo}
}

// Record appends a new measurement. Prior records are never touched.
func (s *Scorer) Record(ctx context.Context, userID string, skills Skills, self SelfAssessment) (*store.ProficiencyRecordData, error) {
	level, weighted := ComputeLevel(skills, self)
	data := store.ProficiencyRecordData{
		UserID:       userID,
		OverallScore: weighted,
		CEFRLevel:    level,
		Listening:    skills.Listening,
		Reading:      skills.Reading,
		Speaking:     skills.Speaking,
		Writing:      skills.Writing,
	}
	if err := s.repo.Append(ctx, data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Trend compares the two most recent records. It returns the score delta
// and whether a comparison was possible.
func (s *Scorer) Trend(ctx context.Context, userID string) (delta float64, ok bool, err error) {
	records, err := s.repo.Recent(ctx, userID, 2)
	if err != nil {
		return 0, false, err
	}
	if len(records) < 2 {
		return 0, false, nil
	}
	// Recent returns newest first.
	return records[0].OverallScore - records[1].OverallScore, true, nil
}
