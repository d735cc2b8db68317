package feedback

import (
	"fmt"

	"github.com/lmdrew96/chaoslimba/internal/analyzer"
)

// Severity buckets for error patterns.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// ErrorPattern is one detected learner error, ready for the error log.
// IsFossilizing is filled in by the engine from recurrence counts; the
// aggregator always leaves it false.
type ErrorPattern struct {
	Type              string
	Category          string
	LearnerProduction string
	CorrectForm       string
	Confidence        float64
	Severity          string
	IsFossilizing     bool
}

// SeverityFor maps confidence to a severity bucket. Boundaries are
// inclusive on the higher bucket: 0.8 is high, 0.5 is medium.
func SeverityFor(confidence float64) string {
	switch {
	case confidence >= 0.8:
		return SeverityHigh
	case confidence >= 0.5:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// grammarPatterns maps the grammar analyzer's structured errors 1:1.
func grammarPatterns(errs []analyzer.GrammarError) []ErrorPattern {
	if len(errs) == 0 {
		return nil
	}
	out := make([]ErrorPattern, 0, len(errs))
	for _, e := range errs {
		out = append(out, ErrorPattern{
			Type:              e.Type,
			Category:          e.Category,
			LearnerProduction: e.LearnerProduction,
			CorrectForm:       e.CorrectForm,
			Confidence:        e.Confidence,
			Severity:          SeverityFor(e.Confidence),
		})
	}
	return out
}

// intonationPatterns synthesizes one pronunciation-category pattern per
// stress warning, so intonation problems reach the same error log the
// targeter reads.
func intonationPatterns(warnings []analyzer.IntonationWarning) []ErrorPattern {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]ErrorPattern, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, ErrorPattern{
			Type:              "pronunciation",
			Category:          "word_stress",
			LearnerProduction: fmt.Sprintf("%s (heard as: %s)", w.Word, w.ActualMeaning),
			CorrectForm:       fmt.Sprintf("%s (meaning: %s)", w.Word, w.ExpectedMeaning),
			Confidence:        w.Severity,
			Severity:          SeverityFor(w.Severity),
		})
	}
	return out
}
