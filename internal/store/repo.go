package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ExposureEventData is one append to the exposure log.
type ExposureEventData struct {
	UserID     string
	FeatureKey string
	// ExposureType is "encountered", "produced", or "corrected".
	ExposureType string
	SessionID    string
	ContentID    string
	// IsCorrect is nil for encountered, true for produced, false for corrected.
	IsCorrect *bool
}

// ExposureEvent is a stored exposure event.
type ExposureEvent struct {
	Sequence     int64
	Timestamp    time.Time
	UserID       string
	FeatureKey   string
	ExposureType string
	SessionID    string
	ContentID    string
	IsCorrect    *bool
}

// FeatureStats aggregates a user's exposure history for one feature.
type FeatureStats struct {
	FeatureKey    string
	Encountered   int
	Produced      int
	Corrected     int
	LastPracticed time.Time // zero if never produced or corrected
}

// ExposureRepo provides append and aggregate access to the exposure log.
type ExposureRepo interface {
	// Append records one exposure event.
	Append(ctx context.Context, data ExposureEventData) error

	// HasHistory reports whether the user has any exposure events at all.
	HasHistory(ctx context.Context, userID string) (bool, error)

	// FeatureStats returns per-feature exposure counts for the user.
	FeatureStats(ctx context.Context, userID string) (map[string]*FeatureStats, error)

	// Outcomes returns the produced/corrected history for one feature in
	// sequence order, as a slice of correctness flags. Used to replay the
	// tier state machine from the log.
	Outcomes(ctx context.Context, userID, featureKey string) ([]bool, error)
}

// ErrorPatternData is one normalized learner error to persist.
type ErrorPatternData struct {
	UserID            string
	PatternType       string
	Category          string
	LearnerProduction string
	CorrectForm       string
	Confidence        float64
	Severity          string
	IsFossilizing     bool
}

// ErrorLogRepo provides access to the append-mostly error log.
type ErrorLogRepo interface {
	// Append persists one error pattern and returns its id.
	Append(ctx context.Context, data ErrorPatternData) (int, error)

	// ResolveCategory sets the resolved_at marker on the user's open
	// patterns in a category and reports how many were resolved. The only
	// permitted mutation of error-log rows.
	ResolveCategory(ctx context.Context, userID, category string, at time.Time) (int, error)

	// CategoryCount returns how many unresolved patterns the user has in
	// the given category. Drives fossilization detection.
	CategoryCount(ctx context.Context, userID, category string) (int, error)
}

// ContentItem is a stored content catalog entry.
type ContentItem struct {
	ID          int
	Title       string
	Body        string
	CEFRLevel   string
	FeatureKeys []string
	Topics      []string
	Modality    string
}

// ContentRepo provides read access to the content catalog.
type ContentRepo interface {
	// ByLevel returns items tagged at the level, excluding excludeID (0 = none).
	ByLevel(ctx context.Context, level string, excludeID int) ([]*ContentItem, error)

	// All returns every item, excluding excludeID (0 = none).
	All(ctx context.Context, excludeID int) ([]*ContentItem, error)

	// Seed inserts items if the catalog is empty. Idempotent.
	Seed(ctx context.Context, items []*ContentItem) error
}

// Feature is a stored grammar feature catalog entry.
type Feature struct {
	FeatureKey  string
	FeatureName string
	Category    string
	CEFRLevel   string
}

// FeatureRepo provides read access to the grammar feature catalog.
type FeatureRepo interface {
	// Seed upserts catalog entries by feature_key. Idempotent.
	Seed(ctx context.Context, features []*Feature) error

	// ByKey returns one feature, or a not-found error.
	ByKey(ctx context.Context, key string) (*Feature, error)

	// UpToLevel returns features introduced at or below the given CEFR level.
	UpToLevel(ctx context.Context, level string) ([]*Feature, error)

	// All returns the whole catalog.
	All(ctx context.Context) ([]*Feature, error)
}

// ProficiencyRecordData is one proficiency measurement to append.
type ProficiencyRecordData struct {
	UserID       string
	OverallScore float64
	CEFRLevel    string
	Listening    *float64
	Reading      *float64
	Speaking     *float64
	Writing      *float64
}

// ProficiencyRecord is a stored proficiency measurement.
type ProficiencyRecord struct {
	Sequence     int64
	RecordedAt   time.Time
	UserID       string
	OverallScore float64
	CEFRLevel    string
	Listening    *float64
	Reading      *float64
	Speaking     *float64
	Writing      *float64
}

// ProficiencyRepo manages the append-only proficiency history.
type ProficiencyRepo interface {
	// Append stores a new record. Never overwrites a prior one.
	Append(ctx context.Context, data ProficiencyRecordData) error

	// Recent returns the user's records newest first, up to limit.
	Recent(ctx context.Context, userID string, limit int) ([]*ProficiencyRecord, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first, honoring opts.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns one event by id.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}
