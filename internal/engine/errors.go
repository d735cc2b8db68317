package engine

import "fmt"

// ValidationError reports malformed caller input. Surfaced immediately;
// no work happens after one is raised.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
