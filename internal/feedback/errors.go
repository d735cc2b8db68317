package feedback

import "fmt"

// AggregationFailedError reports that every attempted analyzer failed,
// so no score can be produced. Callers should retry later; partial
// failure never raises this.
type AggregationFailedError struct {
	Attempted int
}

func (e *AggregationFailedError) Error() string {
	return fmt.Sprintf("aggregation failed: all %d analyzers failed", e.Attempted)
}
