package analysis

import "fmt"

// AggregationError represents a failure to build a marketing context.
type AggregationError struct {
	Message string
	Cause   error
}

func (e *AggregationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("context aggregation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("context aggregation error: %s", e.Message)
}

func (e *AggregationError) Unwrap() error {
	return e.Cause
}
