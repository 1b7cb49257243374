package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	// Apply runs the meaningful-ratio computation against the current range
	// Failures are contained: the result carries nulls, never an error
	Apply(ctx context.Context, c Criteria) RatioResult

	// Last returns the most recently committed result
	Last() RatioResult
}
