// Package domain holds retention view models and ports
package domain

// Criteria filters which members count as meaningfully retained
// Absent fields default to 1; explicit values are forwarded as-is, the
// upstream is authoritative about rejecting out-of-range criteria
type Criteria struct {
	MinCount  *int `json:"min_count"`
	MinLength *int `json:"min_length"`
}

// Resolve applies the default of 1 for absent criteria
func (c Criteria) Resolve() (minCount, minLength int) {
	minCount, minLength = 1, 1
	if c.MinCount != nil {
		minCount = *c.MinCount
	}
	if c.MinLength != nil {
		minLength = *c.MinLength
	}
	return minCount, minLength
}

// RatioResult is the meaningful retention outcome
// All three fields are null when no range is selected or the fetch failed;
// Ratio is the string "0.0" when the cohort is empty
type RatioResult struct {
	Ratio        *string `json:"ratio"`
	MatchedCount *int64  `json:"matched_count"`
	TotalCount   *int64  `json:"total_count"`
}
