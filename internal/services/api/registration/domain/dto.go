// Package domain holds registration view models and ports
package domain

// SignupPoint is one day of the signup series
type SignupPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// SeriesQuery scopes a direct series fetch
type SeriesQuery struct {
	Start string `json:"start" validate:"omitempty,datetime=2006-01-02"`
	End   string `json:"end"   validate:"omitempty,datetime=2006-01-02"`
}
