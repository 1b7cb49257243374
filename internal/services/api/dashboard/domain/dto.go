// Package domain holds the dashboard transport shapes
package domain

import (
	"retroboard/internal/dashkit"
	retdomain "retroboard/internal/services/api/retention/domain"
)

// RangeInput selects the inclusive day range every widget is scoped to
type RangeInput struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02"`
	End   string `json:"end"   validate:"required,datetime=2006-01-02"`
}

// RangeView echoes the selected range, empty strings when unset
type RangeView struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Snapshot is the full board state the SPA renders from
// Retention carries the last committed meaningful-ratio result when the
// retention module is mounted
type Snapshot struct {
	Range     RangeView              `json:"range"`
	Widgets   []dashkit.View         `json:"widgets"`
	Retention *retdomain.RatioResult `json:"retention,omitempty"`
}
