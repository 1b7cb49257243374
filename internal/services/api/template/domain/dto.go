// Package domain holds template analytics view models and ports
package domain

import "retroboard/internal/core/viewmodel"

// BreakdownRow joins combined usage with per-flow pick counts for one template
type BreakdownRow struct {
	Name      string `json:"name"`
	Total     int64  `json:"total"`
	Recommend int64  `json:"recommend"`
	List      int64  `json:"list"`
}

// Breakdown is the usage table, one row per template in combined-usage order
type Breakdown struct {
	Rows []BreakdownRow `json:"rows"`
}

// ChoiceRatio is the recommend-versus-list split across all template picks
type ChoiceRatio struct {
	viewmodel.RatioPair
}
