// Package domain holds space composition view models and ports
package domain

import "retroboard/internal/core/viewmodel"

// MemberRow is one member's space composition
// Individual is derived as Total - Team and clamped at zero
type MemberRow struct {
	MemberID   int64 `json:"member_id"`
	Total      int64 `json:"total"`
	Team       int64 `json:"team"`
	Individual int64 `json:"individual"`
}

// CompositionRatio is the team-versus-individual split across all members
type CompositionRatio struct {
	viewmodel.RatioPair
}

// MemberTable is the per-member composition listing
type MemberTable struct {
	Rows []MemberRow `json:"rows"`
}
