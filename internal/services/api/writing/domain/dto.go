// Package domain holds writing analytics view models and ports
package domain

import "retroboard/internal/core/viewmodel"

// StayTimeDistribution is the normalized stay-time histogram
// Buckets with a zero count are dropped after the total is fixed
type StayTimeDistribution struct {
	Buckets []viewmodel.Metric `json:"buckets"`
}

// CompletionStat is the retrospect completion rate as a one-decimal percentage
type CompletionStat struct {
	Rate float64 `json:"rate"`
}
