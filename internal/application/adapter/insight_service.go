// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// InsightRequest carries the already-computed period figures the AI narrates.
// Amounts are preformatted strings so the adapter stays free of domain math.
type InsightRequest struct {
	WorkspaceName  string
	PeriodKey      string
	SemaphoreState string
	Capa1Score     int
	PendingItems   []string
	Collections    string
	Expenses       string
	Profit         string
	Receivables    string
	RunwayMonths   float64
	BreakEvenPoint string
	SalesTarget    string
}

// InsightResult represents the AI's narrative summary.
type InsightResult struct {
	Summary         string
	Recommendations []string
}

// InsightService defines the interface for AI-generated metric narratives.
type InsightService interface {
	// GenerateSummary produces a short narrative for the period's metrics.
	GenerateSummary(ctx context.Context, request *InsightRequest) (*InsightResult, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
