package models

import (
	"time"

	"github.com/google/uuid"
)

// StatsSnapshot stores the raw contributor-statistics payload returned by the
// GitHub API for one fetch run, as JSON.
type StatsSnapshot struct {
	ID           string    `json:"id"`
	RepositoryID string    `json:"repository_id"`
	Payload      string    `json:"payload"`
	FetchedAt    time.Time `json:"fetched_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewStatsSnapshot creates a new StatsSnapshot with a generated UUID.
func NewStatsSnapshot(repositoryID, payload string, fetchedAt time.Time) *StatsSnapshot {
	return &StatsSnapshot{
		ID:           uuid.New().String(),
		RepositoryID: repositoryID,
		Payload:      payload,
		FetchedAt:    fetchedAt,
		CreatedAt:    time.Now(),
	}
}

// InsightsSnapshot stores one computed Insights document, plus a few columns
// denormalized for querying.
type InsightsSnapshot struct {
	ID                string    `json:"id"`
	RepositoryID      string    `json:"repository_id"`
	StatsSnapshotID   string    `json:"stats_snapshot_id"`
	Document          string    `json:"document"` // Insights as JSON
	TotalContributors int       `json:"total_contributors"`
	TotalCommits      int       `json:"total_commits"`
	ActivityTrend     string    `json:"activity_trend"`
	GeneratedAt       time.Time `json:"generated_at"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewInsightsSnapshot creates a new InsightsSnapshot with a generated UUID.
func NewInsightsSnapshot(repositoryID, statsSnapshotID, document string) *InsightsSnapshot {
	return &InsightsSnapshot{
		ID:              uuid.New().String(),
		RepositoryID:    repositoryID,
		StatsSnapshotID: statsSnapshotID,
		Document:        document,
		CreatedAt:       time.Now(),
	}
}
