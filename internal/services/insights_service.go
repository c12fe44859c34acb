package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alimgiray/commitpulse/internal/models"
	"github.com/alimgiray/commitpulse/internal/repositories"
	"github.com/alimgiray/commitpulse/internal/stats"
	"github.com/google/go-github/v57/github"
)

// ErrNoSnapshot is returned when a repository has no fetched statistics yet.
var ErrNoSnapshot = errors.New("no statistics snapshot for repository")

// InsightsService ties the fetch, normalize, and analytics steps together and
// persists their results.
type InsightsService struct {
	repoRepo     *repositories.TrackedRepositoryRepository
	snapshotRepo *repositories.SnapshotRepository
	githubStats  *GitHubStatsService
	topN         int
}

func NewInsightsService(
	repoRepo *repositories.TrackedRepositoryRepository,
	snapshotRepo *repositories.SnapshotRepository,
	githubStats *GitHubStatsService,
	topN int,
) *InsightsService {
	return &InsightsService{
		repoRepo:     repoRepo,
		snapshotRepo: snapshotRepo,
		githubStats:  githubStats,
		topN:         topN,
	}
}

// FetchAndStore fetches the raw contributor statistics for a repository and
// stores them as a snapshot
func (s *InsightsService) FetchAndStore(ctx context.Context, repositoryID string) (*models.StatsSnapshot, error) {
	repo, err := s.repoRepo.GetByID(repositoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load repository %s: %w", repositoryID, err)
	}

	statistics, err := s.githubStats.FetchContributorStats(ctx, repo.Owner, repo.Name)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(statistics)
	if err != nil {
		return nil, fmt.Errorf("failed to encode stats payload: %w", err)
	}

	snapshot := models.NewStatsSnapshot(repo.ID, string(payload), time.Now())
	if err := s.snapshotRepo.CreateStatsSnapshot(snapshot); err != nil {
		return nil, fmt.Errorf("failed to store stats snapshot: %w", err)
	}

	repo.LastFetchedAt = &snapshot.FetchedAt
	if err := s.repoRepo.Update(repo); err != nil {
		return nil, fmt.Errorf("failed to update repository %s: %w", repo.FullName(), err)
	}

	return snapshot, nil
}

// ComputeLatest normalizes the most recent raw snapshot, derives insights
// relative to the given reference instant, and persists the result.
func (s *InsightsService) ComputeLatest(repositoryID string, now time.Time) (*models.Insights, error) {
	snapshot, err := s.snapshotRepo.GetLatestStatsSnapshot(repositoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to load stats snapshot: %w", err)
	}

	var raw []*github.ContributorStats
	if err := json.Unmarshal([]byte(snapshot.Payload), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode stats payload: %w", err)
	}

	contributors := stats.Normalize(raw)
	insights, err := stats.BuildInsights(contributors, now, s.topN)
	if err != nil {
		return nil, err
	}

	document, err := json.Marshal(insights)
	if err != nil {
		return nil, fmt.Errorf("failed to encode insights: %w", err)
	}

	record := models.NewInsightsSnapshot(repositoryID, snapshot.ID, string(document))
	record.TotalContributors = insights.TotalContributors
	record.TotalCommits = insights.TotalCommits
	record.ActivityTrend = string(insights.ActivityTrend)
	record.GeneratedAt = insights.GeneratedAt
	if err := s.snapshotRepo.CreateInsightsSnapshot(record); err != nil {
		return nil, fmt.Errorf("failed to store insights snapshot: %w", err)
	}

	return insights, nil
}

// GetLatestInsights returns the most recently computed insights document for
// a repository
func (s *InsightsService) GetLatestInsights(repositoryID string) (*models.Insights, error) {
	record, err := s.snapshotRepo.GetLatestInsightsSnapshot(repositoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to load insights snapshot: %w", err)
	}

	insights := &models.Insights{}
	if err := json.Unmarshal([]byte(record.Document), insights); err != nil {
		return nil, fmt.Errorf("failed to decode insights document: %w", err)
	}

	return insights, nil
}

// GetHistory returns recent insights snapshots, newest first
func (s *InsightsService) GetHistory(repositoryID string, limit int) ([]*models.InsightsSnapshot, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.snapshotRepo.ListInsightsSnapshots(repositoryID, limit)
}
