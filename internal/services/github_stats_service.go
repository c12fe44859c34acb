package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubStatsService fetches per-contributor weekly statistics from the
// GitHub API. It is the data-acquisition collaborator for the analytics core.
type GitHubStatsService struct {
	client *github.Client
}

// NewGitHubStatsService creates a GitHub client, authenticated when a token
// is provided. Unauthenticated clients work for public repositories but hit
// lower rate limits.
func NewGitHubStatsService(token string) *GitHubStatsService {
	if token == "" {
		return &GitHubStatsService{client: github.NewClient(nil)}
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return &GitHubStatsService{client: github.NewClient(tc)}
}

// FetchContributorStats retrieves the weekly contributor statistics for a
// repository. GitHub computes these in the background and answers 202 until
// they are ready, so poll a few times before giving up.
func (s *GitHubStatsService) FetchContributorStats(ctx context.Context, owner, name string) ([]*github.ContributorStats, error) {
	const maxAttempts = 5

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		statistics, _, err := s.client.Repositories.ListContributorsStats(ctx, owner, name)
		if err == nil {
			return statistics, nil
		}

		if _, accepted := err.(*github.AcceptedError); !accepted {
			return nil, fmt.Errorf("failed to fetch contributor stats for %s/%s: %w", owner, name, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * 2 * time.Second):
		}
	}

	return nil, fmt.Errorf("contributor stats for %s/%s not ready after %d attempts", owner, name, maxAttempts)
}

// FetchRepository retrieves repository metadata
func (s *GitHubStatsService) FetchRepository(ctx context.Context, owner, name string) (*github.Repository, error) {
	repo, _, err := s.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repository %s/%s: %w", owner, name, err)
	}
	return repo, nil
}
