package stats

import (
	"testing"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawWeek(start time.Time, commits, additions, deletions int) *github.WeeklyStats {
	return &github.WeeklyStats{
		Week:      &github.Timestamp{Time: start},
		Commits:   github.Int(commits),
		Additions: github.Int(additions),
		Deletions: github.Int(deletions),
	}
}

func TestNormalizeFullEntry(t *testing.T) {
	raw := []*github.ContributorStats{
		{
			Author: &github.Contributor{
				Login:     github.String("alice"),
				ID:        github.Int64(42),
				AvatarURL: github.String("https://avatars.example.com/alice"),
				HTMLURL:   github.String("https://github.com/alice"),
				Type:      github.String("User"),
			},
			Total: github.Int(8),
			Weeks: []*github.WeeklyStats{
				rawWeek(time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), 5, 40, 10),
				rawWeek(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), 3, 100, 20),
			},
		},
	}

	contributors := Normalize(raw)
	require.Len(t, contributors, 1)

	alice := contributors[0]
	assert.Equal(t, "alice", alice.Login)
	require.NotNil(t, alice.GithubID)
	assert.Equal(t, int64(42), *alice.GithubID)
	assert.Equal(t, "User", alice.Type)
	assert.Equal(t, 8, alice.TotalCommits)

	require.Len(t, alice.Weeks, 2)
	assert.Equal(t, day("2025-01-05"), alice.Weeks[0].WeekStart, "weeks should be sorted ascending")
	assert.Equal(t, 3, alice.Weeks[0].Commits)
	assert.Equal(t, 100, alice.Weeks[0].Additions)
	assert.Equal(t, 20, alice.Weeks[0].Deletions)
	assert.Equal(t, day("2025-01-12"), alice.Weeks[1].WeekStart)
}

func TestNormalizeTruncatesWeekStartToUTCDay(t *testing.T) {
	// A mid-day, non-UTC timestamp still maps onto the UTC calendar date.
	loc := time.FixedZone("UTC+3", 3*60*60)
	raw := []*github.ContributorStats{
		{
			Total: github.Int(1),
			Weeks: []*github.WeeklyStats{
				rawWeek(time.Date(2025, 1, 5, 18, 30, 0, 0, loc), 1, 0, 0),
			},
		},
	}

	contributors := Normalize(raw)
	require.Len(t, contributors, 1)
	require.Len(t, contributors[0].Weeks, 1)
	assert.Equal(t, day("2025-01-05"), contributors[0].Weeks[0].WeekStart)
}

func TestNormalizeDefaultsMissingFields(t *testing.T) {
	raw := []*github.ContributorStats{
		{
			// No author, no total, no weeks.
		},
		{
			Author: &github.Contributor{}, // author present but empty
			Weeks: []*github.WeeklyStats{
				{Week: &github.Timestamp{Time: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)}},
				nil,
				{}, // missing week timestamp is dropped
			},
		},
	}

	contributors := Normalize(raw)
	require.Len(t, contributors, 2)

	anonymous := contributors[0]
	assert.Equal(t, "Unknown", anonymous.Login)
	assert.Nil(t, anonymous.GithubID)
	assert.Nil(t, anonymous.AvatarURL)
	assert.Nil(t, anonymous.ProfileURL)
	assert.Equal(t, "User", anonymous.Type)
	assert.Equal(t, 0, anonymous.TotalCommits)
	assert.Empty(t, anonymous.Weeks)

	partial := contributors[1]
	assert.Equal(t, "Unknown", partial.Login)
	require.Len(t, partial.Weeks, 1, "week entries without a timestamp are dropped")
	assert.Equal(t, 0, partial.Weeks[0].Commits, "missing counters default to zero")
	assert.Equal(t, 0, partial.Weeks[0].Additions)
	assert.Equal(t, 0, partial.Weeks[0].Deletions)
}

func TestNormalizeKeepsZeroCommitEntries(t *testing.T) {
	raw := []*github.ContributorStats{
		{
			Author: &github.Contributor{Login: github.String("quiet")},
			Total:  github.Int(0),
		},
		nil,
	}

	contributors := Normalize(raw)
	require.Len(t, contributors, 1, "nil entries are skipped, zero-commit entries kept")
	assert.Equal(t, "quiet", contributors[0].Login)
	assert.Equal(t, 0, contributors[0].TotalCommits)
}
