package stats

import (
	"testing"

	"github.com/alimgiray/commitpulse/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeWindowFourWeeks(t *testing.T) {
	contributors := []*models.Contributor{
		contributor("alice", 3, week("2025-01-05", 3, 30, 5)),
		contributor("bob", 5, week("2025-01-12", 5, 70, 15)),
	}
	agg := Aggregate(contributors)
	now := day("2025-01-15")

	summary := AnalyzeWindow(contributors, agg.WeeklyActivity, now, 4)

	assert.Equal(t, 2, summary.Weeks)
	assert.Equal(t, 8, summary.TotalCommits)
	assert.Equal(t, 4.0, summary.AvgCommitsPerWeek)
	assert.Equal(t, 2, summary.WeeksWithActivity)
	assert.Equal(t, 100, summary.TotalAdditions)
	assert.Equal(t, 20, summary.TotalDeletions)
	assert.Equal(t, 80, summary.NetLines)
}

func TestAnalyzeWindowExcludesOlderWeeks(t *testing.T) {
	contributors := []*models.Contributor{
		contributor("alice", 10,
			week("2024-11-03", 7, 500, 100), // outside a 4-week window from 2025-01-15
			week("2025-01-05", 3, 30, 5),
		),
	}
	agg := Aggregate(contributors)
	now := day("2025-01-15")

	summary := AnalyzeWindow(contributors, agg.WeeklyActivity, now, 4)

	assert.Equal(t, 1, summary.Weeks)
	assert.Equal(t, 3, summary.TotalCommits)
	assert.Equal(t, 30, summary.TotalAdditions, "line totals are window-filtered too")
	assert.Equal(t, 5, summary.TotalDeletions)

	wider := AnalyzeWindow(contributors, agg.WeeklyActivity, now, 12)
	assert.Equal(t, 2, wider.Weeks)
	assert.Equal(t, 10, wider.TotalCommits)
	assert.Equal(t, 5.0, wider.AvgCommitsPerWeek)
}

func TestAnalyzeWindowEmpty(t *testing.T) {
	summary := AnalyzeWindow(nil, nil, day("2025-01-15"), 4)

	assert.Equal(t, 0, summary.Weeks)
	assert.Equal(t, 0.0, summary.AvgCommitsPerWeek, "no weeks considered yields an explicit zero average")
}

func TestAnalyzeWindowAverageRoundsToOneDecimal(t *testing.T) {
	contributors := []*models.Contributor{
		contributor("alice", 8,
			week("2025-01-05", 3, 0, 0),
			week("2025-01-12", 5, 0, 0),
			week("2024-12-29", 0, 0, 0),
		),
	}
	agg := Aggregate(contributors)

	summary := AnalyzeWindow(contributors, agg.WeeklyActivity, day("2025-01-15"), 4)

	// 8 commits over 3 weeks considered (one idle): 2.666... -> 2.7
	assert.Equal(t, 3, summary.Weeks)
	assert.Equal(t, 2, summary.WeeksWithActivity)
	assert.Equal(t, 2.7, summary.AvgCommitsPerWeek)
}

// The all-time average intentionally divides by weeks with activity rather
// than weeks considered, floored at one.
func TestAnalyzeAllTimeDenominator(t *testing.T) {
	contributors := []*models.Contributor{
		contributor("alice", 8,
			week("2025-01-05", 3, 100, 20),
			week("2025-01-12", 5, 40, 10),
			week("2024-12-29", 0, 0, 0),
			week("2024-12-22", 0, 0, 0),
		),
	}
	agg := Aggregate(contributors)

	summary := AnalyzeAllTime(contributors, agg.WeeklyActivity)

	assert.Equal(t, 4, summary.Weeks)
	assert.Equal(t, 2, summary.WeeksWithActivity)
	assert.Equal(t, 4.0, summary.AvgCommitsPerWeek, "8 commits / 2 active weeks, not 4 considered")
	assert.Equal(t, 140, summary.TotalAdditions)
	assert.Equal(t, 30, summary.TotalDeletions)
	assert.Equal(t, 110, summary.NetLines)
}

func TestAnalyzeAllTimeNoActivity(t *testing.T) {
	contributors := []*models.Contributor{
		contributor("idle", 0, week("2025-01-05", 0, 0, 0)),
	}
	agg := Aggregate(contributors)

	summary := AnalyzeAllTime(contributors, agg.WeeklyActivity)

	assert.Equal(t, 1, summary.Weeks)
	assert.Equal(t, 0, summary.WeeksWithActivity)
	assert.Equal(t, 0.0, summary.AvgCommitsPerWeek, "active-week denominator floored at one")
}
