package stats

import (
	"math"
	"time"

	"github.com/alimgiray/commitpulse/internal/models"
)

// AnalyzeWindow summarizes the trailing window of the given length, in weeks,
// ending at now. A week is inside the window when its start date is on or
// after now minus the window length. Line totals are recomputed directly from
// per-contributor week records since the weekly activity map does not carry
// them. The average divides by the number of weeks with data in the window,
// zero when there are none.
func AnalyzeWindow(contributors []*models.Contributor, activity map[time.Time]*models.WeekActivity, now time.Time, weeks int) models.ActivitySummary {
	cutoff := utcDate(now).AddDate(0, 0, -7*weeks)
	summary := models.ActivitySummary{}

	for weekStart, week := range activity {
		if weekStart.Before(cutoff) {
			continue
		}
		summary.Weeks++
		summary.TotalCommits += week.Commits
		if week.Commits > 0 {
			summary.WeeksWithActivity++
		}
	}

	if summary.Weeks > 0 {
		summary.AvgCommitsPerWeek = roundToTenth(float64(summary.TotalCommits) / float64(summary.Weeks))
	}

	addLineTotals(&summary, contributors, cutoff)
	return summary
}

// AnalyzeAllTime summarizes the full timeline. Unlike the windowed variant,
// the average divides by the number of weeks with nonzero commits, floored at
// one. The two denominators differ on purpose; unifying them would change
// observable output.
func AnalyzeAllTime(contributors []*models.Contributor, activity map[time.Time]*models.WeekActivity) models.ActivitySummary {
	summary := models.ActivitySummary{}

	for _, week := range activity {
		summary.Weeks++
		summary.TotalCommits += week.Commits
		if week.Commits > 0 {
			summary.WeeksWithActivity++
		}
	}

	activeWeeks := summary.WeeksWithActivity
	if activeWeeks < 1 {
		activeWeeks = 1
	}
	summary.AvgCommitsPerWeek = roundToTenth(float64(summary.TotalCommits) / float64(activeWeeks))

	for _, contributor := range contributors {
		summary.TotalAdditions += contributor.TotalAdditions()
		summary.TotalDeletions += contributor.TotalDeletions()
	}
	summary.NetLines = summary.TotalAdditions - summary.TotalDeletions
	return summary
}

func addLineTotals(summary *models.ActivitySummary, contributors []*models.Contributor, cutoff time.Time) {
	for _, contributor := range contributors {
		for _, week := range contributor.Weeks {
			if week.WeekStart.Before(cutoff) {
				continue
			}
			summary.TotalAdditions += week.Additions
			summary.TotalDeletions += week.Deletions
		}
	}
	summary.NetLines = summary.TotalAdditions - summary.TotalDeletions
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
