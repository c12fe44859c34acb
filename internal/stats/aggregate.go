package stats

import (
	"math"
	"sort"
	"time"

	"github.com/alimgiray/commitpulse/internal/models"
)

// Aggregate computes whole-dataset totals in a single left-to-right pass over
// the normalized contributor collection. The most-active contributor is the
// first one encountered with the maximum commit count; later contributors
// with an equal count do not replace it.
func Aggregate(contributors []*models.Contributor) *models.AggregateStats {
	agg := &models.AggregateStats{
		TotalContributors:  len(contributors),
		CommitDistribution: make(map[string]int),
		WeeklyActivity:     make(map[time.Time]*models.WeekActivity),
	}

	for _, contributor := range contributors {
		agg.TotalCommits += contributor.TotalCommits

		if agg.MostActive == nil || contributor.TotalCommits > agg.MostActive.TotalCommits {
			agg.MostActive = contributor
		}

		agg.CommitDistribution[BucketLabel(contributor.TotalCommits)]++

		for _, week := range contributor.Weeks {
			activity := agg.WeeklyActivity[week.WeekStart]
			if activity == nil {
				activity = &models.WeekActivity{}
				agg.WeeklyActivity[week.WeekStart] = activity
			}
			activity.Commits += week.Commits
			if week.Commits > 0 {
				activity.Contributors++
			}
		}
	}

	if agg.TotalContributors > 0 {
		agg.AvgCommitsPerContributor = roundToInt(float64(agg.TotalCommits) / float64(agg.TotalContributors))
	}

	return agg
}

// MostActiveWeek returns the week with the highest commit total, or nil when
// there is no weekly activity. Ties resolve to the earliest week.
func MostActiveWeek(activity map[time.Time]*models.WeekActivity) *models.WeekHighlight {
	var best *models.WeekHighlight
	for _, weekStart := range sortedWeeks(activity) {
		week := activity[weekStart]
		if best == nil || week.Commits > best.Commits {
			best = &models.WeekHighlight{
				Week:         weekStart.Format(dateLayout),
				Commits:      week.Commits,
				Contributors: week.Contributors,
			}
		}
	}
	return best
}

// LeastActiveWeek returns the week with the lowest nonzero commit total.
// Weeks without commits are excluded; ties resolve to the earliest week.
func LeastActiveWeek(activity map[time.Time]*models.WeekActivity) *models.WeekHighlight {
	var worst *models.WeekHighlight
	for _, weekStart := range sortedWeeks(activity) {
		week := activity[weekStart]
		if week.Commits == 0 {
			continue
		}
		if worst == nil || week.Commits < worst.Commits {
			worst = &models.WeekHighlight{
				Week:         weekStart.Format(dateLayout),
				Commits:      week.Commits,
				Contributors: week.Contributors,
			}
		}
	}
	return worst
}

func sortedWeeks(activity map[time.Time]*models.WeekActivity) []time.Time {
	weeks := make([]time.Time, 0, len(activity))
	for weekStart := range activity {
		weeks = append(weeks, weekStart)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })
	return weeks
}

func roundToInt(v float64) int {
	return int(math.Round(v))
}
