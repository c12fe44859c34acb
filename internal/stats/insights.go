package stats

import (
	"errors"
	"time"

	"github.com/alimgiray/commitpulse/internal/models"
)

// ErrNoContributors is returned when there is no contributor data to analyze.
// Malformed-but-present records are tolerated via defaulting; only a genuinely
// empty dataset is an error.
var ErrNoContributors = errors.New("no contributor data to analyze")

const (
	// DefaultTopN is the ranking size used when the caller passes no limit.
	DefaultTopN = 5

	recentWindowWeeks     = 4
	comparisonWindowWeeks = 8
)

// BuildInsights derives the full insights view from a normalized contributor
// collection. The reference instant now drives every window, trend, and
// new-contributor computation; topN caps the ranking (DefaultTopN when <= 0).
// The input is never mutated.
func BuildInsights(contributors []*models.Contributor, now time.Time, topN int) (*models.Insights, error) {
	if len(contributors) == 0 {
		return nil, ErrNoContributors
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	agg := Aggregate(contributors)

	insights := &models.Insights{
		TotalContributors:        agg.TotalContributors,
		TotalCommits:             agg.TotalCommits,
		AvgCommitsPerContributor: agg.AvgCommitsPerContributor,
		CommitDistribution:       agg.CommitDistribution,
		WeeklyActivity:           make(map[string]models.WeekActivity, len(agg.WeeklyActivity)),
		MostActiveWeek:           MostActiveWeek(agg.WeeklyActivity),
		LeastActiveWeek:          LeastActiveWeek(agg.WeeklyActivity),
		TopContributors:          RankContributors(contributors, topN),
		NewContributors:          NewContributors(contributors, now),
		RecentActivity:           AnalyzeWindow(contributors, agg.WeeklyActivity, now, recentWindowWeeks),
		LastEightWeeks:           AnalyzeWindow(contributors, agg.WeeklyActivity, now, comparisonWindowWeeks),
		AllTime:                  AnalyzeAllTime(contributors, agg.WeeklyActivity),
		ActivityTrend:            ClassifyTrend(agg.WeeklyActivity, now),
		GeneratedAt:              now,
	}

	if agg.MostActive != nil {
		login := agg.MostActive.Login
		insights.MostActiveContributor = &login
	}

	for weekStart, week := range agg.WeeklyActivity {
		insights.WeeklyActivity[weekStart.Format(dateLayout)] = *week
	}

	for _, contributor := range contributors {
		insights.TotalAdditions += contributor.TotalAdditions()
		insights.TotalDeletions += contributor.TotalDeletions()
	}
	insights.NetLines = insights.TotalAdditions - insights.TotalDeletions

	insights.AvgAdditionsPerContributor = roundToInt(float64(insights.TotalAdditions) / float64(agg.TotalContributors))
	insights.AvgDeletionsPerContributor = roundToInt(float64(insights.TotalDeletions) / float64(agg.TotalContributors))

	return insights, nil
}
