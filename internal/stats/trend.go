package stats

import (
	"time"

	"github.com/alimgiray/commitpulse/internal/models"
)

// Percentage change beyond which the trend stops being "stable". Boundary
// values exactly at the threshold classify as stable.
const trendThresholdPercent = 20.0

// ClassifyTrend compares commit volume in the most recent four weeks against
// the four weeks before them. The recent window is [now-4w, now) and the
// previous window is [now-8w, now-4w); the half-open bounds keep a week from
// being counted twice.
func ClassifyTrend(activity map[time.Time]*models.WeekActivity, now time.Time) models.Trend {
	today := utcDate(now)
	recentStart := today.AddDate(0, 0, -28)
	previousStart := today.AddDate(0, 0, -56)

	var recent, previous int
	for weekStart, week := range activity {
		switch {
		case !weekStart.Before(recentStart) && weekStart.Before(today):
			recent += week.Commits
		case !weekStart.Before(previousStart) && weekStart.Before(recentStart):
			previous += week.Commits
		}
	}

	if previous == 0 {
		if recent > 0 {
			return models.TrendIncreasing
		}
		return models.TrendStable
	}

	changePercent := float64(recent-previous) / float64(previous) * 100
	switch {
	case changePercent > trendThresholdPercent:
		return models.TrendIncreasing
	case changePercent < -trendThresholdPercent:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}
