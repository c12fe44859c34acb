package stats

import (
	"testing"
	"time"

	"github.com/alimgiray/commitpulse/internal/models"
	"github.com/stretchr/testify/assert"
)

// trendActivity builds a weekly activity map with one week inside the recent
// 4-week window and one inside the previous 4-week window, relative to now.
func trendActivity(now time.Time, recentCommits, previousCommits int) map[time.Time]*models.WeekActivity {
	activity := make(map[time.Time]*models.WeekActivity)
	activity[utcDate(now).AddDate(0, 0, -14)] = &models.WeekActivity{Commits: recentCommits}
	activity[utcDate(now).AddDate(0, 0, -42)] = &models.WeekActivity{Commits: previousCommits}
	return activity
}

func TestClassifyTrend(t *testing.T) {
	now := day("2025-03-01")

	testCases := []struct {
		name     string
		recent   int
		previous int
		expected models.Trend
	}{
		{name: "no activity at all", recent: 0, previous: 0, expected: models.TrendStable},
		{name: "activity from nothing", recent: 5, previous: 0, expected: models.TrendIncreasing},
		{name: "exactly plus twenty percent is stable", recent: 12, previous: 10, expected: models.TrendStable},
		{name: "plus thirty percent", recent: 13, previous: 10, expected: models.TrendIncreasing},
		{name: "minus thirty percent", recent: 7, previous: 10, expected: models.TrendDecreasing},
		{name: "exactly minus twenty percent is stable", recent: 8, previous: 10, expected: models.TrendStable},
		{name: "small change", recent: 11, previous: 10, expected: models.TrendStable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			trend := ClassifyTrend(trendActivity(now, tc.recent, tc.previous), now)
			assert.Equal(t, tc.expected, trend)
		})
	}
}

func TestClassifyTrendWindowBounds(t *testing.T) {
	now := day("2025-03-01")
	today := utcDate(now)

	activity := map[time.Time]*models.WeekActivity{
		today:                      {Commits: 100}, // at now: outside both windows
		today.AddDate(0, 0, -28):   {Commits: 13},  // first day of the recent window
		today.AddDate(0, 0, -29):   {Commits: 10},  // last day of the previous window
		today.AddDate(0, 0, -56):   {Commits: 0},   // first day of the previous window
		today.AddDate(0, 0, -57):   {Commits: 999}, // older than both windows
		today.AddDate(0, 0, -1000): {Commits: 999},
	}

	// recent=13, previous=10 -> +30% -> increasing
	assert.Equal(t, models.TrendIncreasing, ClassifyTrend(activity, now))
}

func TestClassifyTrendEmptyActivity(t *testing.T) {
	assert.Equal(t, models.TrendStable, ClassifyTrend(nil, day("2025-03-01")))
}
