package stats

import (
	"testing"
	"time"

	"github.com/alimgiray/commitpulse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateTotals(t *testing.T) {
	contributors := []*models.Contributor{
		contributor("alice", 8, week("2025-01-05", 3, 100, 20), week("2025-01-12", 5, 40, 10)),
		contributor("bob", 1, week("2025-01-12", 1, 5, 0)),
		contributor("carol", 0, week("2025-01-05", 0, 0, 0)),
	}

	agg := Aggregate(contributors)

	assert.Equal(t, 3, agg.TotalContributors)
	assert.Equal(t, 9, agg.TotalCommits)
	assert.Equal(t, 3, agg.AvgCommitsPerContributor) // round(9/3)
	require.NotNil(t, agg.MostActive)
	assert.Equal(t, "alice", agg.MostActive.Login)
}

func TestAggregateMostActiveKeepsFirstOnTie(t *testing.T) {
	contributors := []*models.Contributor{
		contributor("first", 10),
		contributor("second", 10),
		contributor("third", 4),
	}

	agg := Aggregate(contributors)

	require.NotNil(t, agg.MostActive)
	assert.Equal(t, "first", agg.MostActive.Login,
		"later contributors with an equal count must not replace the first maximum")
}

func TestAggregateCommitDistribution(t *testing.T) {
	contributors := []*models.Contributor{
		contributor("a", 0),
		contributor("b", 3),
		contributor("c", 5),
		contributor("d", 12),
		contributor("e", 45),
		contributor("f", 72),
		contributor("g", 250),
	}

	agg := Aggregate(contributors)

	expected := map[string]int{
		"0":      1,
		"1-5":    2,
		"6-20":   1,
		"21-50":  1,
		"51-100": 1,
		"100+":   1,
	}
	assert.Equal(t, expected, agg.CommitDistribution)

	// Required invariant: bucket counts account for every contributor.
	sum := 0
	for _, count := range agg.CommitDistribution {
		sum += count
	}
	assert.Equal(t, agg.TotalContributors, sum)
}

func TestAggregateDistributionOmitsEmptyBuckets(t *testing.T) {
	agg := Aggregate([]*models.Contributor{contributor("a", 2), contributor("b", 4)})

	assert.Equal(t, map[string]int{"1-5": 2}, agg.CommitDistribution,
		"labels with zero contributors are not emitted")
}

func TestAggregateWeeklyActivity(t *testing.T) {
	contributors := []*models.Contributor{
		contributor("alice", 8, week("2025-01-05", 3, 0, 0), week("2025-01-12", 5, 0, 0)),
		contributor("bob", 2, week("2025-01-05", 2, 0, 0), week("2025-01-12", 0, 0, 0)),
	}

	agg := Aggregate(contributors)

	require.Len(t, agg.WeeklyActivity, 2)
	firstWeek := agg.WeeklyActivity[day("2025-01-05")]
	require.NotNil(t, firstWeek)
	assert.Equal(t, 5, firstWeek.Commits)
	assert.Equal(t, 2, firstWeek.Contributors)

	secondWeek := agg.WeeklyActivity[day("2025-01-12")]
	require.NotNil(t, secondWeek)
	assert.Equal(t, 5, secondWeek.Commits)
	assert.Equal(t, 1, secondWeek.Contributors, "zero-commit records do not count as active")
}

func TestAggregateEmptyDataset(t *testing.T) {
	agg := Aggregate(nil)

	assert.Equal(t, 0, agg.TotalContributors)
	assert.Equal(t, 0, agg.TotalCommits)
	assert.Equal(t, 0, agg.AvgCommitsPerContributor, "no division by zero on an empty dataset")
	assert.Nil(t, agg.MostActive)
	assert.Empty(t, agg.CommitDistribution)
}

func TestMostAndLeastActiveWeek(t *testing.T) {
	contributors := []*models.Contributor{
		contributor("alice", 9,
			week("2025-01-05", 6, 0, 0),
			week("2025-01-12", 0, 0, 0),
			week("2025-01-19", 3, 0, 0),
		),
	}
	agg := Aggregate(contributors)

	most := MostActiveWeek(agg.WeeklyActivity)
	require.NotNil(t, most)
	assert.Equal(t, "2025-01-05", most.Week)
	assert.Equal(t, 6, most.Commits)

	least := LeastActiveWeek(agg.WeeklyActivity)
	require.NotNil(t, least)
	assert.Equal(t, "2025-01-19", least.Week, "zero-commit weeks are excluded from least-active")
	assert.Equal(t, 3, least.Commits)
}

func TestActiveWeekNilWhenNoActivity(t *testing.T) {
	assert.Nil(t, MostActiveWeek(nil))
	assert.Nil(t, LeastActiveWeek(map[time.Time]*models.WeekActivity{}))
}
