package stats

import (
	"testing"

	"github.com/alimgiray/commitpulse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankContributorsOrdering(t *testing.T) {
	contributors := []*models.Contributor{
		contributor("bob", 5, week("2025-01-05", 5, 20, 40)),
		contributor("alice", 12, week("2025-01-05", 12, 300, 50)),
		contributor("carol", 9, week("2025-01-05", 9, 80, 10)),
	}

	ranked := RankContributors(contributors, 5)

	require.Len(t, ranked, 3, "limit larger than the dataset returns everyone")
	assert.Equal(t, "alice", ranked[0].Name)
	assert.Equal(t, "carol", ranked[1].Name)
	assert.Equal(t, "bob", ranked[2].Name)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Commits, ranked[i].Commits)
	}

	assert.Equal(t, 300, ranked[0].Additions)
	assert.Equal(t, 50, ranked[0].Deletions)
	assert.Equal(t, 250, ranked[0].NetLines)
	assert.Equal(t, -20, ranked[2].NetLines, "net lines can go negative")
}

func TestRankContributorsLimit(t *testing.T) {
	contributors := []*models.Contributor{
		contributor("a", 3),
		contributor("b", 2),
		contributor("c", 1),
	}

	ranked := RankContributors(contributors, 2)

	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].Name)
	assert.Equal(t, "b", ranked[1].Name)
}

// Equal commit counts order by login ascending, regardless of ingestion order.
func TestRankContributorsTieBreak(t *testing.T) {
	contributors := []*models.Contributor{
		contributor("zoe", 5),
		contributor("amy", 5),
		contributor("mia", 5),
	}

	ranked := RankContributors(contributors, 0) // zero limit falls back to everyone

	require.Len(t, ranked, 3)
	assert.Equal(t, "amy", ranked[0].Name)
	assert.Equal(t, "mia", ranked[1].Name)
	assert.Equal(t, "zoe", ranked[2].Name)
}

func TestRankContributorsDoesNotMutateInput(t *testing.T) {
	contributors := []*models.Contributor{
		contributor("bob", 1),
		contributor("alice", 7),
	}

	RankContributors(contributors, 5)

	assert.Equal(t, "bob", contributors[0].Login, "input ordering is preserved")
	assert.Equal(t, "alice", contributors[1].Login)
}
