package stats

import (
	"sort"

	"github.com/alimgiray/commitpulse/internal/models"
)

// RankContributors orders contributors descending by total commits and
// returns the first limit entries with line totals recomputed from their
// week records. Equal commit counts are broken by login ascending so the
// ordering is deterministic.
func RankContributors(contributors []*models.Contributor, limit int) []models.RankedContributor {
	ordered := make([]*models.Contributor, len(contributors))
	copy(ordered, contributors)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].TotalCommits != ordered[j].TotalCommits {
			return ordered[i].TotalCommits > ordered[j].TotalCommits
		}
		return ordered[i].Login < ordered[j].Login
	})

	if limit > 0 && limit < len(ordered) {
		ordered = ordered[:limit]
	}

	ranked := make([]models.RankedContributor, 0, len(ordered))
	for _, contributor := range ordered {
		additions := contributor.TotalAdditions()
		deletions := contributor.TotalDeletions()
		ranked = append(ranked, models.RankedContributor{
			Name:      contributor.Login,
			Commits:   contributor.TotalCommits,
			Additions: additions,
			Deletions: deletions,
			NetLines:  additions - deletions,
			Avatar:    contributor.AvatarURL,
			Profile:   contributor.ProfileURL,
		})
	}
	return ranked
}
