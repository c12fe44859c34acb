package stats

import (
	"sort"
	"time"

	"github.com/alimgiray/commitpulse/internal/models"
)

// Newcomers are contributors whose first active week falls inside this many
// days before the reference instant.
const newContributorDays = 28

// NewContributors reports contributors whose earliest nonzero-commit week
// starts on or after now minus 28 days, using calendar-date comparison. The
// boundary is inclusive: a first active week exactly 28 days old still
// qualifies. Contributors without any commits are excluded.
func NewContributors(contributors []*models.Contributor, now time.Time) []models.NewContributor {
	cutoff := utcDate(now).AddDate(0, 0, -newContributorDays)

	var newcomers []models.NewContributor
	for _, contributor := range contributors {
		first := contributor.FirstActiveWeek()
		if first == nil || first.Before(cutoff) {
			continue
		}
		newcomers = append(newcomers, models.NewContributor{
			Name:        contributor.Login,
			Commits:     contributor.TotalCommits,
			FirstCommit: first.Format(dateLayout),
		})
	}

	sort.Slice(newcomers, func(i, j int) bool {
		if newcomers[i].FirstCommit != newcomers[j].FirstCommit {
			return newcomers[i].FirstCommit < newcomers[j].FirstCommit
		}
		return newcomers[i].Name < newcomers[j].Name
	})
	return newcomers
}
