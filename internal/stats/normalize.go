// Package stats implements the contributor-activity analytics core: it turns
// normalized weekly contributor records into aggregate statistics, windowed
// summaries, rankings, and an activity-trend classification. Everything here
// is a pure function of its inputs; the reference instant is always passed in
// explicitly so results stay deterministic.
package stats

import (
	"sort"
	"time"

	"github.com/alimgiray/commitpulse/internal/models"
	"github.com/google/go-github/v57/github"
)

const (
	unknownLogin       = "Unknown"
	defaultAccountType = "User"
	dateLayout         = "2006-01-02"
)

// Normalize converts the raw GitHub contributor-statistics payload into the
// canonical Contributor model. Missing author fields fall back to sentinel
// values, missing counters default to zero, and no entry is dropped for
// having zero commits.
func Normalize(raw []*github.ContributorStats) []*models.Contributor {
	contributors := make([]*models.Contributor, 0, len(raw))
	for _, entry := range raw {
		if entry == nil {
			continue
		}
		contributors = append(contributors, normalizeEntry(entry))
	}
	return contributors
}

func normalizeEntry(entry *github.ContributorStats) *models.Contributor {
	contributor := &models.Contributor{
		Login:        unknownLogin,
		Type:         defaultAccountType,
		TotalCommits: entry.GetTotal(),
		Weeks:        make([]models.WeekRecord, 0, len(entry.Weeks)),
	}

	if author := entry.Author; author != nil {
		if author.Login != nil {
			contributor.Login = *author.Login
		}
		contributor.GithubID = author.ID
		contributor.AvatarURL = author.AvatarURL
		contributor.ProfileURL = author.HTMLURL
		if author.Type != nil {
			contributor.Type = *author.Type
		}
	}

	for _, week := range entry.Weeks {
		if week == nil || week.Week == nil {
			continue
		}
		contributor.Weeks = append(contributor.Weeks, models.WeekRecord{
			// The API reports the week as epoch seconds; downstream window
			// filtering compares calendar dates, so truncate to a UTC day.
			WeekStart: utcDate(week.Week.Time),
			Commits:   week.GetCommits(),
			Additions: week.GetAdditions(),
			Deletions: week.GetDeletions(),
		})
	}

	sort.Slice(contributor.Weeks, func(i, j int) bool {
		return contributor.Weeks[i].WeekStart.Before(contributor.Weeks[j].WeekStart)
	})

	return contributor
}

// utcDate truncates an instant to its UTC calendar day.
func utcDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
