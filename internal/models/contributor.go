package models

import (
	"time"
)

// Contributor represents one GitHub account and its weekly commit history
// against a tracked repository.
type Contributor struct {
	Login        string       `json:"login"`
	GithubID     *int64       `json:"github_id"`
	AvatarURL    *string      `json:"avatar_url"`
	ProfileURL   *string      `json:"profile_url"`
	Type         string       `json:"type"` // "User", "Bot", "Organization"
	TotalCommits int          `json:"total_commits"`
	Weeks        []WeekRecord `json:"weeks"`
}

// WeekRecord holds one ISO week's commit and line-change counts.
// WeekStart is the Sunday that opens the week, truncated to a UTC calendar day.
type WeekRecord struct {
	WeekStart time.Time `json:"week_start"`
	Commits   int       `json:"commits"`
	Additions int       `json:"additions"`
	Deletions int       `json:"deletions"`
}

// TotalAdditions sums line additions across all weeks.
func (c *Contributor) TotalAdditions() int {
	total := 0
	for _, week := range c.Weeks {
		total += week.Additions
	}
	return total
}

// TotalDeletions sums line deletions across all weeks.
func (c *Contributor) TotalDeletions() int {
	total := 0
	for _, week := range c.Weeks {
		total += week.Deletions
	}
	return total
}

// FirstActiveWeek returns the start of the earliest week with at least one
// commit, or nil if the contributor never committed.
func (c *Contributor) FirstActiveWeek() *time.Time {
	var first *time.Time
	for i := range c.Weeks {
		week := &c.Weeks[i]
		if week.Commits == 0 {
			continue
		}
		if first == nil || week.WeekStart.Before(*first) {
			first = &week.WeekStart
		}
	}
	return first
}
