package models

import (
	"time"
)

// Trend classifies commit-volume change between two adjacent 4-week windows.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// WeekActivity aggregates one week across every contributor.
// Contributors counts the distinct contributors with at least one commit
// in that week.
type WeekActivity struct {
	Commits      int `json:"commits"`
	Contributors int `json:"contributors"`
}

// AggregateStats holds whole-dataset totals computed in a single pass over
// the normalized contributor collection.
type AggregateStats struct {
	TotalContributors        int
	TotalCommits             int
	AvgCommitsPerContributor int
	MostActive               *Contributor
	CommitDistribution       map[string]int
	WeeklyActivity           map[time.Time]*WeekActivity
}

// WeekHighlight identifies a single notable week.
type WeekHighlight struct {
	Week         string `json:"week"`
	Commits      int    `json:"commits"`
	Contributors int    `json:"contributors"`
}

// RankedContributor is one row of the top-contributor list with line totals
// recomputed from its week records.
type RankedContributor struct {
	Name      string  `json:"name"`
	Commits   int     `json:"commits"`
	Additions int     `json:"additions"`
	Deletions int     `json:"deletions"`
	NetLines  int     `json:"netLines"`
	Avatar    *string `json:"avatar"`
	Profile   *string `json:"profile"`
}

// NewContributor reports a contributor whose first active week falls inside
// the most recent four weeks.
type NewContributor struct {
	Name        string `json:"name"`
	Commits     int    `json:"commits"`
	FirstCommit string `json:"firstCommit"`
}

// ActivitySummary summarizes a trailing activity window. Weeks is the number
// of weeks with data inside the window, not the window length.
type ActivitySummary struct {
	Weeks             int     `json:"weeks"`
	TotalCommits      int     `json:"totalCommits"`
	AvgCommitsPerWeek float64 `json:"avgCommitsPerWeek"`
	WeeksWithActivity int     `json:"weeksWithActivity"`
	TotalAdditions    int     `json:"totalAdditions"`
	TotalDeletions    int     `json:"totalDeletions"`
	NetLines          int     `json:"netLines"`
}

// Insights is the derived, read-only view handed to the rendering and API
// layers. Weekly activity keys are "2006-01-02" week-start dates.
type Insights struct {
	TotalContributors          int                     `json:"totalContributors"`
	TotalCommits               int                     `json:"totalCommits"`
	MostActiveContributor      *string                 `json:"mostActiveContributor"`
	TotalAdditions             int                     `json:"totalAdditions"`
	TotalDeletions             int                     `json:"totalDeletions"`
	NetLines                   int                     `json:"netLines"`
	AvgCommitsPerContributor   int                     `json:"avgCommitsPerContributor"`
	AvgAdditionsPerContributor int                     `json:"avgAdditionsPerContributor"`
	AvgDeletionsPerContributor int                     `json:"avgDeletionsPerContributor"`
	CommitDistribution         map[string]int          `json:"commitDistribution"`
	WeeklyActivity             map[string]WeekActivity `json:"weeklyActivity"`
	MostActiveWeek             *WeekHighlight          `json:"mostActiveWeek"`
	LeastActiveWeek            *WeekHighlight          `json:"leastActiveWeek"`
	TopContributors            []RankedContributor     `json:"topContributors"`
	NewContributors            []NewContributor        `json:"newContributors"`
	RecentActivity             ActivitySummary         `json:"recentActivity"`
	LastEightWeeks             ActivitySummary         `json:"lastEightWeeks"`
	AllTime                    ActivitySummary         `json:"allTime"`
	ActivityTrend              Trend                   `json:"activityTrend"`
	GeneratedAt                time.Time               `json:"generatedAt"`
}
