package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alimgiray/commitpulse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInsights() *models.Insights {
	mostActive := "alice"
	avatar := "https://avatars.example.com/alice"
	profile := "https://github.com/alice"

	return &models.Insights{
		TotalContributors:        3,
		TotalCommits:             24,
		MostActiveContributor:    &mostActive,
		TotalAdditions:           900,
		TotalDeletions:           300,
		NetLines:                 600,
		AvgCommitsPerContributor: 8,
		CommitDistribution:       map[string]int{"1-5": 2, "6-20": 1},
		WeeklyActivity: map[string]models.WeekActivity{
			"2025-01-12": {Commits: 10, Contributors: 2},
			"2025-01-05": {Commits: 14, Contributors: 3},
		},
		MostActiveWeek:  &models.WeekHighlight{Week: "2025-01-05", Commits: 14, Contributors: 3},
		LeastActiveWeek: &models.WeekHighlight{Week: "2025-01-12", Commits: 10, Contributors: 2},
		TopContributors: []models.RankedContributor{
			{Name: "alice", Commits: 18, Additions: 700, Deletions: 100, NetLines: 600, Avatar: &avatar, Profile: &profile},
			{Name: "bob", Commits: 6, Additions: 200, Deletions: 200, NetLines: 0},
		},
		NewContributors: []models.NewContributor{
			{Name: "bob", Commits: 6, FirstCommit: "2025-01-05"},
		},
		RecentActivity: models.ActivitySummary{
			Weeks: 2, TotalCommits: 24, AvgCommitsPerWeek: 12.0,
			WeeksWithActivity: 2, TotalAdditions: 900, TotalDeletions: 300, NetLines: 600,
		},
		ActivityTrend: models.TrendIncreasing,
		GeneratedAt:   time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestGenerateReportsWritesAllArtifacts(t *testing.T) {
	dir := t.TempDir()
	service := NewReportService(dir, NewChartService(), NewExportService())
	repo := models.NewTrackedRepository("acme", "aquarium")

	err := service.GenerateReports(repo, sampleInsights())
	require.NoError(t, err)

	outDir := filepath.Join(dir, "acme-aquarium")
	for _, name := range []string{"insights.md", "charts.html", "insights.xlsx"} {
		info, err := os.Stat(filepath.Join(outDir, name))
		require.NoError(t, err, "expected artifact %s", name)
		assert.Greater(t, info.Size(), int64(0), "artifact %s should not be empty", name)
	}
}

func TestWriteMarkdownContent(t *testing.T) {
	dir := t.TempDir()
	service := NewReportService(dir, NewChartService(), NewExportService())
	repo := models.NewTrackedRepository("acme", "aquarium")
	path := filepath.Join(dir, "insights.md")

	require.NoError(t, service.writeMarkdown(path, repo, sampleInsights()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	markdown := string(content)

	assert.Contains(t, markdown, "# Contributor Insights: acme/aquarium")
	assert.Contains(t, markdown, "| Contributors | 3 |")
	assert.Contains(t, markdown, "| Most active contributor | alice |")
	assert.Contains(t, markdown, "| 1 | alice | 18 | 700 | 100 | 600 |")
	assert.Contains(t, markdown, "Most active week: 2025-01-05")
	assert.Contains(t, markdown, "- bob (first active 2025-01-05, 6 commits)")
	assert.Contains(t, markdown, "| increasing |")
}

func TestDistributionRowsFollowBucketOrder(t *testing.T) {
	rows := distributionRows(map[string]int{"100+": 1, "0": 4, "6-20": 2})

	require.Len(t, rows, 3)
	assert.Equal(t, distributionRow{Label: "0", Count: 4}, rows[0])
	assert.Equal(t, distributionRow{Label: "6-20", Count: 2}, rows[1])
	assert.Equal(t, distributionRow{Label: "100+", Count: 1}, rows[2])
}

func TestSortedWeekKeys(t *testing.T) {
	keys := sortedWeekKeys(map[string]models.WeekActivity{
		"2025-01-12": {},
		"2024-12-29": {},
		"2025-01-05": {},
	})

	assert.Equal(t, []string{"2024-12-29", "2025-01-05", "2025-01-12"}, keys)
}
