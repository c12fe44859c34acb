package services

import (
	"fmt"
	"os"

	"github.com/alimgiray/commitpulse/internal/models"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ChartService renders insights as an HTML chart page using go-echarts.
type ChartService struct{}

func NewChartService() *ChartService {
	return &ChartService{}
}

// WriteChartPage writes a single HTML page with the top-contributor bar chart
// and the weekly activity line chart
func (s *ChartService) WriteChartPage(path string, repo *models.TrackedRepository, insights *models.Insights) error {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("Contributor Insights: %s", repo.FullName())
	page.AddCharts(
		s.topContributorsChart(repo, insights),
		s.weeklyActivityChart(insights),
	)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return page.Render(f)
}

func (s *ChartService) topContributorsChart(repo *models.TrackedRepository, insights *models.Insights) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Top Contributors: %s", repo.FullName()),
			Subtitle: fmt.Sprintf("%d contributors, %d commits total", insights.TotalContributors, insights.TotalCommits),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)

	names := make([]string, 0, len(insights.TopContributors))
	commits := make([]opts.BarData, 0, len(insights.TopContributors))
	for _, contributor := range insights.TopContributors {
		names = append(names, contributor.Name)
		commits = append(commits, opts.BarData{Value: contributor.Commits})
	}

	bar.SetXAxis(names).AddSeries("Commits", commits)
	return bar
}

func (s *ChartService) weeklyActivityChart(insights *models.Insights) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Weekly Commit Activity",
			Subtitle: fmt.Sprintf("Trend: %s", insights.ActivityTrend),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)

	weeks := sortedWeekKeys(insights.WeeklyActivity)
	commits := make([]opts.LineData, 0, len(weeks))
	contributors := make([]opts.LineData, 0, len(weeks))
	for _, week := range weeks {
		activity := insights.WeeklyActivity[week]
		commits = append(commits, opts.LineData{Value: activity.Commits})
		contributors = append(contributors, opts.LineData{Value: activity.Contributors})
	}

	line.SetXAxis(weeks).
		AddSeries("Commits", commits).
		AddSeries("Active contributors", contributors)
	return line
}
