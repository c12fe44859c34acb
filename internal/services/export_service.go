package services

import (
	"fmt"

	"github.com/alimgiray/commitpulse/internal/models"
	"github.com/xuri/excelize/v2"
)

// ExportService writes insights as an xlsx workbook with summary, ranking,
// and weekly activity sheets.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// WriteWorkbook writes the insights workbook to the given path
func (s *ExportService) WriteWorkbook(path string, repo *models.TrackedRepository, insights *models.Insights) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return err
	}
	if err := s.writeSummarySheet(f, repo, insights); err != nil {
		return err
	}
	if err := s.writeRankingSheet(f, insights); err != nil {
		return err
	}
	if err := s.writeWeeklySheet(f, insights); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func (s *ExportService) writeSummarySheet(f *excelize.File, repo *models.TrackedRepository, insights *models.Insights) error {
	mostActive := "-"
	if insights.MostActiveContributor != nil {
		mostActive = *insights.MostActiveContributor
	}

	rows := [][]interface{}{
		{"Repository", repo.FullName()},
		{"Generated at", insights.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Contributors", insights.TotalContributors},
		{"Total commits", insights.TotalCommits},
		{"Most active contributor", mostActive},
		{"Avg commits per contributor", insights.AvgCommitsPerContributor},
		{"Lines added", insights.TotalAdditions},
		{"Lines deleted", insights.TotalDeletions},
		{"Net lines", insights.NetLines},
		{"Activity trend", string(insights.ActivityTrend)},
		{"Recent commits (4 weeks)", insights.RecentActivity.TotalCommits},
		{"Recent avg commits per week", insights.RecentActivity.AvgCommitsPerWeek},
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow("Summary", cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportService) writeRankingSheet(f *excelize.File, insights *models.Insights) error {
	if _, err := f.NewSheet("Top Contributors"); err != nil {
		return err
	}

	header := []interface{}{"Rank", "Contributor", "Commits", "Added", "Deleted", "Net lines"}
	if err := f.SetSheetRow("Top Contributors", "A1", &header); err != nil {
		return err
	}

	for i, contributor := range insights.TopContributors {
		row := []interface{}{
			i + 1, contributor.Name, contributor.Commits,
			contributor.Additions, contributor.Deletions, contributor.NetLines,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow("Top Contributors", cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportService) writeWeeklySheet(f *excelize.File, insights *models.Insights) error {
	if _, err := f.NewSheet("Weekly Activity"); err != nil {
		return err
	}

	header := []interface{}{"Week", "Commits", "Active contributors"}
	if err := f.SetSheetRow("Weekly Activity", "A1", &header); err != nil {
		return err
	}

	for i, week := range sortedWeekKeys(insights.WeeklyActivity) {
		activity := insights.WeeklyActivity[week]
		row := []interface{}{week, activity.Commits, activity.Contributors}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow("Weekly Activity", cell, &row); err != nil {
			return err
		}
	}
	return nil
}
