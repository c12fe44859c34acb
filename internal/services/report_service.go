package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/alimgiray/commitpulse/internal/models"
	"github.com/alimgiray/commitpulse/internal/stats"
)

// ReportService renders the insights of a repository into files under the
// configured reports directory: a markdown summary, an HTML chart page, and
// an xlsx workbook.
type ReportService struct {
	dir           string
	chartService  *ChartService
	exportService *ExportService
}

func NewReportService(dir string, chartService *ChartService, exportService *ExportService) *ReportService {
	return &ReportService{
		dir:           dir,
		chartService:  chartService,
		exportService: exportService,
	}
}

// GenerateReports writes all report artifacts for a repository
func (s *ReportService) GenerateReports(repo *models.TrackedRepository, insights *models.Insights) error {
	outDir := filepath.Join(s.dir, fmt.Sprintf("%s-%s", repo.Owner, repo.Name))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := s.writeMarkdown(filepath.Join(outDir, "insights.md"), repo, insights); err != nil {
		return fmt.Errorf("failed to write markdown report: %w", err)
	}

	if err := s.chartService.WriteChartPage(filepath.Join(outDir, "charts.html"), repo, insights); err != nil {
		return fmt.Errorf("failed to write chart page: %w", err)
	}

	if err := s.exportService.WriteWorkbook(filepath.Join(outDir, "insights.xlsx"), repo, insights); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

const markdownTemplate = `# Contributor Insights: {{ .FullName }}

Generated at {{ .GeneratedAt }}.

## Summary

| Metric | Value |
|---|---|
| Contributors | {{ .I.TotalContributors }} |
| Total commits | {{ .I.TotalCommits }} |
| Most active contributor | {{ .MostActive }} |
| Avg commits per contributor | {{ .I.AvgCommitsPerContributor }} |
| Lines added | {{ .I.TotalAdditions }} |
| Lines deleted | {{ .I.TotalDeletions }} |
| Net lines | {{ .I.NetLines }} |
| Activity trend | {{ .I.ActivityTrend }} |

## Commit distribution

| Commits | Contributors |
|---|---|
{{- range .Distribution }}
| {{ .Label }} | {{ .Count }} |
{{- end }}

## Top contributors

| Rank | Contributor | Commits | Added | Deleted | Net |
|---|---|---|---|---|---|
{{- range $i, $c := .I.TopContributors }}
| {{ inc $i }} | {{ $c.Name }} | {{ $c.Commits }} | {{ $c.Additions }} | {{ $c.Deletions }} | {{ $c.NetLines }} |
{{- end }}

## Recent activity (last 4 weeks)

- Commits: {{ .I.RecentActivity.TotalCommits }}
- Average per week: {{ .I.RecentActivity.AvgCommitsPerWeek }}
- Weeks with activity: {{ .I.RecentActivity.WeeksWithActivity }} of {{ .I.RecentActivity.Weeks }}
- Net lines: {{ .I.RecentActivity.NetLines }}

{{ if .I.MostActiveWeek }}Most active week: {{ .I.MostActiveWeek.Week }} ({{ .I.MostActiveWeek.Commits }} commits, {{ .I.MostActiveWeek.Contributors }} contributors)
{{ end -}}
{{ if .I.LeastActiveWeek }}Least active week: {{ .I.LeastActiveWeek.Week }} ({{ .I.LeastActiveWeek.Commits }} commits)
{{ end }}
{{- if .I.NewContributors }}
## New contributors

{{ range .I.NewContributors }}- {{ .Name }} (first active {{ .FirstCommit }}, {{ .Commits }} commits)
{{ end }}
{{- end }}
`

type distributionRow struct {
	Label string
	Count int
}

type markdownView struct {
	FullName     string
	GeneratedAt  string
	MostActive   string
	Distribution []distributionRow
	I            *models.Insights
}

func (s *ReportService) writeMarkdown(path string, repo *models.TrackedRepository, insights *models.Insights) error {
	tmpl, err := template.New("insights").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).Parse(markdownTemplate)
	if err != nil {
		return err
	}

	view := markdownView{
		FullName:     repo.FullName(),
		GeneratedAt:  insights.GeneratedAt.Format("2006-01-02 15:04:05 UTC"),
		MostActive:   "-",
		Distribution: distributionRows(insights.CommitDistribution),
		I:            insights,
	}
	if insights.MostActiveContributor != nil {
		view.MostActive = *insights.MostActiveContributor
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, view)
}

// distributionRows orders the bucket histogram by bucket boundaries rather
// than map iteration order.
func distributionRows(distribution map[string]int) []distributionRow {
	rows := make([]distributionRow, 0, len(distribution))
	for _, label := range stats.BucketLabels() {
		if count, ok := distribution[label]; ok {
			rows = append(rows, distributionRow{Label: label, Count: count})
		}
	}
	return rows
}

// sortedWeekKeys returns weekly activity keys in chronological order. The
// keys are "2006-01-02" dates, so lexical order is chronological order.
func sortedWeekKeys(activity map[string]models.WeekActivity) []string {
	keys := make([]string, 0, len(activity))
	for key := range activity {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
