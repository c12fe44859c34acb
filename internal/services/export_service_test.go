package services

import (
	"path/filepath"
	"testing"

	"github.com/alimgiray/commitpulse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insights.xlsx")
	service := NewExportService()
	repo := models.NewTrackedRepository("acme", "aquarium")

	require.NoError(t, service.WriteWorkbook(path, repo, sampleInsights()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Top Contributors", "Weekly Activity"}, f.GetSheetList())

	repoCell, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "acme/aquarium", repoCell)

	topName, err := f.GetCellValue("Top Contributors", "B2")
	require.NoError(t, err)
	assert.Equal(t, "alice", topName)

	firstWeek, err := f.GetCellValue("Weekly Activity", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-05", firstWeek, "weeks are written in chronological order")
}
