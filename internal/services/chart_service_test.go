package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alimgiray/commitpulse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteChartPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts.html")
	service := NewChartService()
	repo := models.NewTrackedRepository("acme", "aquarium")

	require.NoError(t, service.WriteChartPage(path, repo, sampleInsights()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	page := string(content)

	assert.Contains(t, page, "Top Contributors: acme/aquarium")
	assert.Contains(t, page, "Weekly Commit Activity")
	assert.Contains(t, page, "alice")
}
