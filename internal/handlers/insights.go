package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/alimgiray/commitpulse/internal/services"
	"github.com/gin-gonic/gin"
)

type InsightsHandler struct {
	insightsService *services.InsightsService
}

func NewInsightsHandler(insightsService *services.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// Latest returns the most recently computed insights for a repository
func (h *InsightsHandler) Latest(c *gin.Context) {
	insights, err := h.insightsService.GetLatestInsights(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNoSnapshot) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no insights computed for this repository yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load insights"})
		return
	}

	c.JSON(http.StatusOK, insights)
}

// History returns recent insights snapshots without their full documents
func (h *InsightsHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	snapshots, err := h.insightsService.GetHistory(c.Param("id"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load insights history"})
		return
	}

	type snapshotSummary struct {
		ID                string `json:"id"`
		TotalContributors int    `json:"total_contributors"`
		TotalCommits      int    `json:"total_commits"`
		ActivityTrend     string `json:"activity_trend"`
		GeneratedAt       string `json:"generated_at"`
	}

	summaries := make([]snapshotSummary, 0, len(snapshots))
	for _, snapshot := range snapshots {
		summaries = append(summaries, snapshotSummary{
			ID:                snapshot.ID,
			TotalContributors: snapshot.TotalContributors,
			TotalCommits:      snapshot.TotalCommits,
			ActivityTrend:     snapshot.ActivityTrend,
			GeneratedAt:       snapshot.GeneratedAt.Format("2006-01-02 15:04:05"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"snapshots": summaries})
}
