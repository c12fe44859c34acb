package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/alimgiray/commitpulse/internal/models"
	"github.com/alimgiray/commitpulse/internal/repositories"
	"github.com/alimgiray/commitpulse/internal/services"
	"github.com/alimgiray/commitpulse/pkg/logger"
	"github.com/gin-gonic/gin"
)

type RepositoryHandler struct {
	repoRepo    *repositories.TrackedRepositoryRepository
	jobService  *services.JobService
	githubStats *services.GitHubStatsService
}

func NewRepositoryHandler(
	repoRepo *repositories.TrackedRepositoryRepository,
	jobService *services.JobService,
	githubStats *services.GitHubStatsService,
) *RepositoryHandler {
	return &RepositoryHandler{
		repoRepo:    repoRepo,
		jobService:  jobService,
		githubStats: githubStats,
	}
}

type trackRepositoryRequest struct {
	Owner       string `json:"owner" binding:"required"`
	Name        string `json:"name" binding:"required"`
	RefreshHour *int   `json:"refresh_hour"`
}

// List returns all tracked repositories
func (h *RepositoryHandler) List(c *gin.Context) {
	repos, err := h.repoRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list repositories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"repositories": repos})
}

// Get returns a single tracked repository
func (h *RepositoryHandler) Get(c *gin.Context) {
	repo, err := h.repoRepo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "repository not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load repository"})
		return
	}

	c.JSON(http.StatusOK, repo)
}

// Track registers a repository and enqueues its first refresh
func (h *RepositoryHandler) Track(c *gin.Context) {
	var req trackRepositoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner and name are required"})
		return
	}

	if req.RefreshHour != nil && (*req.RefreshHour < 0 || *req.RefreshHour > 23) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh_hour must be between 0 and 23"})
		return
	}

	if _, err := h.repoRepo.GetByOwnerAndName(req.Owner, req.Name); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "repository is already tracked"})
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check repository"})
		return
	}

	repo := models.NewTrackedRepository(req.Owner, req.Name)
	repo.RefreshHour = req.RefreshHour

	// Metadata lookup is best effort; tracking works without it.
	if ghRepo, err := h.githubStats.FetchRepository(c.Request.Context(), req.Owner, req.Name); err == nil {
		repo.HTMLURL = ghRepo.HTMLURL
	} else {
		logger.Warnf("Could not fetch metadata for %s/%s: %v", req.Owner, req.Name, err)
	}

	if err := h.repoRepo.Create(repo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to track repository"})
		return
	}

	jobs, err := h.jobService.EnqueueRefresh(repo.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "repository tracked but refresh could not be scheduled"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"repository": repo, "jobs": jobs})
}

// Refresh enqueues a new fetch/insights/report chain for a repository
func (h *RepositoryHandler) Refresh(c *gin.Context) {
	repo, err := h.repoRepo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "repository not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load repository"})
		return
	}

	active, err := h.jobService.HasActiveJobs(repo.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check jobs"})
		return
	}
	if active {
		c.JSON(http.StatusConflict, gin.H{"error": "a refresh is already in progress"})
		return
	}

	jobs, err := h.jobService.EnqueueRefresh(repo.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to schedule refresh"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"jobs": jobs})
}

// Jobs lists recent jobs for a repository
func (h *RepositoryHandler) Jobs(c *gin.Context) {
	jobs, err := h.jobService.GetRepositoryJobs(c.Param("id"), 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list jobs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Delete stops tracking a repository
func (h *RepositoryHandler) Delete(c *gin.Context) {
	if err := h.repoRepo.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete repository"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
