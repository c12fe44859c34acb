package services

import (
	"fmt"

	"github.com/alimgiray/commitpulse/internal/models"
	"github.com/alimgiray/commitpulse/internal/repositories"
)

type JobService struct {
	jobRepo *repositories.JobRepository
}

func NewJobService(jobRepo *repositories.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// EnqueueRefresh creates the fetch -> insights -> report job chain for a
// repository. Each job depends on the previous one completing.
func (s *JobService) EnqueueRefresh(repositoryID string) ([]*models.Job, error) {
	fetchJob := models.NewJob(repositoryID, models.JobTypeFetch)
	if err := s.jobRepo.Create(fetchJob); err != nil {
		return nil, fmt.Errorf("failed to create fetch job: %w", err)
	}

	insightsJob := models.NewJob(repositoryID, models.JobTypeInsights)
	insightsJob.DependsOn = &fetchJob.ID
	if err := s.jobRepo.Create(insightsJob); err != nil {
		return nil, fmt.Errorf("failed to create insights job: %w", err)
	}

	reportJob := models.NewJob(repositoryID, models.JobTypeReport)
	reportJob.DependsOn = &insightsJob.ID
	if err := s.jobRepo.Create(reportJob); err != nil {
		return nil, fmt.Errorf("failed to create report job: %w", err)
	}

	return []*models.Job{fetchJob, insightsJob, reportJob}, nil
}

// HasActiveJobs reports whether a repository still has unfinished jobs
func (s *JobService) HasActiveJobs(repositoryID string) (bool, error) {
	return s.jobRepo.HasActiveJobs(repositoryID)
}

// GetRepositoryJobs returns recent jobs for a repository
func (s *JobService) GetRepositoryJobs(repositoryID string, limit int) ([]*models.Job, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.jobRepo.GetByRepositoryID(repositoryID, limit)
}
