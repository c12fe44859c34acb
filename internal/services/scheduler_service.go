package services

import (
	"log"
	"time"

	"github.com/alimgiray/commitpulse/internal/repositories"
)

// SchedulerService enqueues refresh job chains for repositories whose
// configured refresh hour matches the current hour.
type SchedulerService struct {
	repoRepo   *repositories.TrackedRepositoryRepository
	jobService *JobService
}

func NewSchedulerService(
	repoRepo *repositories.TrackedRepositoryRepository,
	jobService *JobService,
) *SchedulerService {
	return &SchedulerService{
		repoRepo:   repoRepo,
		jobService: jobService,
	}
}

// StartScheduler starts the automatic refresh scheduler
func (s *SchedulerService) StartScheduler() {
	go func() {
		for {
			now := time.Now()
			s.runScheduledRefreshes(now.Hour())

			// Sleep until the top of the next hour
			nextHour := now.Add(1 * time.Hour)
			nextHour = time.Date(nextHour.Year(), nextHour.Month(), nextHour.Day(), nextHour.Hour(), 0, 0, 0, nextHour.Location())
			time.Sleep(nextHour.Sub(now))
		}
	}()
}

func (s *SchedulerService) runScheduledRefreshes(hour int) {
	repos, err := s.repoRepo.GetByRefreshHour(hour)
	if err != nil {
		log.Printf("Error getting repositories scheduled for hour %d: %v", hour, err)
		return
	}

	for _, repo := range repos {
		active, err := s.jobService.HasActiveJobs(repo.ID)
		if err != nil {
			log.Printf("Error checking active jobs for %s: %v", repo.FullName(), err)
			continue
		}
		if active {
			log.Printf("Skipping scheduled refresh for %s, jobs still running", repo.FullName())
			continue
		}

		if _, err := s.jobService.EnqueueRefresh(repo.ID); err != nil {
			log.Printf("Error scheduling refresh for %s: %v", repo.FullName(), err)
			continue
		}
		log.Printf("Scheduled automatic refresh for %s at hour %d", repo.FullName(), hour)
	}
}
