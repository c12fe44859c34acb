package workers

import (
	"context"
	"log"
	"time"

	"github.com/alimgiray/commitpulse/internal/models"
	"github.com/alimgiray/commitpulse/internal/repositories"
	"github.com/alimgiray/commitpulse/internal/services"
)

// InsightsWorker handles insights jobs: it normalizes the latest raw snapshot
// of a repository and derives a new insights document from it.
type InsightsWorker struct {
	*BaseWorker
	jobRepo         *repositories.JobRepository
	insightsService *services.InsightsService
}

// NewInsightsWorker creates a new insights worker
func NewInsightsWorker(workerID string, jobRepo *repositories.JobRepository, insightsService *services.InsightsService) *InsightsWorker {
	return &InsightsWorker{
		BaseWorker:      NewBaseWorker(workerID, models.JobTypeInsights),
		jobRepo:         jobRepo,
		insightsService: insightsService,
	}
}

// Start begins the insights worker process
func (w *InsightsWorker) Start(ctx context.Context) error {
	w.Running = true
	log.Printf("Insights worker %s started", w.WorkerID)

	for {
		select {
		case <-ctx.Done():
			log.Printf("Insights worker %s stopping due to context cancellation", w.WorkerID)
			return ctx.Err()
		case <-w.StopChan:
			log.Printf("Insights worker %s stopping", w.WorkerID)
			return nil
		default:
			job, err := w.jobRepo.GetNextPendingJob(models.JobTypeInsights, w.WorkerID)
			if err != nil {
				log.Printf("Insights worker %s error getting job: %v", w.WorkerID, err)
				time.Sleep(5 * time.Second)
				continue
			}

			if job == nil {
				time.Sleep(10 * time.Second)
				continue
			}

			w.processJob(job)
		}
	}
}

func (w *InsightsWorker) processJob(job *models.Job) {
	log.Printf("Insights worker %s processing job %s", w.WorkerID, job.ID)

	// The reference instant for every window computation is fixed here, once
	// per run, and threaded through the analytics core.
	if _, err := w.insightsService.ComputeLatest(job.RepositoryID, time.Now()); err != nil {
		log.Printf("Insights worker %s job %s failed: %v", w.WorkerID, job.ID, err)
		job.SetError(err.Error())
		job.MarkFailed()
	} else {
		job.MarkCompleted()
	}

	if err := w.jobRepo.Update(job); err != nil {
		log.Printf("Insights worker %s error updating job %s: %v", w.WorkerID, job.ID, err)
		return
	}

	log.Printf("Insights worker %s finished job %s with status %s", w.WorkerID, job.ID, job.Status)
}
