package workers

import (
	"context"
	"log"
	"time"

	"github.com/alimgiray/commitpulse/internal/models"
	"github.com/alimgiray/commitpulse/internal/repositories"
	"github.com/alimgiray/commitpulse/internal/services"
)

// FetchWorker handles fetch jobs: it pulls the raw contributor statistics
// for a repository from the GitHub API and stores them as a snapshot.
type FetchWorker struct {
	*BaseWorker
	jobRepo         *repositories.JobRepository
	insightsService *services.InsightsService
}

// NewFetchWorker creates a new fetch worker
func NewFetchWorker(workerID string, jobRepo *repositories.JobRepository, insightsService *services.InsightsService) *FetchWorker {
	return &FetchWorker{
		BaseWorker:      NewBaseWorker(workerID, models.JobTypeFetch),
		jobRepo:         jobRepo,
		insightsService: insightsService,
	}
}

// Start begins the fetch worker process
func (w *FetchWorker) Start(ctx context.Context) error {
	w.Running = true
	log.Printf("Fetch worker %s started", w.WorkerID)

	for {
		select {
		case <-ctx.Done():
			log.Printf("Fetch worker %s stopping due to context cancellation", w.WorkerID)
			return ctx.Err()
		case <-w.StopChan:
			log.Printf("Fetch worker %s stopping", w.WorkerID)
			return nil
		default:
			job, err := w.jobRepo.GetNextPendingJob(models.JobTypeFetch, w.WorkerID)
			if err != nil {
				log.Printf("Fetch worker %s error getting job: %v", w.WorkerID, err)
				time.Sleep(5 * time.Second)
				continue
			}

			if job == nil {
				// No jobs available, sleep and try again
				time.Sleep(10 * time.Second)
				continue
			}

			w.processJob(ctx, job)
		}
	}
}

func (w *FetchWorker) processJob(ctx context.Context, job *models.Job) {
	log.Printf("Fetch worker %s processing job %s", w.WorkerID, job.ID)

	if _, err := w.insightsService.FetchAndStore(ctx, job.RepositoryID); err != nil {
		log.Printf("Fetch worker %s job %s failed: %v", w.WorkerID, job.ID, err)
		job.SetError(err.Error())
		job.MarkFailed()
	} else {
		job.MarkCompleted()
	}

	if err := w.jobRepo.Update(job); err != nil {
		log.Printf("Fetch worker %s error updating job %s: %v", w.WorkerID, job.ID, err)
		return
	}

	log.Printf("Fetch worker %s finished job %s with status %s", w.WorkerID, job.ID, job.Status)
}
