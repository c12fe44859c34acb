package workers

import (
	"context"
	"log"
	"time"

	"github.com/alimgiray/commitpulse/internal/models"
	"github.com/alimgiray/commitpulse/internal/repositories"
	"github.com/alimgiray/commitpulse/internal/services"
)

// ReportWorker handles report jobs: it renders the latest insights of a
// repository into markdown, chart, and workbook files.
type ReportWorker struct {
	*BaseWorker
	jobRepo         *repositories.JobRepository
	repoRepo        *repositories.TrackedRepositoryRepository
	insightsService *services.InsightsService
	reportService   *services.ReportService
}

// NewReportWorker creates a new report worker
func NewReportWorker(
	workerID string,
	jobRepo *repositories.JobRepository,
	repoRepo *repositories.TrackedRepositoryRepository,
	insightsService *services.InsightsService,
	reportService *services.ReportService,
) *ReportWorker {
	return &ReportWorker{
		BaseWorker:      NewBaseWorker(workerID, models.JobTypeReport),
		jobRepo:         jobRepo,
		repoRepo:        repoRepo,
		insightsService: insightsService,
		reportService:   reportService,
	}
}

// Start begins the report worker process
func (w *ReportWorker) Start(ctx context.Context) error {
	w.Running = true
	log.Printf("Report worker %s started", w.WorkerID)

	for {
		select {
		case <-ctx.Done():
			log.Printf("Report worker %s stopping due to context cancellation", w.WorkerID)
			return ctx.Err()
		case <-w.StopChan:
			log.Printf("Report worker %s stopping", w.WorkerID)
			return nil
		default:
			job, err := w.jobRepo.GetNextPendingJob(models.JobTypeReport, w.WorkerID)
			if err != nil {
				log.Printf("Report worker %s error getting job: %v", w.WorkerID, err)
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

func (w *ReportWorker) processJob(job *models.Job) {
	log.Printf("Report worker %s processing job %s", w.WorkerID, job.ID)

	if err := w.generateReports(job.RepositoryID); err != nil {
		log.Printf("Report worker %s job %s failed: %v", w.WorkerID, job.ID, err)
		job.SetError(err.Error())
		job.MarkFailed()
	} else {
		job.MarkCompleted()
	}

	if err := w.jobRepo.Update(job); err != nil {
		log.Printf("Report worker %s error updating job %s: %v", w.WorkerID, job.ID, err)
		return
	}

	log.Printf("Report worker %s finished job %s with status %s", w.WorkerID, job.ID, job.Status)
}

func (w *ReportWorker) generateReports(repositoryID string) error {
	repo, err := w.repoRepo.GetByID(repositoryID)
	if err != nil {
		return err
	}

	insights, err := w.insightsService.GetLatestInsights(repositoryID)
	if err != nil {
		return err
	}

	return w.reportService.GenerateReports(repo, insights)
}
