package workers

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/alimgiray/commitpulse/internal/repositories"
	"github.com/alimgiray/commitpulse/internal/services"
)

// WorkerManager manages multiple workers of different types
type WorkerManager struct {
	workers []Worker
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc

	jobRepo         *repositories.JobRepository
	repoRepo        *repositories.TrackedRepositoryRepository
	insightsService *services.InsightsService
	reportService   *services.ReportService
}

// NewWorkerManager creates a new worker manager
func NewWorkerManager(
	jobRepo *repositories.JobRepository,
	repoRepo *repositories.TrackedRepositoryRepository,
	insightsService *services.InsightsService,
	reportService *services.ReportService,
) *WorkerManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerManager{
		workers:         make([]Worker, 0),
		ctx:             ctx,
		cancel:          cancel,
		jobRepo:         jobRepo,
		repoRepo:        repoRepo,
		insightsService: insightsService,
		reportService:   reportService,
	}
}

// StartAll starts all workers based on environment configuration
func (wm *WorkerManager) StartAll() error {
	fetchWorkers := wm.getWorkerCount("FETCH_WORKERS", 2)
	insightsWorkers := wm.getWorkerCount("INSIGHTS_WORKERS", 1)
	reportWorkers := wm.getWorkerCount("REPORT_WORKERS", 1)

	log.Printf("Starting workers - Fetch: %d, Insights: %d, Report: %d",
		fetchWorkers, insightsWorkers, reportWorkers)

	for i := 0; i < fetchWorkers; i++ {
		worker := NewFetchWorker(fmt.Sprintf("fetch-%d", i+1), wm.jobRepo, wm.insightsService)
		wm.workers = append(wm.workers, worker)
		wm.startWorker(worker)
	}

	for i := 0; i < insightsWorkers; i++ {
		worker := NewInsightsWorker(fmt.Sprintf("insights-%d", i+1), wm.jobRepo, wm.insightsService)
		wm.workers = append(wm.workers, worker)
		wm.startWorker(worker)
	}

	for i := 0; i < reportWorkers; i++ {
		worker := NewReportWorker(fmt.Sprintf("report-%d", i+1), wm.jobRepo, wm.repoRepo, wm.insightsService, wm.reportService)
		wm.workers = append(wm.workers, worker)
		wm.startWorker(worker)
	}

	log.Printf("Started %d total workers", len(wm.workers))
	return nil
}

// StopAll gracefully stops all workers
func (wm *WorkerManager) StopAll() error {
	log.Println("Stopping all workers...")

	// Cancel the context to signal all workers to stop
	wm.cancel()

	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			log.Printf("Error stopping worker %s: %v", worker.GetWorkerID(), err)
		}
	}

	// Wait for all workers to finish
	wm.wg.Wait()

	log.Println("All workers stopped")
	return nil
}

// getWorkerCount reads worker count from environment variable with fallback
func (wm *WorkerManager) getWorkerCount(envVar string, defaultValue int) int {
	if value := os.Getenv(envVar); value != "" {
		if count, err := strconv.Atoi(value); err == nil && count > 0 {
			return count
		}
		log.Printf("Invalid value for %s, using default: %d", envVar, defaultValue)
	}
	return defaultValue
}

// startWorker starts a single worker in a goroutine
func (wm *WorkerManager) startWorker(worker Worker) {
	wm.wg.Add(1)
	go func() {
		defer wm.wg.Done()
		if err := worker.Start(wm.ctx); err != nil {
			log.Printf("Worker %s stopped with error: %v", worker.GetWorkerID(), err)
		}
	}()
}
