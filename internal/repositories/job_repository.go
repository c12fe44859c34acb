package repositories

import (
	"database/sql"
	"sync"
	"time"

	"github.com/alimgiray/commitpulse/internal/models"
)

type JobRepository struct {
	db *sql.DB
	mu sync.Mutex
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create creates a new job
func (r *JobRepository) Create(job *models.Job) error {
	query := `
		INSERT INTO jobs (
			id, repository_id, job_type, status, error_message, depends_on,
			started_at, completed_at, worker_id, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		job.ID, job.RepositoryID, job.JobType, job.Status, job.ErrorMessage,
		job.DependsOn, job.StartedAt, job.CompletedAt, job.WorkerID,
		job.CreatedAt, job.UpdatedAt,
	)

	return err
}

// GetByID retrieves a job by ID
func (r *JobRepository) GetByID(id string) (*models.Job, error) {
	query := `
		SELECT id, repository_id, job_type, status, error_message, depends_on,
		       started_at, completed_at, worker_id, created_at, updated_at
		FROM jobs WHERE id = ?
	`

	job := &models.Job{}
	err := r.db.QueryRow(query, id).Scan(
		&job.ID, &job.RepositoryID, &job.JobType, &job.Status, &job.ErrorMessage,
		&job.DependsOn, &job.StartedAt, &job.CompletedAt, &job.WorkerID,
		&job.CreatedAt, &job.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return job, nil
}

// GetNextPendingJob retrieves the next pending job of a specific type (FIFO)
// and marks it as in-progress. A job whose dependency has not completed yet
// is skipped. This method is thread-safe.
func (r *JobRepository) GetNextPendingJob(jobType models.JobType, workerID string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		SELECT j.id, j.repository_id, j.job_type, j.status, j.error_message, j.depends_on,
		       j.started_at, j.completed_at, j.worker_id, j.created_at, j.updated_at
		FROM jobs j
		LEFT JOIN jobs dep ON j.depends_on = dep.id
		WHERE j.status = ? AND j.job_type = ?
		AND (j.depends_on IS NULL OR dep.status = ?)
		ORDER BY j.created_at ASC
		LIMIT 1
	`

	job := &models.Job{}
	err = tx.QueryRow(query, models.JobStatusPending, jobType, models.JobStatusCompleted).Scan(
		&job.ID, &job.RepositoryID, &job.JobType, &job.Status, &job.ErrorMessage,
		&job.DependsOn, &job.StartedAt, &job.CompletedAt, &job.WorkerID,
		&job.CreatedAt, &job.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No pending jobs found
		}
		return nil, err
	}

	now := time.Now()
	job.Status = models.JobStatusInProgress
	job.StartedAt = &now
	job.WorkerID = &workerID
	job.UpdatedAt = now

	updateQuery := `
		UPDATE jobs SET status = ?, started_at = ?, worker_id = ?, updated_at = ?
		WHERE id = ?
	`
	if _, err := tx.Exec(updateQuery, job.Status, job.StartedAt, job.WorkerID, job.UpdatedAt, job.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return job, nil
}

// Update updates an existing job
func (r *JobRepository) Update(job *models.Job) error {
	job.UpdatedAt = time.Now()

	query := `
		UPDATE jobs SET
			status = ?, error_message = ?, started_at = ?, completed_at = ?,
			worker_id = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		job.Status, job.ErrorMessage, job.StartedAt, job.CompletedAt,
		job.WorkerID, job.UpdatedAt, job.ID,
	)

	return err
}

// GetByRepositoryID retrieves jobs for a repository, newest first
func (r *JobRepository) GetByRepositoryID(repositoryID string, limit int) ([]*models.Job, error) {
	query := `
		SELECT id, repository_id, job_type, status, error_message, depends_on,
		       started_at, completed_at, worker_id, created_at, updated_at
		FROM jobs WHERE repository_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, repositoryID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanJobs(rows)
}

// GetPendingCount returns the number of pending jobs across all repositories
func (r *JobRepository) GetPendingCount() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM jobs WHERE status = ?`, models.JobStatusPending).Scan(&count)
	return count, err
}

// HasActiveJobs reports whether a repository has pending or in-progress jobs
func (r *JobRepository) HasActiveJobs(repositoryID string) (bool, error) {
	query := `
		SELECT COUNT(*) FROM jobs
		WHERE repository_id = ? AND status IN (?, ?)
	`

	var count int
	err := r.db.QueryRow(query, repositoryID, models.JobStatusPending, models.JobStatusInProgress).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *JobRepository) scanJobs(rows *sql.Rows) ([]*models.Job, error) {
	var jobs []*models.Job
	for rows.Next() {
		job := &models.Job{}
		err := rows.Scan(
			&job.ID, &job.RepositoryID, &job.JobType, &job.Status, &job.ErrorMessage,
			&job.DependsOn, &job.StartedAt, &job.CompletedAt, &job.WorkerID,
			&job.CreatedAt, &job.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
