package repositories

import (
	"database/sql"
	"time"

	"github.com/alimgiray/commitpulse/internal/models"
)

type TrackedRepositoryRepository struct {
	db *sql.DB
}

func NewTrackedRepositoryRepository(db *sql.DB) *TrackedRepositoryRepository {
	return &TrackedRepositoryRepository{db: db}
}

// Create creates a new tracked repository
func (r *TrackedRepositoryRepository) Create(repo *models.TrackedRepository) error {
	query := `
		INSERT INTO tracked_repositories (
			id, owner, name, html_url, refresh_hour, last_fetched_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		repo.ID, repo.Owner, repo.Name, repo.HTMLURL, repo.RefreshHour,
		repo.LastFetchedAt, repo.CreatedAt, repo.UpdatedAt,
	)

	return err
}

// GetByID retrieves a tracked repository by ID
func (r *TrackedRepositoryRepository) GetByID(id string) (*models.TrackedRepository, error) {
	query := `
		SELECT id, owner, name, html_url, refresh_hour, last_fetched_at, created_at, updated_at
		FROM tracked_repositories WHERE id = ?
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByOwnerAndName retrieves a tracked repository by its owner/name pair
func (r *TrackedRepositoryRepository) GetByOwnerAndName(owner, name string) (*models.TrackedRepository, error) {
	query := `
		SELECT id, owner, name, html_url, refresh_hour, last_fetched_at, created_at, updated_at
		FROM tracked_repositories WHERE owner = ? AND name = ?
	`

	return r.scanOne(r.db.QueryRow(query, owner, name))
}

// GetAll retrieves all tracked repositories ordered by owner and name
func (r *TrackedRepositoryRepository) GetAll() ([]*models.TrackedRepository, error) {
	query := `
		SELECT id, owner, name, html_url, refresh_hour, last_fetched_at, created_at, updated_at
		FROM tracked_repositories
		ORDER BY owner ASC, name ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// GetByRefreshHour retrieves repositories scheduled for the given hour of day
func (r *TrackedRepositoryRepository) GetByRefreshHour(hour int) ([]*models.TrackedRepository, error) {
	query := `
		SELECT id, owner, name, html_url, refresh_hour, last_fetched_at, created_at, updated_at
		FROM tracked_repositories
		WHERE refresh_hour = ?
		ORDER BY owner ASC, name ASC
	`

	rows, err := r.db.Query(query, hour)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// Update updates an existing tracked repository
func (r *TrackedRepositoryRepository) Update(repo *models.TrackedRepository) error {
	repo.UpdatedAt = time.Now()

	query := `
		UPDATE tracked_repositories SET
			owner = ?, name = ?, html_url = ?, refresh_hour = ?, last_fetched_at = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		repo.Owner, repo.Name, repo.HTMLURL, repo.RefreshHour,
		repo.LastFetchedAt, repo.UpdatedAt, repo.ID,
	)

	return err
}

// Delete removes a tracked repository
func (r *TrackedRepositoryRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM tracked_repositories WHERE id = ?`, id)
	return err
}

func (r *TrackedRepositoryRepository) scanOne(row *sql.Row) (*models.TrackedRepository, error) {
	repo := &models.TrackedRepository{}
	err := row.Scan(
		&repo.ID, &repo.Owner, &repo.Name, &repo.HTMLURL, &repo.RefreshHour,
		&repo.LastFetchedAt, &repo.CreatedAt, &repo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *TrackedRepositoryRepository) scanAll(rows *sql.Rows) ([]*models.TrackedRepository, error) {
	var repos []*models.TrackedRepository
	for rows.Next() {
		repo := &models.TrackedRepository{}
		err := rows.Scan(
			&repo.ID, &repo.Owner, &repo.Name, &repo.HTMLURL, &repo.RefreshHour,
			&repo.LastFetchedAt, &repo.CreatedAt, &repo.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	return repos, rows.Err()
}
