package repositories

import (
	"database/sql"

	"github.com/alimgiray/commitpulse/internal/models"
)

type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// CreateStatsSnapshot stores a raw contributor-statistics payload
func (r *SnapshotRepository) CreateStatsSnapshot(snapshot *models.StatsSnapshot) error {
	query := `
		INSERT INTO stats_snapshots (id, repository_id, payload, fetched_at, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		snapshot.ID, snapshot.RepositoryID, snapshot.Payload,
		snapshot.FetchedAt, snapshot.CreatedAt,
	)

	return err
}

// GetLatestStatsSnapshot retrieves the most recent raw payload for a repository
func (r *SnapshotRepository) GetLatestStatsSnapshot(repositoryID string) (*models.StatsSnapshot, error) {
	query := `
		SELECT id, repository_id, payload, fetched_at, created_at
		FROM stats_snapshots
		WHERE repository_id = ?
		ORDER BY fetched_at DESC
		LIMIT 1
	`

	snapshot := &models.StatsSnapshot{}
	err := r.db.QueryRow(query, repositoryID).Scan(
		&snapshot.ID, &snapshot.RepositoryID, &snapshot.Payload,
		&snapshot.FetchedAt, &snapshot.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// CreateInsightsSnapshot stores a computed insights document
func (r *SnapshotRepository) CreateInsightsSnapshot(snapshot *models.InsightsSnapshot) error {
	query := `
		INSERT INTO insights_snapshots (
			id, repository_id, stats_snapshot_id, document,
			total_contributors, total_commits, activity_trend, generated_at, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		snapshot.ID, snapshot.RepositoryID, snapshot.StatsSnapshotID, snapshot.Document,
		snapshot.TotalContributors, snapshot.TotalCommits, snapshot.ActivityTrend,
		snapshot.GeneratedAt, snapshot.CreatedAt,
	)

	return err
}

// GetLatestInsightsSnapshot retrieves the most recent insights for a repository
func (r *SnapshotRepository) GetLatestInsightsSnapshot(repositoryID string) (*models.InsightsSnapshot, error) {
	query := `
		SELECT id, repository_id, stats_snapshot_id, document,
		       total_contributors, total_commits, activity_trend, generated_at, created_at
		FROM insights_snapshots
		WHERE repository_id = ?
		ORDER BY generated_at DESC
		LIMIT 1
	`

	return r.scanInsights(r.db.QueryRow(query, repositoryID))
}

// ListInsightsSnapshots retrieves recent insights snapshots, newest first
func (r *SnapshotRepository) ListInsightsSnapshots(repositoryID string, limit int) ([]*models.InsightsSnapshot, error) {
	query := `
		SELECT id, repository_id, stats_snapshot_id, document,
		       total_contributors, total_commits, activity_trend, generated_at, created_at
		FROM insights_snapshots
		WHERE repository_id = ?
		ORDER BY generated_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, repositoryID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*models.InsightsSnapshot
	for rows.Next() {
		snapshot := &models.InsightsSnapshot{}
		err := rows.Scan(
			&snapshot.ID, &snapshot.RepositoryID, &snapshot.StatsSnapshotID, &snapshot.Document,
			&snapshot.TotalContributors, &snapshot.TotalCommits, &snapshot.ActivityTrend,
			&snapshot.GeneratedAt, &snapshot.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, rows.Err()
}

func (r *SnapshotRepository) scanInsights(row *sql.Row) (*models.InsightsSnapshot, error) {
	snapshot := &models.InsightsSnapshot{}
	err := row.Scan(
		&snapshot.ID, &snapshot.RepositoryID, &snapshot.StatsSnapshotID, &snapshot.Document,
		&snapshot.TotalContributors, &snapshot.TotalCommits, &snapshot.ActivityTrend,
		&snapshot.GeneratedAt, &snapshot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
