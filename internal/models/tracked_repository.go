package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TrackedRepository represents a GitHub repository whose contributor
// statistics are fetched and analyzed.
type TrackedRepository struct {
	ID            string     `json:"id"`
	Owner         string     `json:"owner"`
	Name          string     `json:"name"`
	HTMLURL       *string    `json:"html_url"`
	RefreshHour   *int       `json:"refresh_hour"` // hour of day (0-23) for scheduled refresh, nil disables
	LastFetchedAt *time.Time `json:"last_fetched_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewTrackedRepository creates a new TrackedRepository with a generated UUID.
func NewTrackedRepository(owner, name string) *TrackedRepository {
	now := time.Now()
	return &TrackedRepository{
		ID:        uuid.New().String(),
		Owner:     owner,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FullName returns the "owner/name" form used by the GitHub API.
func (r *TrackedRepository) FullName() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}
