package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/desertthunder/vidtube/internal/models"
)

// StatsRepository computes catalog-wide aggregates.
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new [StatsRepository] with the given database connection
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Totals returns video and channel counts and the sums of views and likes (zero when there are no videos).
func (r *StatsRepository) Totals(ctx context.Context) (*models.PlatformStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM videos),
			(SELECT COUNT(*) FROM channels),
			(SELECT COALESCE(SUM(views), 0) FROM videos),
			(SELECT COALESCE(SUM(likes), 0) FROM videos)
	`

	var s models.PlatformStats
	if err := r.db.QueryRowContext(ctx, query).Scan(&s.TotalVideos, &s.TotalChannels, &s.TotalViews, &s.TotalLikes); err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	return &s, nil
}
