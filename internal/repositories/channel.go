package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/vidtube/internal/models"
	"github.com/desertthunder/vidtube/internal/shared"
)

// ChannelRepository handles [models.Channel] persistence.
type ChannelRepository struct {
	db *sql.DB
}

// NewChannelRepository creates a new [ChannelRepository] with the given database connection
func NewChannelRepository(db *sql.DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

// Create inserts a new channel and sets its ID.
func (r *ChannelRepository) Create(ctx context.Context, channel *models.Channel) error {
	return insertChannel(ctx, r.db, channel)
}

// List returns every channel ordered by ID, each with the number of videos it owns.
func (r *ChannelRepository) List(ctx context.Context) ([]*models.Channel, error) {
	query := `
		SELECT c.id, c.name, COALESCE(c.avatar_url, ''), c.subscribers, c.created_at, COUNT(v.id)
		FROM channels c
		LEFT JOIN videos v ON v.channel_id = c.id
		GROUP BY c.id
		ORDER BY c.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query channels: %w", err)
	}
	defer rows.Close()

	channels := []*models.Channel{}
	for rows.Next() {
		var c models.Channel
		if err := rows.Scan(&c.ID, &c.Name, &c.AvatarURL, &c.Subscribers, &c.CreatedAt, &c.VideoCount); err != nil {
			return nil, fmt.Errorf("failed to scan channel: %w", err)
		}
		channels = append(channels, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return channels, nil
}

// Count returns the number of channels.
func (r *ChannelRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM channels").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count channels: %w", err)
	}
	return n, nil
}

func insertChannel(ctx context.Context, q DBTX, channel *models.Channel) error {
	if channel.CreatedAt.IsZero() {
		channel.CreatedAt = time.Now().UTC()
	}

	if err := channel.Validate(); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrValidation, err)
	}

	result, err := q.ExecContext(ctx,
		"INSERT INTO channels (name, avatar_url, subscribers, created_at) VALUES (?, ?, ?, ?)",
		channel.Name, nullString(channel.AvatarURL), channel.Subscribers, channel.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert channel: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get channel id: %w", err)
	}
	channel.ID = id

	return nil
}
