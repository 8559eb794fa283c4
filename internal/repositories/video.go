package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/vidtube/internal/models"
	"github.com/desertthunder/vidtube/internal/shared"
)

const videoSelect = `
	SELECT
		v.id, v.title, COALESCE(v.description, ''), COALESCE(v.thumbnail_url, ''),
		COALESCE(v.video_url, ''), COALESCE(v.duration, ''), v.views, v.likes, v.dislikes,
		COALESCE(v.category, ''), v.created_at,
		c.id, c.name, COALESCE(c.avatar_url, ''), c.subscribers
	FROM videos v
	JOIN channels c ON c.id = v.channel_id
`

// VideoRepository implements catalog queries and the engagement counters for [models.Video].
//
// Every video it returns has its owning [models.Channel] attached.
type VideoRepository struct {
	db *sql.DB
}

// NewVideoRepository creates a new VideoRepository with the given database connection
func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create inserts a new video and sets its ID. The owning channel must exist.
func (r *VideoRepository) Create(ctx context.Context, video *models.Video) error {
	return insertVideo(ctx, r.db, video)
}

// Get retrieves a video by ID without touching its counters.
func (r *VideoRepository) Get(ctx context.Context, id int64) (*models.Video, error) {
	return getVideo(ctx, r.db, id)
}

// List returns one page of videos matching q, newest first.
//
// q is normalized first, so a zero-value query yields the first page of 20.
// Pages past the end return an empty slice together with the full total.
func (r *VideoRepository) List(ctx context.Context, q models.VideoQuery) (*models.VideoPage, error) {
	q = q.Normalize(0)
	where, args := videoFilter(q)

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM videos v"+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count videos: %w", err)
	}

	query := videoSelect + where + " ORDER BY v.created_at DESC, v.id DESC LIMIT ? OFFSET ?"
	videos, err := r.query(ctx, query, append(args, q.PerPage, q.Offset())...)
	if err != nil {
		return nil, err
	}

	return &models.VideoPage{Videos: videos, Total: total, Page: q.Page, PerPage: q.PerPage}, nil
}

// RecordView increments the view counter by one and returns the updated video.
//
// Returns an error wrapping [shared.ErrNotFound] if the video doesn't exist.
func (r *VideoRepository) RecordView(ctx context.Context, id int64) (*models.Video, error) {
	var video *models.Video
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := increment(ctx, tx, "views", id); err != nil {
			return err
		}

		v, err := getVideo(ctx, tx, id)
		if err != nil {
			return err
		}
		video = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return video, nil
}

// Like increments the like counter by one and returns the new count.
//
// Returns an error wrapping [shared.ErrNotFound] if the video doesn't exist.
func (r *VideoRepository) Like(ctx context.Context, id int64) (int64, error) {
	var likes int64
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := increment(ctx, tx, "likes", id); err != nil {
			return err
		}

		if err := tx.QueryRowContext(ctx, "SELECT likes FROM videos WHERE id = ?", id).Scan(&likes); err != nil {
			return fmt.Errorf("failed to read likes: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return likes, nil
}

// Trending returns up to limit videos created at or after since, most viewed first.
func (r *VideoRepository) Trending(ctx context.Context, since time.Time, limit int) ([]*models.Video, error) {
	query := videoSelect + " WHERE v.created_at >= ? ORDER BY v.views DESC, v.id ASC LIMIT ?"
	return r.query(ctx, query, since.UTC(), limit)
}

// Search matches term against video titles, descriptions and channel names, ignoring case, most viewed first.
//
// A blank term matches nothing.
func (r *VideoRepository) Search(ctx context.Context, term string) ([]*models.Video, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []*models.Video{}, nil
	}

	pattern := containsPattern(term)
	query := videoSelect + `
		WHERE v.title LIKE ? ESCAPE '\'
			OR v.description LIKE ? ESCAPE '\'
			OR c.name LIKE ? ESCAPE '\'
		ORDER BY v.views DESC, v.id ASC`
	return r.query(ctx, query, pattern, pattern, pattern)
}

// Categories returns the distinct non-empty categories in byte order.
func (r *VideoRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT category
		FROM videos
		WHERE category IS NOT NULL AND category != ''
		ORDER BY category ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return categories, nil
}

func (r *VideoRepository) query(ctx context.Context, query string, args ...any) ([]*models.Video, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	videos := []*models.Video{}
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return videos, nil
}

// videoFilter builds the WHERE clause for a normalized query.
func videoFilter(q models.VideoQuery) (string, []any) {
	var clauses []string
	var args []any

	if q.Category != "" {
		clauses = append(clauses, `v.category LIKE ? ESCAPE '\'`)
		args = append(args, containsPattern(q.Category))
	}

	if q.Search != "" {
		pattern := containsPattern(q.Search)
		clauses = append(clauses, `(v.title LIKE ? ESCAPE '\' OR v.description LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// increment adds one to a counter column. column is never user input.
func increment(ctx context.Context, q DBTX, column string, id int64) error {
	result, err := q.ExecContext(ctx, fmt.Sprintf("UPDATE videos SET %s = %s + 1 WHERE id = ?", column, column), id)
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", column, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: video %d", shared.ErrNotFound, id)
	}
	return nil
}

func getVideo(ctx context.Context, q DBTX, id int64) (*models.Video, error) {
	video, err := scanVideo(q.QueryRowContext(ctx, videoSelect+" WHERE v.id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: video %d", shared.ErrNotFound, id)
	}
	return video, err
}

func insertVideo(ctx context.Context, q DBTX, video *models.Video) error {
	if video.CreatedAt.IsZero() {
		video.CreatedAt = time.Now().UTC()
	}

	if err := video.Validate(); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrValidation, err)
	}

	query := `
		INSERT INTO videos (
			title, description, thumbnail_url, video_url, duration,
			views, likes, dislikes, category, created_at, channel_id
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := q.ExecContext(ctx, query,
		video.Title,
		nullString(video.Description),
		nullString(video.ThumbnailURL),
		nullString(video.VideoURL),
		nullString(video.Duration),
		video.Views,
		video.Likes,
		video.Dislikes,
		nullString(video.Category),
		video.CreatedAt.UTC(),
		video.ChannelID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert video: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get video id: %w", err)
	}
	video.ID = id

	return nil
}

// scanVideo scans one row of videoSelect into a [models.Video] with its channel attached.
func scanVideo(s scanner) (*models.Video, error) {
	var (
		video   models.Video
		channel models.Channel
	)

	err := s.Scan(
		&video.ID, &video.Title, &video.Description, &video.ThumbnailURL,
		&video.VideoURL, &video.Duration, &video.Views, &video.Likes, &video.Dislikes,
		&video.Category, &video.CreatedAt,
		&channel.ID, &channel.Name, &channel.AvatarURL, &channel.Subscribers,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan video: %w", err)
	}

	video.ChannelID = channel.ID
	video.Channel = &channel
	return &video, nil
}
