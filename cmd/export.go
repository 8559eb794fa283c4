package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/vidtube/internal/formatter"
	"github.com/desertthunder/vidtube/internal/models"
	"github.com/desertthunder/vidtube/internal/repositories"
	"github.com/urfave/cli/v3"
)

const exportPageSize = 100

// Export writes every video matching --category and --search, newest first, in the chosen format.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := r.openDatabase(ctx, config)
	if err != nil {
		return err
	}
	defer db.Close()

	videos, err := allVideos(ctx, repositories.NewVideoRepository(db), models.VideoQuery{
		Category: cmd.String("category"),
		Search:   cmd.String("search"),
	})
	if err != nil {
		return err
	}

	now := r.now()
	title := "VidTube Catalog"

	output := cmd.String("output")
	if output == "-" {
		data, err := formatter.Export(format, title, videos, now)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	}

	path, err := formatter.WriteExport(format, output, title, videos, now)
	if err != nil {
		return err
	}

	r.logger.Info("exported catalog", "videos", len(videos), "format", format, "path", path)
	return r.writePlain("✓ Exported %d videos to %s\n", len(videos), path)
}

// allVideos walks every page of q.
func allVideos(ctx context.Context, repo *repositories.VideoRepository, q models.VideoQuery) ([]*models.Video, error) {
	q.PerPage = exportPageSize
	q.Page = 1

	var videos []*models.Video
	for {
		page, err := repo.List(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("failed to list videos: %w", err)
		}
		videos = append(videos, page.Videos...)
		if !page.HasNext() {
			return videos, nil
		}
		q.Page++
	}
}
