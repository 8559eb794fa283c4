package main

import (
	"context"

	"github.com/desertthunder/vidtube/internal/formatter"
	"github.com/desertthunder/vidtube/internal/repositories"
	"github.com/desertthunder/vidtube/internal/ui"
	"github.com/urfave/cli/v3"
)

// Stats prints platform totals, styled or as JSON.
func (r *Runner) Stats(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := r.openDatabase(ctx, config)
	if err != nil {
		return err
	}
	defer db.Close()

	totals, err := repositories.NewStatsRepository(db).Totals(ctx)
	if err != nil {
		return err
	}

	resp := formatter.Stats(totals)
	if cmd.Bool("json") {
		return r.writeJSON(resp, true)
	}
	return r.writePlain("%s\n", ui.RenderStats(resp))
}
