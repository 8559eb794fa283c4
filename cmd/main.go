package main

import (
	"context"
	"os"

	"github.com/desertthunder/vidtube/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)
	runner := NewRunner(RunnerOpts{Logger: logger})

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "vidtube",
		Usage:    "Serve and browse the VidTube video catalog",
		Version:  "0.1.0",
		Commands: r.register(),
	}
}
