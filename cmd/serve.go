package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertthunder/vidtube/internal/repositories"
	"github.com/desertthunder/vidtube/internal/server"
	"github.com/desertthunder/vidtube/internal/shared"
	"github.com/urfave/cli/v3"
)

const defaultShutdownTimeout = 5 * time.Second

// Serve starts the catalog API and blocks until the context is cancelled or a SIGINT/SIGTERM arrives.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := shared.EnsureUploadDirs(config.Uploads.Dir); err != nil {
		return err
	}

	db, err := r.openDatabase(ctx, config)
	if err != nil {
		return err
	}
	defer db.Close()

	api := server.NewAPI(server.APIOpts{
		Videos:     repositories.NewVideoRepository(db),
		Channels:   repositories.NewChannelRepository(db),
		Stats:      repositories.NewStatsRepository(db),
		Logger:     shared.WithLogger(r.logger, "component", "api"),
		Now:        r.now,
		MaxPerPage: config.Server.MaxPerPage,
	})

	srv := &http.Server{
		Handler:      server.NewRouter(api, shared.WithLogger(r.logger, "component", "http"), config.Server.CORSOrigins),
		ReadTimeout:  config.Server.ReadTimeout.Duration,
		WriteTimeout: config.Server.WriteTimeout.Duration,
	}

	ln, err := net.Listen("tcp", config.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", config.Server.Addr(), err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.logBanner(ln.Addr().String(), api.Routes())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := config.Server.ShutdownTimeout.Duration
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	r.logger.Info("shutting down", "timeout", timeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	r.logger.Info("server stopped")
	return nil
}

func (r *Runner) logBanner(addr string, routes []server.Route) {
	r.logger.Info("VidTube API listening", "addr", "http://"+addr)
	for _, route := range routes {
		r.logger.Infof("  %-4s %-24s %s", route.Method, route.Path, route.Description)
	}
}
