package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warehouse/cmd"
	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/storage"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(a *app) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled sync",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return a.serve(c.Context())
		},
	}

	flags := serveCmd.Flags()
	flags.String("port", a.viper.GetString(cmd.KeyHTTPPort), "HTTP port")
	flags.String("sync-schedule", "", "cron schedule of the Wix sync, empty disables it")
	_ = a.viper.BindPFlag(cmd.KeyHTTPPort, flags.Lookup("port"))
	_ = a.viper.BindPFlag(cmd.KeySyncSchedule, flags.Lookup("sync-schedule"))

	return serveCmd
}

func (a *app) serve(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := a.openDatabase(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = storage.Close(db) }()

	root := cmd.NewCompositionRoot(a.config, db, a.logger, nil)
	e, err := httpin.NewRouter(root.CreateHTTPServer(), a.logger)
	if err != nil {
		return err
	}

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", a.config.HTTPPort)
		a.logger.InfoContext(ctx, "http server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.InfoContext(shutdownCtx, "shutting down")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
