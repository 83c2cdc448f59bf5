package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"studypulse/internal/auth"
	"studypulse/internal/config"
	"studypulse/internal/dashboard"
	"studypulse/internal/goal"
	httpx "studypulse/internal/http"
	"studypulse/internal/ingest"
	"studypulse/internal/insight"
	"studypulse/internal/jobs"
	"studypulse/internal/logger"
	"studypulse/internal/store"
	"studypulse/internal/streak"
	"studypulse/internal/subject"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the background task runner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(parent context.Context, cfg config.Config) error {
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, queue, err := openStore(cfg, log)
	if err != nil {
		return fmt.Errorf("open store (%s): %w", cfg.DBDriver, err)
	}

	now := time.Now
	loc := cfg.Location()

	engine := &streak.Engine{Logs: st, Streaks: st}
	tracker := &goal.Tracker{Goals: st, Logs: st, Now: now, Location: loc}
	gen := &insight.Generator{Logs: st, Insights: st, Now: now, Location: loc, WeeklyGoal: cfg.WeeklyHoursGoal}
	handlers := ingest.TaskHandlers(engine, gen)

	var dispatcher jobs.Dispatcher
	var inline *jobs.Inline
	var workerDone chan struct{}
	if queue != nil {
		dispatcher = queue
		worker := &jobs.Worker{ID: cfg.WorkerID, Queue: queue, Handlers: handlers, Log: log.With("component", "worker")}
		workerDone = make(chan struct{})
		go func() {
			defer close(workerDone)
			worker.Run(ctx)
		}()
	} else {
		inline = &jobs.Inline{Handlers: handlers, Log: log.With("component", "inline-jobs")}
		dispatcher = inline
	}

	svc := &ingest.Service{
		Logs:     st,
		Subjects: st,
		Resolver: &subject.Resolver{Subjects: st, DefaultTargetHours: cfg.DefaultTargetHours},
		Streaks:  engine,
		Jobs:     dispatcher,
		Log:      log.With("component", "ingest"),
		Now:      now,
		Location: loc,
	}
	agg := &dashboard.Aggregator{
		Subjects:     st,
		Logs:         st,
		Deadlines:    st,
		Insights:     st,
		Streaks:      engine,
		Goals:        tracker,
		Now:          now,
		Location:     loc,
		WeekStart:    cfg.FirstWeekday(),
		ActiveWindow: cfg.ActiveSubjectsWindow,
	}

	r := httpx.NewRouter(cfg, httpx.Deps{
		Store:     st,
		Ingest:    svc,
		Dashboard: agg,
		Streaks:   engine,
		Goals:     tracker,
		JWT:       auth.NewJWT(cfg.JWTSecret),
		Log:       log.With("component", "http"),
		Now:       now,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.HTTPAddr, "driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	// graceful shutdown
	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown", "error", err)
	}
	if workerDone != nil {
		select {
		case <-workerDone:
		case <-shutdownCtx.Done():
			log.Warn("worker still running a job at shutdown")
		}
	}
	if inline != nil {
		inline.Wait()
	}
	log.Info("stopped")
	return nil
}

// openStore selects the storage backend. The job queue is only available
// on postgres; other drivers return a nil queue and run tasks inline.
func openStore(cfg config.Config, log *logger.Logger) (store.Store, *jobs.Repo, error) {
	if cfg.DBDriver == "memory" {
		return store.NewMemory(), nil, nil
	}

	gdb, err := migrate(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	var queue *jobs.Repo
	if cfg.DBDriver == "postgres" {
		queue = &jobs.Repo{DB: gdb}
	}
	return store.NewGorm(gdb), queue, nil
}
