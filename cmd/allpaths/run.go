package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/allpaths/bfs"
	"github.com/katalvlaran/allpaths/internal/config"
	"github.com/katalvlaran/allpaths/internal/metrics"
	"github.com/katalvlaran/allpaths/internal/source"
	"github.com/katalvlaran/allpaths/matrix"
)

const shutdownTimeout = 5 * time.Second

// runner computes and prints results for one resolved config. In watch mode
// compute is also called from the file-watcher goroutine, so output is serialized.
type runner struct {
	cfg    *config.Config
	logger *slog.Logger
	mu     sync.Mutex
	out    io.Writer
}

// run loads the matrix and either computes once or keeps recomputing on change
// until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	lvl, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	src, err := source.New(cfg.Input, logger)
	if err != nil {
		return err
	}
	metrics.MatrixNodes.Set(float64(src.Matrix().NodeCount()))
	logger.Debug("matrix loaded", "path", cfg.Input, "nodes", src.Matrix().NodeCount())

	r := &runner{cfg: cfg, logger: logger, out: stdout}
	if !cfg.Watch {
		return r.compute(ctx, src.Matrix())
	}
	return r.watch(ctx, src)
}

// watch recomputes after every successful reload. Computation errors are
// logged rather than returned so a later edit can fix them.
func (r *runner) watch(ctx context.Context, src *source.Source) error {
	if err := r.compute(ctx, src.Matrix()); err != nil {
		r.logger.Error("computation failed", "err", err)
	}

	src.OnChange(func(adj *matrix.Adjacency) {
		metrics.Reloads.WithLabelValues("ok").Inc()
		metrics.MatrixNodes.Set(float64(adj.NodeCount()))
		r.logger.Info("matrix reloaded", "path", src.Path(), "nodes", adj.NodeCount())
		if err := r.compute(ctx, adj); err != nil {
			r.logger.Error("computation failed", "err", err)
		}
	})
	src.OnReloadError(func(error) {
		metrics.Reloads.WithLabelValues("error").Inc()
	})
	stopWatch, err := src.Watch()
	if err != nil {
		return err
	}
	defer stopWatch()
	r.logger.Info("watching for changes", "path", src.Path())

	if addr := r.cfg.MetricsAddr; addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: shutdownTimeout}
		go func() {
			r.logger.Info("metrics listening", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				r.logger.Error("metrics server error", "err", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	<-ctx.Done()
	r.logger.Info("shutting down")
	return nil
}

// compute validates start/end against adj, runs the search and prints the result.
func (r *runner) compute(ctx context.Context, adj *matrix.Adjacency) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	start, end := *r.cfg.Start, *r.cfg.End
	log := r.logger.With("run_id", uuid.NewString(), "start", start, "end", end)

	n := adj.NodeCount()
	if err := matrix.ValidateIndex(start, n); err != nil {
		metrics.ObserveComputation(metrics.OutcomeError, 0, 0)
		return fmt.Errorf("start: %w", err)
	}
	if err := matrix.ValidateIndex(end, n); err != nil {
		metrics.ObserveComputation(metrics.OutcomeError, 0, 0)
		return fmt.Errorf("end: %w", err)
	}

	began := time.Now()
	res, err := bfs.Compute(adj, start, end,
		bfs.WithContext(ctx),
		bfs.WithMaxPaths(r.cfg.MaxPaths),
		bfs.WithOnDequeue(func(node, depth int) {
			log.Debug("expanded", "node", node, "depth", depth)
		}),
	)
	elapsed := time.Since(began)
	if err != nil {
		metrics.ObserveComputation(metrics.OutcomeError, 0, elapsed)
		return err
	}

	outcome := metrics.OutcomeNoPath
	if res.Found() {
		outcome = metrics.OutcomeFound
	}
	metrics.ObserveComputation(outcome, len(res.Paths), elapsed)
	log.Debug("computed", "nodes", n, "hops", res.Hops(), "paths", len(res.Paths), "elapsed", elapsed)
	if res.Truncated {
		log.Warn("path enumeration capped", "max_paths", r.cfg.MaxPaths)
	}

	return render(r.out, r.cfg.Format, res)
}
