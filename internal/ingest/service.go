// Package ingest wires the continuous ingestion pipeline: a directory
// watcher feeds document paths to extraction workers, whose records a
// batching collector commits to the store.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"adcheck/internal/database"
	"adcheck/internal/models"
	"adcheck/internal/pipeline"
	"adcheck/internal/scheduler"
	"adcheck/internal/watch"
)

// Config holds service settings.
type Config struct {
	DocumentsDir  string
	Workers       int
	BatchSize     int
	FlushInterval time.Duration
	RescanEvery   time.Duration
}

// Service is the watch-mode daemon: watcher -> extraction workers ->
// batching collector -> directive store.
type Service struct {
	ctx         context.Context
	cancel      context.CancelFunc
	scheduler   *scheduler.Scheduler
	watcher     *watch.Watcher
	collector   *Collector
	workers     int
	paths       chan string
	records     chan models.Directive
	watcherDone chan struct{}
	workersWG   sync.WaitGroup
	done        chan struct{}
}

// New assembles a service over an already-open directive store.
func New(cfg Config, store database.DirectiveStore) (*Service, error) {
	if cfg.DocumentsDir == "" {
		return nil, fmt.Errorf("DocumentsDir is required")
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 50
	}
	flushInterval := cfg.FlushInterval
	if flushInterval <= 0 {
		flushInterval = 5 * time.Second
	}
	rescanEvery := cfg.RescanEvery
	if rescanEvery <= 0 {
		rescanEvery = 30 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())

	paths := make(chan string, 100)
	records := make(chan models.Directive, 100)

	watcher := watch.New(cfg.DocumentsDir, paths)

	// The scheduled rescan reconciles filesystem events the watcher missed;
	// its immediate first run picks up documents already present.
	sched := scheduler.New(ctx)
	sched.AddTask(watch.RescanTask{Watcher: watcher, Every: rescanEvery})

	return &Service{
		ctx:         ctx,
		cancel:      cancel,
		scheduler:   sched,
		watcher:     watcher,
		collector:   NewCollectorWithConfig(store, records, batchSize, flushInterval),
		workers:     workers,
		paths:       paths,
		records:     records,
		watcherDone: make(chan struct{}),
		done:        make(chan struct{}),
	}, nil
}

// Start launches the watcher, the extraction workers and the collector.
func (s *Service) Start() {
	slog.Info("Starting ingestion service")

	go func() {
		defer close(s.watcherDone)
		if err := s.watcher.Run(s.ctx); err != nil && s.ctx.Err() == nil {
			slog.Error("Watcher stopped", "error", err)
		}
	}()

	s.scheduler.Start()

	for i := 0; i < s.workers; i++ {
		s.workersWG.Add(1)
		go func() {
			defer s.workersWG.Done()
			for path := range s.paths {
				select {
				case <-s.ctx.Done():
					return
				case s.records <- pipeline.ExtractOne(path):
				}
			}
		}()
	}

	go func() {
		defer close(s.done)
		if err := s.collector.Start(s.ctx); err != nil && s.ctx.Err() == nil {
			slog.Error("Collector stopped", "error", err)
		}
	}()

	slog.Info("Ingestion service started", "workers", s.workers)
}

// Stop shuts the service down in dependency order so that nothing writes to
// a closed channel: producers first, then workers, then the collector, which
// flushes pending records on the way out.
func (s *Service) Stop() {
	slog.Info("Stopping ingestion service")
	s.cancel()
	s.scheduler.Stop()
	<-s.watcherDone
	close(s.paths)
	s.workersWG.Wait()
	close(s.records)
	<-s.done
	slog.Info("Ingestion service stopped")
}
