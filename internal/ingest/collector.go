package ingest

import (
	"context"
	"log/slog"
	"time"

	"adcheck/internal/database"
	"adcheck/internal/models"
)

// Collector batches extracted directive records and commits them to the
// store. Batches are flushed when full or when the flush interval has
// passed since the last commit.
type Collector struct {
	store         database.DirectiveStore
	records       <-chan models.Directive
	batchSize     int
	flushInterval time.Duration
}

// NewCollector creates a collector with default batch settings (50 records,
// 5 second flush interval).
func NewCollector(store database.DirectiveStore, records <-chan models.Directive) *Collector {
	return &Collector{
		store:         store,
		records:       records,
		batchSize:     50,
		flushInterval: 5 * time.Second,
	}
}

// NewCollectorWithConfig creates a collector with custom batch settings.
func NewCollectorWithConfig(store database.DirectiveStore, records <-chan models.Directive, batchSize int, flushInterval time.Duration) *Collector {
	return &Collector{
		store:         store,
		records:       records,
		batchSize:     batchSize,
		flushInterval: flushInterval,
	}
}

// Start consumes records and writes them to the store in batches. It blocks
// until the context is cancelled or the records channel is closed; pending
// records are flushed on the way out.
func (c *Collector) Start(ctx context.Context) error {
	batch := make([]models.Directive, 0, c.batchSize)
	lastFlush := time.Now()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := c.store.InsertBatch(batch); err != nil {
			slog.Error("Error inserting batch of directives", "batch_size", len(batch), "error", err)
		} else {
			lastFlush = time.Now()
			slog.Info("Stored batch of directives", "batch_size", len(batch))
		}
		batch = batch[:0]
	}

	ticker := time.NewTicker(c.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			flush()
			return ctx.Err()

		case <-ticker.C:
			if time.Since(lastFlush) >= c.flushInterval {
				flush()
			}

		case d, ok := <-c.records:
			if !ok {
				flush()
				return nil
			}

			batch = append(batch, d)
			slog.Debug("Added directive to batch",
				"id", d.ID,
				"source_file", d.SourceFile,
				"current_batch_size", len(batch),
				"max_batch_size", c.batchSize,
			)

			if len(batch) >= c.batchSize {
				flush()
			}
		}
	}
}
