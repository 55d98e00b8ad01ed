// Package pipeline runs extraction across many documents. Extraction is
// pure per document, so documents are processed concurrently by a bounded
// worker pool with results written back by index; output order always
// matches input order.
package pipeline

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"adcheck/internal/extract"
	"adcheck/internal/models"
	"adcheck/internal/reader"
)

// DiscoverDocuments lists the .pdf and .txt documents in dir, sorted by
// name.
func DiscoverDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".pdf" || ext == ".txt" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// ExtractOne reads one document and assembles its directive record. A
// document that cannot be read or yields no text degrades to a retained
// UNKNOWN record; the error never propagates.
func ExtractOne(path string) models.Directive {
	filename := filepath.Base(path)
	text, err := reader.DocumentText(path)
	if err != nil {
		slog.Warn("Document unreadable, retaining degraded record", "path", path, "error", err)
		return extract.Degraded(filename, err.Error())
	}
	return extract.Assemble(text, filename)
}

// ExtractAll extracts directive records from all paths using up to workers
// concurrent extractions. Results are returned in input order; one record
// per path, always, even for unreadable documents.
func ExtractAll(ctx context.Context, paths []string, workers int) []models.Directive {
	if workers < 1 {
		workers = 1
	}

	results := make([]models.Directive, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = ExtractOne(paths[i])
			}
		}()
	}

	for i := range paths {
		select {
		case <-ctx.Done():
			// Paths not handed out degrade to cancelled records so the
			// one-record-per-path shape still holds.
			for j := i; j < len(paths); j++ {
				results[j] = extract.Degraded(filepath.Base(paths[j]), "extraction cancelled")
			}
			close(jobs)
			wg.Wait()
			return results
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return results
}
