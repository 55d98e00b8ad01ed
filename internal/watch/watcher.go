// Package watch emits document paths as they appear in a watched directory.
// Filesystem events give low latency; a periodic rescan (run through the
// scheduler) reconciles events lost while the watcher was busy or down.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports new or changed documents under one directory.
type Watcher struct {
	dir   string
	paths chan<- string

	mu   sync.Mutex
	seen map[string]time.Time // path -> mod time last emitted
}

// New creates a watcher that sends document paths to the given channel.
func New(dir string, paths chan<- string) *Watcher {
	return &Watcher{
		dir:   dir,
		paths: paths,
		seen:  make(map[string]time.Time),
	}
}

func isDocument(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".pdf" || ext == ".txt"
}

// emit sends the path if its mod time is newer than the last emission.
func (w *Watcher) emit(ctx context.Context, path string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return
	}

	w.mu.Lock()
	last, ok := w.seen[path]
	if ok && !info.ModTime().After(last) {
		w.mu.Unlock()
		return
	}
	w.seen[path] = info.ModTime()
	w.mu.Unlock()

	select {
	case <-ctx.Done():
	case w.paths <- path:
		slog.Debug("Queued document", "path", path)
	}
}

// Run watches the directory for filesystem events until the context is
// cancelled. It does not close the paths channel; the caller owns it.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create filesystem watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	slog.Info("Watching for documents", "dir", w.dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				if isDocument(event.Name) {
					w.emit(ctx, event.Name)
				}
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Filesystem watcher error", "error", err)
		}
	}
}

// Rescan walks the directory once and emits documents the event stream
// missed. It satisfies scheduler.Task via RescanTask.
func (w *Watcher) Rescan(ctx context.Context) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("failed to rescan %s: %w", w.dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(w.dir, e.Name())
		if isDocument(path) {
			w.emit(ctx, path)
		}
	}
	return nil
}

// RescanTask adapts Watcher.Rescan to the scheduler.
type RescanTask struct {
	Watcher *Watcher
	Every   time.Duration
}

func (t RescanTask) Run(ctx context.Context) error {
	return t.Watcher.Rescan(ctx)
}

func (t RescanTask) Interval() time.Duration {
	return t.Every
}

func (t RescanTask) Name() string {
	return "document-rescan"
}
