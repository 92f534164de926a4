package prompt

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceInterval is the quiet period after the last file event
// before the prompt is re-read.
const DefaultDebounceInterval = 100 * time.Millisecond

// ErrNoPromptFile is returned by Watch on a Store without a backing file.
var ErrNoPromptFile = errors.New("prompt store has no backing file")

type watcher struct {
	debounce *debouncer
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// Watch follows the prompt file until ctx is cancelled or Close is called.
// The parent directory is watched so that editors which replace the file
// by rename are still picked up.
func (s *Store) Watch(ctx context.Context) error {
	return s.WatchWithInterval(ctx, DefaultDebounceInterval)
}

// WatchWithInterval is Watch with an explicit debounce interval.
func (s *Store) WatchWithInterval(ctx context.Context, interval time.Duration) error {
	if s.path == "" {
		return ErrNoPromptFile
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &watcher{
		debounce: newDebouncer(interval),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}

	s.mu.Lock()
	if s.watcher != nil {
		s.mu.Unlock()
		_ = fsw.Close()
		return fmt.Errorf("watcher already running")
	}
	s.watcher = w
	s.mu.Unlock()

	defer func() {
		w.debounce.stop()
		_ = fsw.Close()

		s.mu.Lock()
		if s.watcher == w {
			s.watcher = nil
		}
		s.mu.Unlock()

		close(w.doneCh)
	}()

	dir := filepath.Dir(s.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", dir, err)
	}

	s.logger.Info("prompt watcher started",
		"path", s.path,
		"debounce_ms", interval.Milliseconds(),
	)

	target := filepath.Clean(s.path)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("prompt watcher stopped (context cancelled)")
			return nil

		case <-w.stopCh:
			s.logger.Info("prompt watcher stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != target || event.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}

			s.logger.Debug("prompt file event", "path", event.Name, "op", event.Op.String())

			w.debounce.trigger(func() {
				if err := s.Reload(); err != nil {
					s.logger.Error("system prompt reload failed", "path", s.path, "error", err)
					return
				}
				s.logger.Info("system prompt reloaded", "path", s.path)
			})

		case err, ok := <-fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			s.logger.Error("prompt watcher error", "error", err)
		}
	}
}

func (w *watcher) stop() error {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
	<-w.doneCh
	return nil
}

// debouncer collapses bursts of events into a single callback fired after
// a quiet period.
type debouncer struct {
	interval time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	stopped  bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, callback)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
