package prompt

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// Store serves the current system prompt. A Store without a path always
// serves DefaultSystemPrompt; a file-backed Store serves the file contents
// and can follow changes with Watch.
type Store struct {
	path   string
	logger *slog.Logger

	current atomic.Pointer[string]
	loads   atomic.Int64

	mu      sync.Mutex
	watcher *watcher
}

// NewStore creates a Store. An empty path selects the built-in default
// prompt. A non-empty path must name a readable, non-empty file.
func NewStore(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		path:   path,
		logger: logger,
	}

	if path == "" {
		p := DefaultSystemPrompt
		s.current.Store(&p)
		return s, nil
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}

	return s, nil
}

// Path returns the backing file path, or "" for the built-in prompt.
func (s *Store) Path() string {
	return s.path
}

// SystemPrompt returns a snapshot of the current system prompt.
func (s *Store) SystemPrompt() string {
	if p := s.current.Load(); p != nil {
		return *p
	}
	return DefaultSystemPrompt
}

// Loaded reports whether a prompt is available.
func (s *Store) Loaded() bool {
	p := s.current.Load()
	return p != nil && *p != ""
}

// Loads returns how many times the prompt file has been read successfully.
func (s *Store) Loads() int64 {
	return s.loads.Load()
}

// Reload re-reads the prompt file. On failure the previous prompt stays in
// place.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read system prompt: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return fmt.Errorf("system prompt file %q is empty", s.path)
	}

	s.current.Store(&text)
	s.loads.Add(1)

	s.logger.Debug("system prompt loaded",
		"path", s.path,
		"bytes", len(text),
	)

	return nil
}

// Close stops any running watch.
func (s *Store) Close() error {
	s.mu.Lock()
	w := s.watcher
	s.watcher = nil
	s.mu.Unlock()

	if w == nil {
		return nil
	}
	return w.stop()
}
