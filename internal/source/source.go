// Package source keeps the current adjacency matrix loaded from a file and
// optionally reloads it whenever the file changes on disk.
package source

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/allpaths/matrix"
	"github.com/katalvlaran/allpaths/parser"
)

// DefaultDebounce is how long Watch waits after the last file event before
// reloading. A single save usually raises several events, the first of
// which can see a truncated file.
const DefaultDebounce = 100 * time.Millisecond

// Source reads a matrix file and watches it for changes.
type Source struct {
	path     string
	debounce time.Duration
	mu       sync.RWMutex
	current  *matrix.Adjacency
	onChange []func(*matrix.Adjacency)
	onError  []func(error)
	logger   *slog.Logger
}

// New creates a Source and performs the initial load.
// A nil logger falls back to slog.Default().
func New(path string, logger *slog.Logger) (*Source, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Source{path: path, logger: logger, debounce: DefaultDebounce}
	adj, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	s.current = adj
	return s, nil
}

// Path returns the watched file path.
func (s *Source) Path() string { return s.path }

// SetDebounce overrides DefaultDebounce. It must be called before Watch;
// d <= 0 reloads on every event.
func (s *Source) SetDebounce(d time.Duration) { s.debounce = d }

// Matrix returns the current (latest successfully parsed) matrix.
func (s *Source) Matrix() *matrix.Adjacency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// OnChange registers a callback invoked after every successful reload.
func (s *Source) OnChange(fn func(*matrix.Adjacency)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// OnReloadError registers a callback invoked when a watched reload fails.
func (s *Source) OnReloadError(fn func(error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onError = append(s.onError, fn)
}

// Reload forces an immediate re-read of the file. On error the previous
// matrix stays current and no callback fires.
func (s *Source) Reload() (*matrix.Adjacency, error) {
	adj, err := parser.ParseFile(s.path)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.current = adj
	callbacks := make([]func(*matrix.Adjacency), len(s.onChange))
	copy(callbacks, s.onChange)
	s.mu.Unlock()
	for _, fn := range callbacks {
		fn(adj)
	}
	return adj, nil
}

// Watch starts a background goroutine that reloads the matrix on file changes.
// The parent directory is watched so editors that replace the file via
// rename are still seen. Call the returned stop function to clean up.
func (s *Source) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("source watcher: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("source watcher add %s: %w", dir, err)
	}
	target := filepath.Clean(s.path)

	done := make(chan struct{})
	var once sync.Once
	go func() {
		defer w.Close()
		var (
			timer *time.Timer
			fire  <-chan time.Time
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if s.debounce <= 0 {
					s.reload()
					continue
				}
				// restart the quiet period on every burst event
				if timer == nil {
					timer = time.NewTimer(s.debounce)
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(s.debounce)
				}
				fire = timer.C
			case <-fire:
				fire = nil
				s.reload()
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.logger.Warn("source watcher error", "err", err)
			case <-done:
				return
			}
		}
	}()

	return func() { once.Do(func() { close(done) }) }, nil
}

// reload runs Reload from the watcher and reports failures.
func (s *Source) reload() {
	if _, err := s.Reload(); err != nil {
		s.logger.Warn("reload skipped: keeping previous matrix", "path", s.path, "err", err)
		s.reloadFailed(err)
	}
}

func (s *Source) reloadFailed(err error) {
	s.mu.RLock()
	callbacks := make([]func(error), len(s.onError))
	copy(callbacks, s.onError)
	s.mu.RUnlock()
	for _, fn := range callbacks {
		fn(err)
	}
}
