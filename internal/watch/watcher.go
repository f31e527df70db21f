// Package watch monitors a directory with fsnotify and filters
// qualifying log files as they appear.
package watch

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"logsift/internal/filter"
	"logsift/internal/log"
	"logsift/pkg/types"
)

// settleDelay is how long a file must stay quiet after its last write
// event before it is filtered, so half-written files aren't picked up.
const settleDelay = 200 * time.Millisecond

// Watcher monitors directories for new or modified files and runs the
// filter engine over each qualifying one.
type Watcher struct {
	engine  *filter.Engine
	pattern glob.Glob

	fsWatcher *fsnotify.Watcher
	results   chan types.FilterResult
	stopChan  chan struct{}

	mutex   sync.Mutex
	pending map[string]*time.Timer
	running bool
}

// New creates a watcher that filters files with the given engine.
func New(engine *filter.Engine) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		engine:    engine,
		fsWatcher: fsWatcher,
		results:   make(chan types.FilterResult, 16),
		stopChan:  make(chan struct{}),
		pending:   map[string]*time.Timer{},
	}, nil
}

// SetPattern restricts processing to basenames matching the glob pattern.
func (w *Watcher) SetPattern(pattern string) error {
	g, err := glob.Compile(pattern)
	if err != nil {
		return err
	}
	w.pattern = g
	return nil
}

// AddDirectory adds a directory to watch.
func (w *Watcher) AddDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}

	log.WithFields(log.F("directory", dir)).Info("watching directory")
	return nil
}

// Results returns the channel delivering per-file filter outcomes.
func (w *Watcher) Results() <-chan types.FilterResult {
	return w.results
}

// Start begins processing filesystem events in a background goroutine.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.running {
		return fmt.Errorf("watcher already running")
	}
	w.running = true

	go w.loop()
	return nil
}

// Stop halts event processing and releases the fsnotify watcher.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.running {
		w.running = false
		close(w.stopChan)
	}
	w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.schedule(event.Name)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warn("watch error: %v", err)
		}
	}
}

// schedule (re)arms the settle timer for a path; the file is processed
// once no further events arrive within settleDelay.
func (w *Watcher) schedule(path string) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if timer, ok := w.pending[path]; ok {
		timer.Reset(settleDelay)
		return
	}
	w.pending[path] = time.AfterFunc(settleDelay, func() {
		w.mutex.Lock()
		delete(w.pending, path)
		w.mutex.Unlock()
		w.process(path)
	})
}

func (w *Watcher) process(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return
	}

	name := info.Name()
	if filter.IsFilteredName(name) {
		return
	}
	if w.pattern != nil && !w.pattern.Match(name) {
		return
	}

	res, err := w.engine.FilterFile(path)
	if err != nil {
		log.Error("filter failed, path: %s, reason: %v", path, err)
		res = types.FilterResult{Path: path, Error: err}
	} else {
		log.WithFields(log.F("path", path)).Info("filtered watched file")
	}

	select {
	case w.results <- res:
	default:
		// nobody draining results; drop rather than block the loop
	}
}
