// Package watch monitors catalogued locations for library changes
// using fsnotify.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/damalga/funkhunt/internal/log"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher monitors catalogued locations and reports which location
// needs a rescan after files matching the catalogue formats change.
// Watching is top-level: a change directly under a location triggers
// a rescan of that location.
type Watcher struct {
	// Reports whether a changed path is catalogue-eligible
	matches func(path string) bool

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Channel delivering locations that need a rescan
	changes chan string

	// Channel to signal stop
	stopChan chan struct{}

	// Collapses event bursts (editors, syncers) into one rescan
	debounce time.Duration

	// Lock for running state, locations list and pending timers
	mutex     sync.RWMutex
	locations []string
	pending   map[string]*time.Timer
	running   bool
}

// New creates a watcher. matches decides which file events are
// relevant; everything else is ignored.
func New(matches func(string) bool) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	return &Watcher{
		matches:   matches,
		fsWatcher: fsWatcher,
		changes:   make(chan string, 8),
		stopChan:  make(chan struct{}),
		debounce:  defaultDebounce,
		pending:   make(map[string]*time.Timer),
	}, nil
}

// AddLocation registers a catalogued location for watching
func (w *Watcher) AddLocation(dir string) error {
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

	w.mutex.Lock()
	found := false
	for _, existing := range w.locations {
		if existing == dir {
			found = true
			break
		}
	}
	if !found {
		w.locations = append(w.locations, dir)
	}
	w.mutex.Unlock()

	log.LogWithFields(log.F("location", dir)).Info("Watching location")
	return nil
}

// Locations returns the locations currently being watched
func (w *Watcher) Locations() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	out := make([]string, len(w.locations))
	copy(out, w.locations)
	return out
}

// Changes delivers locations that need a rescan
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Start begins processing filesystem events
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mutex.Unlock()

	go w.loop()
	log.Info("Watcher started")
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.scheduleRescan(filepath.Dir(event.Name))

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	change := event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename)
	return change && w.matches(event.Name)
}

// scheduleRescan arms (or re-arms) the debounce timer for a location
func (w *Watcher) scheduleRescan(location string) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if t, ok := w.pending[location]; ok {
		t.Reset(w.debounce)
		return
	}
	w.pending[location] = time.AfterFunc(w.debounce, func() {
		w.mutex.Lock()
		delete(w.pending, location)
		stopped := !w.running
		w.mutex.Unlock()
		if stopped {
			return
		}
		// Non-blocking send so a slow consumer cannot stall the timer
		// goroutine; a dropped rescan only delays the next one.
		select {
		case w.changes <- location:
		default:
			log.LogWithFields(log.F("location", location)).Warn("Change channel is full, dropped rescan")
		}
	})
}

// Stop halts event processing. Idempotent. The changes channel is left
// open; consumers simply stop receiving.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}
	w.running = false

	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	for location, t := range w.pending {
		t.Stop()
		delete(w.pending, location)
	}
	log.Info("Watcher stopped")
}
