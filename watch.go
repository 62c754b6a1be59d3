package main

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

const configDebounce = 200 * time.Millisecond

// configWatcher reloads the config file when it changes on disk and posts
// the result to the program. The directory is watched rather than the file
// because editors often replace the file on save.
type configWatcher struct {
	fs       *fsnotify.Watcher
	path     string
	debounce time.Duration
	reload   func(path string) (*Config, error)
	send     func(tea.Msg)

	mu    sync.Mutex
	timer *time.Timer
	wg    sync.WaitGroup
}

func newConfigWatcher(path string, reload func(string) (*Config, error), send func(tea.Msg)) (*configWatcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(filepath.Dir(path)); err != nil {
		fs.Close()
		return nil, err
	}
	return &configWatcher{
		fs:       fs,
		path:     filepath.Clean(path),
		debounce: configDebounce,
		reload:   reload,
		send:     send,
	}, nil
}

// Start processes events in the background until ctx is cancelled or the
// watcher is closed.
func (w *configWatcher) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

func (w *configWatcher) run(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.send(configChangedMsg{err: err})
		}
	}
}

// schedule restarts the debounce timer so a burst of writes reloads once.
func (w *configWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		cfg, err := w.reload(w.path)
		w.send(configChangedMsg{cfg: cfg, err: err})
	})
}

func (w *configWatcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	err := w.fs.Close()
	w.wg.Wait()
	return err
}
