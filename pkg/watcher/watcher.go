// Package watcher organizes imports whenever a source file below a directory
// is saved, the way an editor save hook would.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/siyuan-infoblox/order-imports/pkg/config"
	"github.com/siyuan-infoblox/order-imports/pkg/errors"
	"github.com/siyuan-infoblox/order-imports/pkg/formatter"
	"github.com/siyuan-infoblox/order-imports/pkg/guard"
	"github.com/siyuan-infoblox/order-imports/pkg/utils"
)

type Config struct {
	Root      string
	Exclude   []string
	Formatter *formatter.Formatter
	Resolver  *config.Resolver // purged when a local config file changes
	Guard     *guard.Guard
	Logger    *slog.Logger
	// Debounce is how long a file must stay quiet before it is organized
	Debounce time.Duration
	// OnOrganized is called after a file was rewritten
	OnOrganized func(path string)
}

// Watcher reacts to file system events below Root
type Watcher struct {
	config  Config
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending map[string]*time.Timer
}

const DefaultDebounce = 50 * time.Millisecond

// New creates a Watcher and registers every source directory below cfg.Root
func New(cfg Config) (*Watcher, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Guard == nil {
		cfg.Guard = guard.New(config.DefaultCooldown)
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.New(formatter.FormatterConfig{Resolver: cfg.Resolver, Logger: cfg.Logger})
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToCreateWatcher, err)
	}
	w := &Watcher{config: cfg, watcher: fw, pending: make(map[string]*time.Timer)}

	if err := w.addTree(cfg.Root); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) addTree(dir string) error {
	dirs, err := utils.FindSourceDirsIn(w.config.Root, dir, w.config.Exclude)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToWatchDirectory, err)
	}
	for _, dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("%s %s: %w", errors.ErrMsgFailedToWatchDirectory, dir, err)
		}
		w.config.Logger.Debug("watching directory", "path", dir)
	}
	return nil
}

// Run handles events until ctx is done
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	defer w.stopPending()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.config.Logger.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
			w.config.Guard.Forget(ev.Name)
		}
		return
	}

	info, err := os.Stat(ev.Name)
	if err != nil {
		return
	}
	rel, err := filepath.Rel(w.config.Root, ev.Name)
	if err != nil {
		rel = ev.Name
	}

	switch {
	case info.IsDir():
		if ev.Has(fsnotify.Create) && !utils.IsExcluded(rel, w.config.Exclude) {
			if err := w.addTree(ev.Name); err != nil {
				w.config.Logger.Warn("failed to watch new directory", "path", ev.Name, "error", err)
			}
		}
	case config.IsLocalFile(filepath.Base(ev.Name)):
		if w.config.Resolver != nil {
			w.config.Resolver.Purge()
			w.config.Logger.Info("local config changed", "path", ev.Name)
		}
	case utils.IsSourceFile(ev.Name) && !utils.IsExcluded(rel, w.config.Exclude):
		w.schedule(ev.Name)
	}
}

// schedule organizes path once it has not changed for the debounce period.
// Editors often save in several writes.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[path]; ok {
		t.Reset(w.config.Debounce)
		return
	}
	w.pending[path] = time.AfterFunc(w.config.Debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		if err := w.organize(path); err != nil {
			w.config.Logger.Error("failed to organize imports", "path", path, "error", err)
		}
	})
}

func (w *Watcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.pending {
		t.Stop()
		delete(w.pending, path)
	}
}

// organize rewrites path unless the guard says it is already being handled
// or holds content this watcher wrote
func (w *Watcher) organize(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}
	if !w.config.Guard.Acquire(path, src) {
		w.config.Logger.Debug("skipping guarded file", "path", path)
		return nil
	}

	var written []byte
	defer func() { w.config.Guard.Release(path, written) }()

	out, _, err := w.config.Formatter.Organize(path, src)
	if err != nil {
		return err
	}
	if string(out) == string(src) {
		return nil
	}
	if err := formatter.WriteFile(path, out); err != nil {
		return err
	}
	written = out

	w.config.Logger.Info("organized imports", "path", path)
	if w.config.OnOrganized != nil {
		w.config.OnOrganized(path)
	}
	return nil
}
