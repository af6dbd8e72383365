package vimconfig

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/loamwood/vimengine/internal/vimlog"
)

// Watcher reloads a vimengine config file on change and pushes the
// result into a Settings and LiveKeyMapTable, so a running InputEngine
// picks up edits without restarting.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	settings  *Settings
	table     *LiveKeyMapTable
	reloaded  chan struct{}
	done      chan struct{}
}

// WatcherConfig configures New.
type WatcherConfig struct {
	Path        string
	DebounceDur time.Duration
	Settings    *Settings
	Table       *LiveKeyMapTable
}

// DefaultWatcherConfig fills in a sensible debounce duration.
func DefaultWatcherConfig(path string, settings *Settings, table *LiveKeyMapTable) WatcherConfig {
	return WatcherConfig{
		Path:        path,
		DebounceDur: 100 * time.Millisecond,
		Settings:    settings,
		Table:       table,
	}
}

// New creates a config-file watcher. It does not start watching yet;
// call Start.
func New(cfg WatcherConfig) (*Watcher, error) {
	vimlog.Debug(vimlog.CatConfig, "creating config watcher", "path", cfg.Path, "debounce", cfg.DebounceDur)
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		vimlog.ErrorErr(vimlog.CatConfig, "failed to create fsnotify watcher", err)
		return nil, fmt.Errorf("vimconfig: creating fsnotify watcher: %w", err)
	}
	return &Watcher{
		fsWatcher: fsw,
		path:      cfg.Path,
		debounce:  cfg.DebounceDur,
		settings:  cfg.Settings,
		table:     cfg.Table,
		reloaded:  make(chan struct{}, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching the config file's directory and returns a
// channel that fires (non-blocking, drop-if-full) after each successful
// reload.
func (w *Watcher) Start() (<-chan struct{}, error) {
	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		vimlog.ErrorErr(vimlog.CatConfig, "failed to watch directory", err, "dir", dir)
		return nil, fmt.Errorf("vimconfig: watching directory %s: %w", dir, err)
	}
	vimlog.Info(vimlog.CatConfig, "started watching config", "dir", dir)
	go w.loop()
	return w.reloaded, nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	vimlog.Debug(vimlog.CatConfig, "stopping config watcher")
	close(w.done)
	return w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending bool
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isRelevantEvent(event) {
				continue
			}
			vimlog.Debug(vimlog.CatConfig, "config file event", "file", event.Name, "op", event.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			pending = true

		case <-w.timerChan(timer):
			if pending {
				w.reload()
				pending = false
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			vimlog.ErrorErr(vimlog.CatConfig, "config watcher error", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (w *Watcher) timerChan(timer *time.Timer) <-chan time.Time {
	if timer != nil {
		return timer.C
	}
	return nil
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		vimlog.ErrorErr(vimlog.CatConfig, "reload failed, keeping previous config", err, "path", w.path)
		return
	}
	table, err := BuildKeyMapTable(cfg)
	if err != nil {
		vimlog.ErrorErr(vimlog.CatConfig, "reload produced an invalid map table, keeping previous", err, "path", w.path)
		return
	}
	w.settings.store(cfg)
	w.table.Swap(table)
	vimlog.Info(vimlog.CatConfig, "config reloaded", "path", w.path, "mappings", len(cfg.Mappings))

	select {
	case w.reloaded <- struct{}{}:
	default:
	}
}

func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	return filepath.Base(event.Name) == filepath.Base(w.path)
}
