package config

import (
	"context"
	"path/filepath"

	"github.com/odilia-app/odilia-common/internal/config/watcher"
	"github.com/odilia-app/odilia-common/internal/input/keymap"
	"github.com/odilia-app/odilia-common/internal/log"
)

// ReloadFunc receives the result of each reload. On error km and report
// are nil.
type ReloadFunc func(km *keymap.Keymap, report *Report, err error)

// Watcher reloads a keymap file whenever it changes on disk.
type Watcher struct {
	path     string
	loader   *Loader
	fw       *watcher.Watcher
	onReload ReloadFunc
	logger   *log.Logger
}

// NewWatcher watches the keymap file at path and calls onReload after each
// change settles. The file is not loaded until it first changes; call
// Loader.Load for the initial keymap.
func NewWatcher(path string, opts Options, onReload ReloadFunc) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.NullLogger
	}
	logger = logger.WithComponent("watcher").WithField("path", abs)

	fw, err := watcher.New(
		watcher.WithDebounce(opts.Debounce),
		watcher.WithErrorHandler(func(err error) {
			logger.WithError(err).Warn("file watcher error")
		}),
	)
	if err != nil {
		return nil, err
	}
	if err := fw.Watch(abs); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		loader:   NewLoader(opts),
		fw:       fw,
		onReload: onReload,
		logger:   logger,
	}
	fw.OnChange(w.handle)
	return w, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string { return w.path }

func (w *Watcher) handle(ev watcher.Event) {
	w.logger.WithField("op", ev.Op.String()).Debug("keymap file changed")
	km, report, err := w.loader.Load(w.path)
	if w.onReload != nil {
		w.onReload(km, report, err)
	}
}

// Run blocks, reloading on change, until ctx is done or Close is called.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info("watching keymap")
	return w.fw.Run(ctx)
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fw.Close()
}
