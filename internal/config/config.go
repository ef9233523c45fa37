package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/odilia-app/odilia-common/event"
	"github.com/odilia-app/odilia-common/input/key"
	"github.com/odilia-app/odilia-common/input/mode"
	"github.com/odilia-app/odilia-common/internal/config/loader"
	"github.com/odilia-app/odilia-common/internal/input/keymap"
	"github.com/odilia-app/odilia-common/internal/log"
)

// ErrFileNotFound indicates the configuration file doesn't exist.
var ErrFileNotFound = errors.New("config file not found")

// DefaultFileName is the keymap file looked up in the user config directory.
const DefaultFileName = "keymap.toml"

// Options configures loading.
type Options struct {
	// LogLevel is the level name for loggers created from these options.
	LogLevel string

	// IncludeDefaults merges the built-in keymap under the loaded one.
	IncludeDefaults bool

	// Strict rejects unknown fields in the file.
	Strict bool

	// Debounce is how long the Watcher waits for writes to settle.
	Debounce time.Duration

	// FS is the file system files are read from. Nil means the OS.
	FS loader.FileSystem

	// Logger receives load diagnostics. Nil means log.NullLogger.
	Logger *log.Logger
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		LogLevel: "info",
		Debounce: 100 * time.Millisecond,
	}
}

// Loader loads keymap files into keymaps.
type Loader struct {
	opts   Options
	logger *log.Logger
}

// NewLoader creates a loader with the given options.
func NewLoader(opts Options) *Loader {
	logger := opts.Logger
	if logger == nil {
		logger = log.NullLogger
	}
	return &Loader{opts: opts, logger: logger.WithComponent("config")}
}

// Load reads the keymap file at path.
//
// I/O and syntax errors are returned as err. Declarations that fail to
// parse or collide with an earlier one do not abort the load: they are
// recorded in the report and the remaining declarations are built into the
// keymap.
func (l *Loader) Load(path string) (*keymap.Keymap, *Report, error) {
	fl, err := loader.LoaderFor(path, loader.WithFS(l.opts.FS), loader.WithStrict(l.opts.Strict))
	if err != nil {
		return nil, nil, err
	}

	f, err := fl.LoadFrom(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		l.logger.WithError(err).Error("loading keymap")
		return nil, nil, err
	}

	km, report := Build(f, path)
	if l.opts.IncludeDefaults {
		km = WithDefaults(km)
	}

	entry := l.logger.WithField("path", path).WithField("bindings", km.Len())
	if report.OK() {
		entry.Debug("loaded keymap")
	} else {
		entry.WithField("issues", report.Len()).Warn("loaded keymap with invalid bindings")
		for _, issue := range report.Issues {
			l.logger.WithField("path", path).Debug("%s", issue.Error())
		}
	}
	return km, report, nil
}

// Load reads the keymap file at path with DefaultOptions.
func Load(path string) (*keymap.Keymap, *Report, error) {
	return NewLoader(DefaultOptions()).Load(path)
}

// Build validates the declarations of f and builds the valid ones into a
// keymap named after source. Declarations without a mode are placed in
// CommandMode.
func Build(f *loader.File, source string) (*keymap.Keymap, *Report) {
	report := &Report{Source: source}
	b := keymap.NewBuilder(filepath.Base(source)).WithSource(source)

	for i, spec := range f.Bindings {
		binding, ok := parseBinding(report, i, spec)
		ev, err := event.ParseEvent(spec.Action)
		if err != nil {
			report.add(i, spec.Keys, FieldAction, err)
			ok = false
		}
		if !ok {
			continue
		}

		err = b.Add(keymap.Entry{
			Binding:     binding,
			Event:       ev,
			Description: spec.Description,
			Category:    spec.Category,
		})
		if err != nil {
			report.add(i, spec.Keys, FieldKeys, err)
		}
	}

	return b.Build(), report
}

// parseBinding parses the keys and mode of spec, recording every failure.
func parseBinding(report *Report, index int, spec loader.BindingSpec) (key.KeyBinding, bool) {
	modeName := spec.Mode
	if modeName == "" {
		modeName = mode.CommandMode.String()
	}

	ok := true
	m, err := mode.Parse(modeName)
	if err != nil {
		report.add(index, spec.Keys, FieldMode, &key.ParseError{
			Kind:  key.InvalidMode,
			Input: spec.Keys,
			Token: modeName,
			Err:   err,
		})
		ok = false
	}

	binding, err := key.Parse(spec.Keys)
	if err != nil {
		report.add(index, spec.Keys, FieldKeys, err)
		ok = false
	}
	binding.Mode = m
	return binding, ok
}

// WithDefaults returns km layered over the built-in keymap. Entries of km
// win where both bind the same key.
func WithDefaults(km *keymap.Keymap) *keymap.Keymap {
	return keymap.Merge(keymap.Default(), km)
}

// DefaultPath returns the keymap file in the user config directory,
// e.g. ~/.config/odilia/keymap.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "odilia", DefaultFileName), nil
}
