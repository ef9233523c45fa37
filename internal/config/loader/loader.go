// Package loader reads keymap files for the screen reader.
//
// A keymap file lists bindings in TOML, YAML or JSON. Every format decodes
// into the same File value; validating the bindings is left to the config
// package.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Errors returned by the loaders.
var (
	// ErrUnsupportedFormat is returned when a file extension has no loader.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrIsDirectory is returned when the config path names a directory.
	ErrIsDirectory = errors.New("config path is a directory")
)

// File is the decoded content of a keymap file.
type File struct {
	// Bindings are the binding declarations in file order.
	Bindings []BindingSpec `toml:"bindings" yaml:"bindings" json:"bindings"`
}

// BindingSpec is one undecoded binding declaration.
type BindingSpec struct {
	// Keys is the key binding, e.g. "Odilia+h".
	Keys string `toml:"keys" yaml:"keys" json:"keys"`

	// Action is the event text, e.g. "Next(Heading)".
	Action string `toml:"action" yaml:"action" json:"action"`

	// Mode is the mode name; empty means CommandMode.
	Mode string `toml:"mode,omitempty" yaml:"mode,omitempty" json:"mode,omitempty"`

	// Description is optional help text.
	Description string `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`

	// Category optionally groups bindings in help listings.
	Category string `toml:"category,omitempty" yaml:"category,omitempty" json:"category,omitempty"`
}

// FormatLoader decodes keymap files of one format.
type FormatLoader interface {
	// Format returns the format name, e.g. "toml".
	Format() string

	// LoadFrom reads and decodes the file at path.
	LoadFrom(path string) (*File, error)

	// Decode decodes data. Source names the data in errors.
	Decode(source string, data []byte) (*File, error)
}

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// Option configures a loader.
type Option func(*options)

type options struct {
	fs     FileSystem
	strict bool
}

func buildOptions(opts []Option) options {
	o := options{fs: DefaultFS()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFS sets the file system the loader reads from.
func WithFS(fsys FileSystem) Option {
	return func(o *options) {
		if fsys != nil {
			o.fs = fsys
		}
	}
}

// WithStrict makes unknown fields a parse error.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// Extensions returns the file extensions LoaderFor recognises.
func Extensions() []string {
	return []string{".toml", ".yaml", ".yml", ".json"}
}

// LoaderFor returns the loader for path based on its extension.
func LoaderFor(path string, opts ...Option) (FormatLoader, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return NewTOMLLoader(opts...), nil
	case ".yaml", ".yml":
		return NewYAMLLoader(opts...), nil
	case ".json":
		return NewJSONLoader(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnsupportedFormat, ext, strings.Join(Extensions(), ", "))
	}
}

// readFile reads path through fsys, wrapping errors with the path.
// Directories are rejected with ErrIsDirectory before reading.
func readFile(fsys FileSystem, path string) ([]byte, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("reading config file %s: %w", path, ErrIsDirectory)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return data, nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
