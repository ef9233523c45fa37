package loader

import (
	"bytes"
	"errors"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader loads keymap files written in TOML.
type TOMLLoader struct {
	opts options
}

// NewTOMLLoader creates a new TOML loader.
func NewTOMLLoader(opts ...Option) *TOMLLoader {
	return &TOMLLoader{opts: buildOptions(opts)}
}

// Format returns "toml".
func (l *TOMLLoader) Format() string { return "toml" }

// LoadFrom reads configuration from a specific path.
func (l *TOMLLoader) LoadFrom(path string) (*File, error) {
	data, err := readFile(l.opts.fs, path)
	if err != nil {
		return nil, err
	}
	return l.Decode(path, data)
}

// Decode parses TOML data.
func (l *TOMLLoader) Decode(source string, data []byte) (*File, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	if l.opts.strict {
		dec.DisallowUnknownFields()
	}

	var f File
	if err := dec.Decode(&f); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}

		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		var se *toml.StrictMissingError
		if errors.As(err, &se) && len(se.Errors) > 0 {
			first := &se.Errors[0]
			pe.Line, pe.Column = first.Position()
			pe.Message = "unknown field " + strings.Join(first.Key(), ".")
		}
		return nil, pe
	}
	return &f, nil
}
