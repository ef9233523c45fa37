package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// ErrTrailingData is returned when a JSON file holds more than one value.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// JSONLoader loads keymap files written in JSON.
type JSONLoader struct {
	opts options
}

// NewJSONLoader creates a new JSON loader.
func NewJSONLoader(opts ...Option) *JSONLoader {
	return &JSONLoader{opts: buildOptions(opts)}
}

// Format returns "json".
func (l *JSONLoader) Format() string { return "json" }

// LoadFrom reads configuration from a specific path.
func (l *JSONLoader) LoadFrom(path string) (*File, error) {
	data, err := readFile(l.opts.fs, path)
	if err != nil {
		return nil, err
	}
	return l.Decode(path, data)
}

// Decode parses JSON data. An empty document decodes to an empty File.
func (l *JSONLoader) Decode(source string, data []byte) (*File, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if l.opts.strict {
		dec.DisallowUnknownFields()
	}

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}

		var se *json.SyntaxError
		var te *json.UnmarshalTypeError
		switch {
		case errors.As(err, &se):
			pe.Line, pe.Column = position(data, se.Offset)
		case errors.As(err, &te):
			pe.Line, pe.Column = position(data, te.Offset)
		}
		return nil, pe
	}

	end := dec.InputOffset()
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		rest := data[end:]
		start := end + int64(len(rest)-len(bytes.TrimLeft(rest, " \t\r\n")))
		pe := &ParseError{Path: source, Message: ErrTrailingData.Error(), Err: ErrTrailingData}
		pe.Line, pe.Column = position(data, start)
		return nil, pe
	}
	return &f, nil
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	if offset < 0 || offset > int64(len(data)) {
		return 0, 0
	}
	prefix := data[:offset]
	line = bytes.Count(prefix, []byte{'\n'}) + 1
	col = len(prefix) - bytes.LastIndexByte(prefix, '\n')
	return line, col
}
