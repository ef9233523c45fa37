package loader

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAMLLoader loads keymap files written in YAML.
type YAMLLoader struct {
	opts options
}

// NewYAMLLoader creates a new YAML loader.
func NewYAMLLoader(opts ...Option) *YAMLLoader {
	return &YAMLLoader{opts: buildOptions(opts)}
}

// Format returns "yaml".
func (l *YAMLLoader) Format() string { return "yaml" }

// LoadFrom reads configuration from a specific path.
func (l *YAMLLoader) LoadFrom(path string) (*File, error) {
	data, err := readFile(l.opts.fs, path)
	if err != nil {
		return nil, err
	}
	return l.Decode(path, data)
}

// yamlLine extracts the line number yaml.v3 embeds in its messages.
var yamlLine = regexp.MustCompile(`line (\d+)`)

// Decode parses YAML data. An empty document decodes to an empty File.
func (l *YAMLLoader) Decode(source string, data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(l.opts.strict)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}

		msg := err.Error()
		var te *yaml.TypeError
		if errors.As(err, &te) && len(te.Errors) > 0 {
			msg = te.Errors[0]
		}
		if m := yamlLine.FindStringSubmatch(msg); m != nil {
			pe.Line, _ = strconv.Atoi(m[1])
		}
		return nil, pe
	}
	return &f, nil
}
