package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by OptionsFromEnv.
const (
	EnvPrefix       = "ODILIA_"
	EnvKeymap       = EnvPrefix + "KEYMAP"
	EnvLogLevel     = EnvPrefix + "LOG_LEVEL"
	EnvWithDefaults = EnvPrefix + "KEYMAP_DEFAULTS"
	EnvStrict       = EnvPrefix + "KEYMAP_STRICT"
	EnvDebounce     = EnvPrefix + "KEYMAP_DEBOUNCE"
)

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// OptionsFromEnv applies environment overrides to base. Invalid values are
// reported together and leave the corresponding option unchanged.
// A nil lookup uses os.LookupEnv.
func OptionsFromEnv(base Options, lookup LookupFunc) (Options, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	opts := base
	var errs []error

	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		opts.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvWithDefaults); ok {
		b, err := parseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvWithDefaults, err))
		} else {
			opts.IncludeDefaults = b
		}
	}
	if v, ok := lookup(EnvStrict); ok {
		b, err := parseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvStrict, err))
		} else {
			opts.Strict = b
		}
	}
	if v, ok := lookup(EnvDebounce); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", EnvDebounce, err))
		case d < 0:
			errs = append(errs, fmt.Errorf("%s: negative duration %s", EnvDebounce, d))
		default:
			opts.Debounce = d
		}
	}

	return opts, errors.Join(errs...)
}

// PathFromEnv returns the keymap path named by ODILIA_KEYMAP, falling back
// to DefaultPath.
func PathFromEnv(lookup LookupFunc) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvKeymap); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), nil
	}
	return DefaultPath()
}

// parseBool accepts the spellings people put in environment files.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on":
		return true, nil
	case "no", "off", "":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(s))
}
