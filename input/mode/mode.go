package mode

import (
	"errors"
	"fmt"
)

// ScreenReaderMode identifies one of the screen reader's interaction modes.
type ScreenReaderMode uint8

const (
	// ModeNone is the zero value and is not a valid mode.
	ModeNone ScreenReaderMode = iota

	// BrowseMode reads the document with a virtual cursor.
	BrowseMode

	// FocusMode passes keys through to the focused control.
	FocusMode

	// ObjectNavigationMode moves between accessible objects.
	ObjectNavigationMode

	// CommandMode is entered via the dedicated Odilia modifier key.
	CommandMode
)

// ModeFromStrError enumerates the ways Parse can fail.
type ModeFromStrError uint8

const (
	// ModeNameNotFound is returned when a name matches no known mode.
	ModeNameNotFound ModeFromStrError = iota + 1
)

func (e ModeFromStrError) Error() string {
	switch e {
	case ModeNameNotFound:
		return "mode name not found"
	default:
		return fmt.Sprintf("mode error %d", uint8(e))
	}
}

var modeNames = [...]string{
	ModeNone:             "None",
	BrowseMode:           "BrowseMode",
	FocusMode:            "FocusMode",
	ObjectNavigationMode: "ObjectNavigationMode",
	CommandMode:          "CommandMode",
}

// String returns the canonical mode name, e.g. "BrowseMode".
func (m ScreenReaderMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("ScreenReaderMode(%d)", m)
}

// IsValid reports whether m is one of the defined modes.
func (m ScreenReaderMode) IsValid() bool {
	return m >= BrowseMode && m <= CommandMode
}

// All returns every valid mode in declaration order.
func All() []ScreenReaderMode {
	return []ScreenReaderMode{BrowseMode, FocusMode, ObjectNavigationMode, CommandMode}
}

// Parse returns the mode with the given name.
// Matching is exact and case-sensitive.
func Parse(name string) (ScreenReaderMode, error) {
	for _, m := range All() {
		if modeNames[m] == name {
			return m, nil
		}
	}
	return ModeNone, fmt.Errorf("%w: %q", ModeNameNotFound, name)
}

// MustParse parses a mode name and panics on error.
func MustParse(name string) ScreenReaderMode {
	m, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return m
}

// MarshalText implements encoding.TextMarshaler.
func (m ScreenReaderMode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("marshal %s: %w", m, ModeNameNotFound)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ScreenReaderMode) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// IsNotFound reports whether err was caused by an unknown mode name.
func IsNotFound(err error) bool {
	return errors.Is(err, ModeNameNotFound)
}
