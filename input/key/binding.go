package key

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/odilia-app/odilia-common/input/mode"
)

// KeyBinding is a parsed key binding. Two bindings with the same key,
// modifiers, repeat count and mode are equal and may be used as map keys.
type KeyBinding struct {
	// Key is the triggering character. Case is significant.
	Key rune

	// Mods are the modifiers that must be held.
	Mods Modifiers

	// Repeat is the number of consecutive presses required, 1-255.
	Repeat uint8

	// Mode is the mode the binding is active in.
	Mode mode.ScreenReaderMode
}

// String returns the canonical specification for b, e.g. "Odilia+Shift+h:2".
// The repeat count is omitted when it is 1.
func (b KeyBinding) String() string {
	var sb strings.Builder
	for _, name := range b.Mods.Names() {
		sb.WriteString(name)
		sb.WriteByte('+')
	}
	sb.WriteRune(b.Key)
	if b.Repeat != 1 {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(int(b.Repeat)))
	}
	return sb.String()
}

// Validate reports whether b could have been produced by the parser.
func (b KeyBinding) Validate() error {
	switch {
	case b.Key == 0:
		return fmt.Errorf("%w: zero key", NoKey)
	case b.Key == '+' || b.Key == ':' || unicode.IsSpace(b.Key):
		return fmt.Errorf("%w: %q cannot be written in a binding", InvalidKey, b.Key)
	case b.Repeat == 0:
		return fmt.Errorf("%w: zero repeat", InvalidRepeat)
	case b.Mods&^(Control|Alt|Shift|Meta|Odilia|Applications) != 0:
		return fmt.Errorf("%w: unknown bits %#x", InvalidModifier, uint16(b.Mods))
	case !b.Mode.IsValid():
		return fmt.Errorf("%w: %s", InvalidMode, b.Mode)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
// The mode is not part of the text.
func (b KeyBinding) MarshalText() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The decoded binding
// is in CommandMode, as with Parse.
func (b *KeyBinding) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
