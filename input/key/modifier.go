package key

import "strings"

// Modifiers is a set of modifier keys held while a key is pressed.
type Modifiers uint16

const (
	// ModNone indicates no modifiers.
	ModNone Modifiers = 0

	// Odilia is the screen reader key, usually CapsLock, Insert or KP-Insert.
	Odilia Modifiers = 1 << 0

	ControlL Modifiers = 1 << 1
	ControlR Modifiers = 1 << 2

	AltL Modifiers = 1 << 3
	AltR Modifiers = 1 << 4

	ShiftL Modifiers = 1 << 5
	ShiftR Modifiers = 1 << 6

	MetaL Modifiers = 1 << 7
	MetaR Modifiers = 1 << 8

	// Applications is the context-menu key.
	Applications Modifiers = 1 << 9
)

// Combined masks match either side of a family. They are not bits of
// their own.
const (
	Control = ControlL | ControlR
	Alt     = AltL | AltR
	Shift   = ShiftL | ShiftR
	Meta    = MetaL | MetaR

	leftMask  = ControlL | AltL | ShiftL | MetaL
	rightMask = ControlR | AltR | ShiftR | MetaR
)

// Intersects returns true if m and other share at least one bit.
func (m Modifiers) Intersects(other Modifiers) bool {
	return m&other != 0
}

// Contains returns true if every bit of other is set in m.
func (m Modifiers) Contains(other Modifiers) bool {
	return m&other == other
}

// Control returns true if either Control key is held.
func (m Modifiers) Control() bool {
	return m.Intersects(Control)
}

// Alt returns true if either Alt key is held.
func (m Modifiers) Alt() bool {
	return m.Intersects(Alt)
}

// Shift returns true if either Shift key is held.
func (m Modifiers) Shift() bool {
	return m.Intersects(Shift)
}

// Meta returns true if either Meta key is held.
func (m Modifiers) Meta() bool {
	return m.Intersects(Meta)
}

// Odilia returns true if the screen reader key is held.
func (m Modifiers) Odilia() bool {
	return m.Intersects(Odilia)
}

// Applications returns true if the Applications key is held.
func (m Modifiers) Applications() bool {
	return m.Intersects(Applications)
}

// Left returns true if the left key of any family is held.
// Odilia and Applications have no side.
func (m Modifiers) Left() bool {
	return m.Intersects(leftMask)
}

// Right returns true if the right key of any family is held.
func (m Modifiers) Right() bool {
	return m.Intersects(rightMask)
}

// With returns a new Modifiers with the specified modifiers added.
func (m Modifiers) With(mod Modifiers) Modifiers {
	return m | mod
}

// Without returns a new Modifiers with the specified modifiers removed.
func (m Modifiers) Without(mod Modifiers) Modifiers {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifiers) IsEmpty() bool {
	return m == ModNone
}

// family describes one left/right modifier pair.
type family struct {
	name        string
	left, right Modifiers
}

var families = [...]family{
	{"Control", ControlL, ControlR},
	{"Alt", AltL, AltR},
	{"Shift", ShiftL, ShiftR},
	{"Meta", MetaL, MetaR},
}

// Names returns the modifier names in canonical order. A family with both
// sides set is named once by its combined name.
func (m Modifiers) Names() []string {
	var parts []string
	if m.Odilia() {
		parts = append(parts, "Odilia")
	}
	if m.Applications() {
		parts = append(parts, "Applications")
	}
	for _, f := range families {
		switch {
		case m.Contains(f.left | f.right):
			parts = append(parts, f.name)
		case m.Contains(f.left):
			parts = append(parts, "Left"+f.name)
		case m.Contains(f.right):
			parts = append(parts, "Right"+f.name)
		}
	}
	return parts
}

// String returns a representation like "Odilia+LeftControl+Shift".
func (m Modifiers) String() string {
	return strings.Join(m.Names(), "+")
}

// modifierNameMap maps modifier names (lowercase) to Modifiers values.
var modifierNameMap = map[string]Modifiers{
	"odilia":       Odilia,
	"applications": Applications,
	"leftcontrol":  ControlL,
	"rightcontrol": ControlR,
	"control":      Control,
	"leftalt":      AltL,
	"rightalt":     AltR,
	"alt":          Alt,
	"leftshift":    ShiftL,
	"rightshift":   ShiftR,
	"shift":        Shift,
	"leftmeta":     MetaL,
	"rightmeta":    MetaR,
	"meta":         Meta,
}

// ModifierFromName returns the Modifiers for a given name (case-insensitive).
// The boolean is false if the name is not recognized.
func ModifierFromName(name string) (Modifiers, bool) {
	m, ok := modifierNameMap[strings.ToLower(name)]
	return m, ok
}

// ModifierNames returns every recognized modifier name.
func ModifierNames() []string {
	return []string{
		"Odilia", "Applications",
		"LeftControl", "RightControl", "Control",
		"LeftAlt", "RightAlt", "Alt",
		"LeftShift", "RightShift", "Shift",
		"LeftMeta", "RightMeta", "Meta",
	}
}
