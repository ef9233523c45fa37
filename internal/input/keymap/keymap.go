package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/odilia-app/odilia-common/event"
	"github.com/odilia-app/odilia-common/input/key"
	"github.com/odilia-app/odilia-common/input/mode"
)

// ErrDuplicateBinding is returned when a binding is added twice to the same
// builder.
var ErrDuplicateBinding = errors.New("duplicate binding")

// Entry maps a key binding to the event it produces.
type Entry struct {
	// Binding is the key binding, including the mode it is active in.
	Binding key.KeyBinding

	// Event is the screen reader event the binding triggers.
	Event event.ScreenReaderEvent

	// Description is a human-readable description for help listings.
	Description string

	// Category groups related entries, e.g. "Navigation".
	Category string
}

// Validate checks both the binding and the event.
func (e Entry) Validate() error {
	if err := e.Binding.Validate(); err != nil {
		return err
	}
	return e.Event.Validate()
}

// String returns "<mode> <binding> -> <event>".
func (e Entry) String() string {
	return fmt.Sprintf("%s %s -> %s", e.Binding.Mode, e.Binding, e.Event)
}

// Keymap is an immutable set of entries indexed by binding.
// A Keymap is safe for concurrent use.
type Keymap struct {
	name    string
	source  string
	entries map[key.KeyBinding]Entry
	sorted  []Entry
}

// Name returns the keymap identifier.
func (k *Keymap) Name() string { return k.name }

// Source indicates where this keymap was defined, e.g. "default" or a
// config file path.
func (k *Keymap) Source() string { return k.source }

// Len returns the number of entries.
func (k *Keymap) Len() int { return len(k.entries) }

// Lookup returns the entry for b.
func (k *Keymap) Lookup(b key.KeyBinding) (Entry, bool) {
	e, ok := k.entries[b]
	return e, ok
}

// Entries returns all entries sorted by mode, then by canonical binding text.
func (k *Keymap) Entries() []Entry {
	out := make([]Entry, len(k.sorted))
	copy(out, k.sorted)
	return out
}

// ForMode returns the entries active in m, in Entries order.
func (k *Keymap) ForMode(m mode.ScreenReaderMode) []Entry {
	var out []Entry
	for _, e := range k.sorted {
		if e.Binding.Mode == m {
			out = append(out, e)
		}
	}
	return out
}

// BindingsFor returns every binding that triggers ev, in Entries order.
func (k *Keymap) BindingsFor(ev event.ScreenReaderEvent) []key.KeyBinding {
	var out []key.KeyBinding
	for _, e := range k.sorted {
		if e.Event == ev {
			out = append(out, e.Binding)
		}
	}
	return out
}

// Builder accumulates entries for a Keymap.
// A Builder is not safe for concurrent use.
type Builder struct {
	name    string
	source  string
	entries map[key.KeyBinding]Entry
}

// NewBuilder creates a builder for a keymap with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:    name,
		entries: make(map[key.KeyBinding]Entry),
	}
}

// WithSource sets the source recorded on the built keymap.
func (b *Builder) WithSource(source string) *Builder {
	b.source = source
	return b
}

// Add adds an entry. It fails if the entry is invalid or its binding is
// already present.
func (b *Builder) Add(e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if prev, ok := b.entries[e.Binding]; ok {
		return fmt.Errorf("%w: %s in %s already bound to %s",
			ErrDuplicateBinding, e.Binding, e.Binding.Mode, prev.Event)
	}
	b.entries[e.Binding] = e
	return nil
}

// Set adds an entry, replacing any existing entry for the same binding.
func (b *Builder) Set(e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	b.entries[e.Binding] = e
	return nil
}

// Has reports whether the builder already holds binding kb.
func (b *Builder) Has(kb key.KeyBinding) bool {
	_, ok := b.entries[kb]
	return ok
}

// Len returns the number of entries added so far.
func (b *Builder) Len() int { return len(b.entries) }

// Build returns a keymap holding a copy of the builder's entries.
// The builder may continue to be used afterwards.
func (b *Builder) Build() *Keymap {
	km := &Keymap{
		name:    b.name,
		source:  b.source,
		entries: make(map[key.KeyBinding]Entry, len(b.entries)),
		sorted:  make([]Entry, 0, len(b.entries)),
	}
	for kb, e := range b.entries {
		km.entries[kb] = e
		km.sorted = append(km.sorted, e)
	}
	sort.Slice(km.sorted, func(i, j int) bool {
		a, c := km.sorted[i].Binding, km.sorted[j].Binding
		if a.Mode != c.Mode {
			return a.Mode < c.Mode
		}
		as, cs := a.String(), c.String()
		if as != cs {
			return as < cs
		}
		return a.Key < c.Key
	})
	return km
}

// Merge returns a keymap containing the entries of base and overlay.
// Where both bind the same key, overlay wins. The result takes overlay's
// name and source.
func Merge(base, overlay *Keymap) *Keymap {
	b := NewBuilder(overlay.name).WithSource(overlay.source)
	for kb, e := range base.entries {
		b.entries[kb] = e
	}
	for kb, e := range overlay.entries {
		b.entries[kb] = e
	}
	return b.Build()
}
