// Package keymap maps key bindings to screen reader events.
//
// # Key Concepts
//
// Entry: a key.KeyBinding paired with the event.ScreenReaderEvent it
// triggers, plus help text.
//
// Builder: accumulates entries and rejects invalid or duplicate bindings.
//
// Keymap: the immutable result of Builder.Build, indexed by binding.
//
// # Binding Identity
//
// A binding is identified by its key, modifiers, repeat count and mode, so
// "Odilia+h" in BrowseMode and "Odilia+h" in FocusMode are separate
// entries. Adding the same binding twice fails with ErrDuplicateBinding.
//
// # Defaults
//
// Default returns the built-in bindings. Merge layers a user keymap over
// them, with the user's entries taking precedence:
//
//	km := keymap.Merge(keymap.Default(), user)
//	if entry, ok := km.Lookup(binding); ok {
//	    bus.Publish(ctx, entry.Event)
//	}
package keymap
