// Package key provides key-binding types and parsing for the screen
// reader's command layer.
//
// This package defines:
//
//   - Modifiers: a 16-bit set of modifier keys, with left and right
//     variants for Control, Alt, Shift and Meta
//   - KeyBinding: a key character, its modifiers, a repeat count and the
//     mode the binding is active in
//   - KeyFromStrError: the closed set of ways a binding string can fail
//
// # Binding Specifications
//
// Bindings are written as modifier names joined by "+", followed by the
// key and an optional repeat count:
//
//	"Odilia+h"
//	"Control+Shift+Alt+Meta+Applications+Odilia+s:3"
//	"LeftControl+LeftShift+LeftAlt+LeftMeta+.:2"
//
// Modifier names are case-insensitive. The key is a single character and
// is case-sensitive, so "Odilia+h" and "Odilia+H" are different bindings.
// A binding parsed from text is always in CommandMode; use ParseInMode to
// attach another mode.
package key
