package key

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/odilia-app/odilia-common/input/mode"
)

const (
	modifierSeparator = "+"
	repeatSeparator   = ":"
)

// Parse parses a binding specification string into a KeyBinding.
//
// The last "+" token is the key, optionally followed by ":" and a repeat
// count; the tokens before it are modifier names, read right to left.
// Parsing stops at the first malformed token. The returned binding is
// always in mode.CommandMode.
//
// Errors are *ParseError values that match their KeyFromStrError kind
// with errors.Is.
func Parse(spec string) (KeyBinding, error) {
	if spec == "" {
		return KeyBinding{}, &ParseError{Kind: EmptyString, Input: spec}
	}

	tokens := strings.Split(spec, modifierSeparator)

	// Only trailing whitespace is dropped; a leading space is part of the key.
	keySpec := strings.TrimRightFunc(tokens[len(tokens)-1], unicode.IsSpace)
	if keySpec == "" {
		return KeyBinding{}, &ParseError{Kind: NoKey, Input: spec}
	}

	keyPart, repeatPart, hasRepeat := strings.Cut(keySpec, repeatSeparator)
	if keyPart == "" {
		return KeyBinding{}, &ParseError{Kind: EmptyKey, Input: spec, Token: keySpec}
	}
	if !utf8.ValidString(keyPart) || utf8.RuneCountInString(keyPart) != 1 {
		return KeyBinding{}, &ParseError{Kind: InvalidKey, Input: spec, Token: keyPart}
	}
	r, _ := utf8.DecodeRuneInString(keyPart)
	if r == 0 {
		return KeyBinding{}, &ParseError{Kind: InvalidKey, Input: spec, Token: keyPart}
	}

	repeat := uint8(1)
	if hasRepeat {
		n, err := strconv.ParseUint(repeatPart, 10, 8)
		if err != nil || n == 0 {
			return KeyBinding{}, &ParseError{Kind: InvalidRepeat, Input: spec, Token: repeatPart, Err: err}
		}
		repeat = uint8(n)
	}

	var mods Modifiers
	for i := len(tokens) - 2; i >= 0; i-- {
		name := strings.TrimSpace(tokens[i])
		mod, ok := ModifierFromName(name)
		if !ok {
			return KeyBinding{}, &ParseError{Kind: InvalidModifier, Input: spec, Token: tokens[i]}
		}
		mods = mods.With(mod)
	}

	return KeyBinding{
		Key:    r,
		Mods:   mods,
		Repeat: repeat,
		Mode:   mode.CommandMode,
	}, nil
}

// ParseInMode parses spec and places the binding in the named mode.
// An unknown mode name fails with InvalidMode.
func ParseInMode(spec, modeName string) (KeyBinding, error) {
	b, err := Parse(spec)
	if err != nil {
		return KeyBinding{}, err
	}
	m, err := mode.Parse(modeName)
	if err != nil {
		return KeyBinding{}, &ParseError{Kind: InvalidMode, Input: spec, Token: modeName, Err: err}
	}
	b.Mode = m
	return b, nil
}

// MustParse parses a binding specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) KeyBinding {
	b, err := Parse(spec)
	if err != nil {
		panic("invalid key binding: " + err.Error())
	}
	return b
}

// NormalizeSpec parses and re-formats a binding specification to its
// canonical form.
func NormalizeSpec(spec string) (string, error) {
	b, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
