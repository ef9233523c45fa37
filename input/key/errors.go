package key

import (
	"errors"
	"fmt"
)

// KeyFromStrError enumerates the ways a binding string can fail to parse.
type KeyFromStrError uint8

const (
	// EmptyString is returned for an empty input.
	EmptyString KeyFromStrError = iota + 1

	// NoKey is returned when the final "+" token is empty.
	NoKey

	// EmptyKey is returned when the key slot before ":" is empty, as in ":3".
	EmptyKey

	// InvalidKey is returned when the key is more than one character.
	InvalidKey

	// InvalidRepeat is returned when the repeat count is not 1-255.
	InvalidRepeat

	// InvalidModifier is returned for an unrecognized modifier name.
	InvalidModifier

	// InvalidMode is returned by ParseInMode for an unknown mode name.
	InvalidMode
)

var errorText = [...]string{
	EmptyString:     "empty binding string",
	NoKey:           "no key in binding",
	EmptyKey:        "empty key before repeat count",
	InvalidKey:      "key must be a single character",
	InvalidRepeat:   "repeat count must be a number from 1 to 255",
	InvalidModifier: "unknown modifier",
	InvalidMode:     "unknown mode",
}

var errorNames = [...]string{
	EmptyString:     "EmptyString",
	NoKey:           "NoKey",
	EmptyKey:        "EmptyKey",
	InvalidKey:      "InvalidKey",
	InvalidRepeat:   "InvalidRepeat",
	InvalidModifier: "InvalidModifier",
	InvalidMode:     "InvalidMode",
}

// Error implements the error interface.
func (e KeyFromStrError) Error() string {
	if e > 0 && int(e) < len(errorText) {
		return errorText[e]
	}
	return fmt.Sprintf("key error %d", uint8(e))
}

// String returns the kind name, e.g. "InvalidModifier".
func (e KeyFromStrError) String() string {
	if e > 0 && int(e) < len(errorNames) {
		return errorNames[e]
	}
	return fmt.Sprintf("KeyFromStrError(%d)", uint8(e))
}

// ErrorKinds returns every error kind in declaration order.
func ErrorKinds() []KeyFromStrError {
	return []KeyFromStrError{EmptyString, NoKey, EmptyKey, InvalidKey, InvalidRepeat, InvalidModifier, InvalidMode}
}

// ParseError describes a binding string that failed to parse.
type ParseError struct {
	// Kind is the failure category.
	Kind KeyFromStrError

	// Input is the full binding string.
	Input string

	// Token is the offending part of Input, if any.
	Token string

	// Err is the underlying cause, e.g. a strconv or mode error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parsing binding %q: %s", e.Input, e.Kind.Error())
	if e.Token != "" {
		msg += fmt.Sprintf(" %q", e.Token)
	}
	return msg
}

// Unwrap returns the kind and the underlying cause so that errors.Is
// matches either.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ErrorKind returns the KeyFromStrError carried by err, or 0 if there is none.
func ErrorKind(err error) KeyFromStrError {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	var k KeyFromStrError
	if errors.As(err, &k) {
		return k
	}
	return 0
}
