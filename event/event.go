package event

import (
	"fmt"
	"strings"

	"github.com/odilia-app/odilia-common/input/mode"
)

// Kind identifies the shape of a ScreenReaderEvent.
type Kind uint8

const (
	// KindNone is the zero value and is not a valid kind.
	KindNone Kind = iota

	// KindChangeMode switches the screen reader to another mode.
	KindChangeMode

	// KindNext moves to the next element of a type.
	KindNext

	// KindPrevious moves to the previous element of a type.
	KindPrevious
)

var kindNames = [...]string{
	KindNone:       "None",
	KindChangeMode: "ChangeMode",
	KindNext:       "Next",
	KindPrevious:   "Previous",
}

// String returns the kind name as used in the text form of an event.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Topic returns the topic events of this kind are published under.
func (k Kind) Topic() Topic {
	switch k {
	case KindChangeMode:
		return TopicModeChange
	case KindNext:
		return TopicNavigateNext
	case KindPrevious:
		return TopicNavigatePrevious
	default:
		return ""
	}
}

// ScreenReaderEvent is a request produced by the command layer.
// The zero value is invalid; use ChangeMode, Next or Previous.
// Events are comparable and may be used as map keys.
type ScreenReaderEvent struct {
	kind    Kind
	mode    mode.ScreenReaderMode
	element ElementType
}

// ChangeMode returns an event that switches to mode m.
func ChangeMode(m mode.ScreenReaderMode) ScreenReaderEvent {
	return ScreenReaderEvent{kind: KindChangeMode, mode: m}
}

// Next returns an event that moves to the next element of type e.
func Next(e ElementType) ScreenReaderEvent {
	return ScreenReaderEvent{kind: KindNext, element: e}
}

// Previous returns an event that moves to the previous element of type e.
func Previous(e ElementType) ScreenReaderEvent {
	return ScreenReaderEvent{kind: KindPrevious, element: e}
}

// Kind returns the event's shape.
func (ev ScreenReaderEvent) Kind() Kind { return ev.kind }

// Mode returns the target mode of a ChangeMode event.
// The boolean is false for other kinds.
func (ev ScreenReaderEvent) Mode() (mode.ScreenReaderMode, bool) {
	return ev.mode, ev.kind == KindChangeMode
}

// Element returns the element type of a Next or Previous event.
// The boolean is false for other kinds.
func (ev ScreenReaderEvent) Element() (ElementType, bool) {
	return ev.element, ev.kind == KindNext || ev.kind == KindPrevious
}

// Topic returns the topic the event is published under.
func (ev ScreenReaderEvent) Topic() Topic {
	return ev.kind.Topic()
}

// Validate checks that the event has a known kind and a valid payload.
func (ev ScreenReaderEvent) Validate() error {
	switch ev.kind {
	case KindChangeMode:
		if !ev.mode.IsValid() {
			return fmt.Errorf("%w: ChangeMode with mode %s", ErrInvalidEvent, ev.mode)
		}
	case KindNext, KindPrevious:
		if !ev.element.IsValid() {
			return fmt.Errorf("%w: %s with element %s", ErrInvalidEvent, ev.kind, ev.element)
		}
	default:
		return fmt.Errorf("%w: kind %s", ErrInvalidEvent, ev.kind)
	}
	return nil
}

// String returns the text form, e.g. "Next(Heading)".
func (ev ScreenReaderEvent) String() string {
	switch ev.kind {
	case KindChangeMode:
		return fmt.Sprintf("%s(%s)", ev.kind, ev.mode)
	case KindNext, KindPrevious:
		return fmt.Sprintf("%s(%s)", ev.kind, ev.element)
	default:
		return ev.kind.String()
	}
}

// ParseEvent parses the text form produced by String.
// Whitespace around the text and around the argument is ignored; names
// are case-sensitive.
func ParseEvent(text string) (ScreenReaderEvent, error) {
	text = strings.TrimSpace(text)
	open := strings.IndexByte(text, '(')
	if open < 0 || !strings.HasSuffix(text, ")") {
		return ScreenReaderEvent{}, fmt.Errorf("%w: %q: expected Kind(Argument)", ErrInvalidEvent, text)
	}
	name := strings.TrimSpace(text[:open])
	arg := strings.TrimSpace(text[open+1 : len(text)-1])

	switch name {
	case "ChangeMode":
		m, err := mode.Parse(arg)
		if err != nil {
			return ScreenReaderEvent{}, fmt.Errorf("%w: %q: %w", ErrInvalidEvent, text, err)
		}
		return ChangeMode(m), nil
	case "Next", "Previous":
		e, err := ParseElementType(arg)
		if err != nil {
			return ScreenReaderEvent{}, fmt.Errorf("%w: %q: %w", ErrInvalidEvent, text, err)
		}
		if name == "Next" {
			return Next(e), nil
		}
		return Previous(e), nil
	default:
		return ScreenReaderEvent{}, fmt.Errorf("%w: %q: unknown kind %q", ErrInvalidEvent, text, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (ev ScreenReaderEvent) MarshalText() ([]byte, error) {
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	return []byte(ev.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ev *ScreenReaderEvent) UnmarshalText(text []byte) error {
	parsed, err := ParseEvent(string(text))
	if err != nil {
		return err
	}
	*ev = parsed
	return nil
}
