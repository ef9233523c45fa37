package event

import "fmt"

// ElementType is a kind of navigable UI element.
type ElementType uint8

const (
	// ElementNone is the zero value and is not a valid element type.
	ElementNone ElementType = iota

	// Heading matches a heading of any level.
	Heading
	HeadingLevel1
	HeadingLevel2
	HeadingLevel3
	HeadingLevel4
	HeadingLevel5
	HeadingLevel6
	Button
	Text
	Table
	TableCell
	List
	ListItem

	// Tab is a tab in a tab list, as in a dialog's tabbed pages.
	Tab
)

var elementNames = [...]string{
	ElementNone:   "None",
	Heading:       "Heading",
	HeadingLevel1: "HeadingLevel1",
	HeadingLevel2: "HeadingLevel2",
	HeadingLevel3: "HeadingLevel3",
	HeadingLevel4: "HeadingLevel4",
	HeadingLevel5: "HeadingLevel5",
	HeadingLevel6: "HeadingLevel6",
	Button:        "Button",
	Text:          "Text",
	Table:         "Table",
	TableCell:     "TableCell",
	List:          "List",
	ListItem:      "ListItem",
	Tab:           "Tab",
}

// String returns the element type name, e.g. "HeadingLevel2".
func (e ElementType) String() string {
	if int(e) < len(elementNames) {
		return elementNames[e]
	}
	return fmt.Sprintf("ElementType(%d)", e)
}

// IsValid reports whether e is one of the defined element types.
func (e ElementType) IsValid() bool {
	return e >= Heading && e <= Tab
}

// HeadingLevel returns the level 1-6 of a leveled heading, or 0.
func (e ElementType) HeadingLevel() int {
	if e >= HeadingLevel1 && e <= HeadingLevel6 {
		return int(e-HeadingLevel1) + 1
	}
	return 0
}

// IsHeading reports whether e is Heading or a leveled heading.
func (e ElementType) IsHeading() bool {
	return e >= Heading && e <= HeadingLevel6
}

// Elements returns every valid element type in declaration order.
func Elements() []ElementType {
	out := make([]ElementType, 0, int(Tab))
	for e := Heading; e <= Tab; e++ {
		out = append(out, e)
	}
	return out
}

// ParseElementType returns the element type with the given name.
// Matching is exact and case-sensitive.
func ParseElementType(name string) (ElementType, error) {
	for _, e := range Elements() {
		if elementNames[e] == name {
			return e, nil
		}
	}
	return ElementNone, fmt.Errorf("%w: %q", ErrElementNotFound, name)
}

// MarshalText implements encoding.TextMarshaler.
func (e ElementType) MarshalText() ([]byte, error) {
	if !e.IsValid() {
		return nil, fmt.Errorf("marshal %s: %w", e, ErrElementNotFound)
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *ElementType) UnmarshalText(text []byte) error {
	parsed, err := ParseElementType(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
