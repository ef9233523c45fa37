package keymap

import (
	"github.com/odilia-app/odilia-common/event"
	"github.com/odilia-app/odilia-common/input/key"
	"github.com/odilia-app/odilia-common/input/mode"
)

// DefaultName is the name of the built-in keymap.
const DefaultName = "default"

// Default returns the built-in Odilia bindings.
//
// The mode switches Odilia+b, Odilia+f and Odilia+o are available in every
// mode. Browse mode adds single-key structural navigation; the shifted key
// moves backwards.
func Default() *Keymap {
	b := NewBuilder(DefaultName).WithSource(DefaultName)

	for _, m := range mode.All() {
		for _, sw := range modeSwitches {
			mustAdd(b, Entry{
				Binding:     inMode(sw.keys, m),
				Event:       event.ChangeMode(sw.target),
				Description: sw.desc,
				Category:    "Modes",
			})
		}
	}

	for _, nav := range browseNavigation {
		mustAdd(b, Entry{
			Binding:     inMode(nav.keys, mode.BrowseMode),
			Event:       event.Next(nav.element),
			Description: "Next " + nav.desc,
			Category:    "Navigation",
		})
		mustAdd(b, Entry{
			Binding:     inMode("Shift+"+nav.keys, mode.BrowseMode),
			Event:       event.Previous(nav.element),
			Description: "Previous " + nav.desc,
			Category:    "Navigation",
		})
	}

	return b.Build()
}

var modeSwitches = []struct {
	keys   string
	target mode.ScreenReaderMode
	desc   string
}{
	{"Odilia+b", mode.BrowseMode, "Switch to browse mode"},
	{"Odilia+f", mode.FocusMode, "Switch to focus mode"},
	{"Odilia+o", mode.ObjectNavigationMode, "Switch to object navigation mode"},
}

var browseNavigation = []struct {
	keys    string
	element event.ElementType
	desc    string
}{
	{"h", event.Heading, "heading"},
	{"1", event.HeadingLevel1, "heading at level 1"},
	{"2", event.HeadingLevel2, "heading at level 2"},
	{"3", event.HeadingLevel3, "heading at level 3"},
	{"4", event.HeadingLevel4, "heading at level 4"},
	{"5", event.HeadingLevel5, "heading at level 5"},
	{"6", event.HeadingLevel6, "heading at level 6"},
	{"b", event.Button, "button"},
	{"l", event.List, "list"},
	{"i", event.ListItem, "list item"},
	{"t", event.Table, "table"},
	{"c", event.TableCell, "table cell"},
	{"p", event.Text, "paragraph of text"},
}

func inMode(spec string, m mode.ScreenReaderMode) key.KeyBinding {
	kb := key.MustParse(spec)
	kb.Mode = m
	return kb
}

func mustAdd(b *Builder, e Entry) {
	if err := b.Add(e); err != nil {
		panic("keymap: invalid default entry: " + err.Error())
	}
}
