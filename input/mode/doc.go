// Package mode defines the screen reader's interaction modes.
//
// A mode is a named interaction context that changes how input is
// interpreted:
//   - BrowseMode: virtual cursor over the document, single keys navigate
//   - FocusMode: keys pass through to the focused control
//   - ObjectNavigationMode: move between accessible objects
//   - CommandMode: entered by holding the Odilia modifier key
//
// The set is closed. Mode names are matched exactly and are
// case-sensitive:
//
//	m, err := mode.Parse("BrowseMode")
//	if errors.Is(err, mode.ModeNameNotFound) {
//	    // report the bad name
//	}
package mode
