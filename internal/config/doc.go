// Package config loads keymap files for the screen reader.
//
// A keymap file declares bindings in TOML, YAML or JSON; the format is
// chosen by file extension. In TOML:
//
//	[[bindings]]
//	keys = "Odilia+h"
//	action = "Next(Heading)"
//	mode = "BrowseMode"
//	description = "Next heading"
//
// Mode defaults to CommandMode. Load never rejects a whole file because of
// one bad declaration: each rejected declaration becomes an Issue in the
// returned Report, and the valid rest is built into the keymap.
//
// Watcher reloads the file on change using fsnotify. Options can be
// overridden from ODILIA_* environment variables with OptionsFromEnv.
package config
