// Package lua exposes the key-binding vocabulary to Lua addon scripts.
//
// A State is a gopher-lua runtime with only the package, base, table,
// string and math libraries opened. dofile, loadfile, load and loadstring
// are removed and require resolves nothing outside the standard modules
// and the odilia namespace.
//
//	state := lua.NewState(lua.WithExecutionTimeout(time.Second))
//	defer state.Close()
//
//	err := state.DoString(`
//	    local keys = require("odilia.keys")
//	    local b = keys.parse("Odilia+Shift+h:2")
//	    assert(b.odilia and b.shift and b["repeat"] == 2)
//	`)
//
// # Modules
//
// odilia.keys is always available:
//
//	keys.parse(spec [, mode])   binding table, or nil, kind, message
//	keys.normalize(spec)        canonical binding text
//	keys.parse_mode(name)       mode name, or nil, kind, message
//	keys.modifiers()            recognised modifier names
//	keys.modes()                screen reader mode names
//	keys.event(text)            action table {kind, topic, mode|element}
//
// odilia.keymap is registered by WithKeymap or PreloadKeymap and gives
// read access to a loaded keymap through lookup, entries and len.
// WithOutput sends print to a writer instead of standard output.
package lua
