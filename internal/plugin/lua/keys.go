package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/odilia-app/odilia-common/event"
	"github.com/odilia-app/odilia-common/input/key"
	"github.com/odilia-app/odilia-common/input/mode"
	"github.com/odilia-app/odilia-common/internal/input/keymap"
)

// Module names registered by Preload and PreloadKeymap.
const (
	KeysModule   = ModulePrefix + ".keys"
	KeymapModule = ModulePrefix + ".keymap"
)

// Preload registers the odilia.keys module on L.
//
//	local keys = require("odilia.keys")
//	local b, kind = keys.parse("Odilia+Shift+h:2")
//	if not b then print("bad binding: " .. kind) end
//
// Failures return nil, the error kind name and the message.
func Preload(L *lua.LState) {
	L.PreloadModule(KeysModule, func(L *lua.LState) int {
		mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
			"parse":      keysParse,
			"normalize":  keysNormalize,
			"parse_mode": keysParseMode,
			"modifiers":  keysModifiers,
			"modes":      keysModes,
			"event":      keysEvent,
		})
		L.Push(mod)
		return 1
	})
}

// PreloadKeymap registers the odilia.keymap module on L, giving scripts
// read access to km.
//
//	local km = require("odilia.keymap")
//	local action = km.lookup("h", "BrowseMode") -- "Next(Heading)"
func PreloadKeymap(L *lua.LState, km *keymap.Keymap) {
	L.PreloadModule(KeymapModule, func(L *lua.LState) int {
		mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
			"lookup": func(L *lua.LState) int {
				b, err := key.ParseInMode(L.CheckString(1), L.OptString(2, mode.CommandMode.String()))
				if err != nil {
					return pushError(L, err)
				}
				entry, ok := km.Lookup(b)
				if !ok {
					L.Push(lua.LNil)
					return 1
				}
				L.Push(lua.LString(entry.Event.String()))
				L.Push(lua.LString(entry.Description))
				return 2
			},
			"entries": func(L *lua.LState) int {
				list := L.NewTable()
				for _, e := range km.Entries() {
					t := L.NewTable()
					t.RawSetString("keys", lua.LString(e.Binding.String()))
					t.RawSetString("mode", lua.LString(e.Binding.Mode.String()))
					t.RawSetString("action", lua.LString(e.Event.String()))
					t.RawSetString("description", lua.LString(e.Description))
					list.Append(t)
				}
				L.Push(list)
				return 1
			},
			"len": func(L *lua.LState) int {
				L.Push(lua.LNumber(km.Len()))
				return 1
			},
		})
		L.Push(mod)
		return 1
	})
}

// keysParse implements keys.parse(spec [, mode]).
func keysParse(L *lua.LState) int {
	spec := L.CheckString(1)

	var (
		b   key.KeyBinding
		err error
	)
	if L.GetTop() >= 2 && L.Get(2) != lua.LNil {
		b, err = key.ParseInMode(spec, L.CheckString(2))
	} else {
		b, err = key.Parse(spec)
	}
	if err != nil {
		return pushError(L, err)
	}
	L.Push(bindingTable(L, b))
	return 1
}

// keysNormalize implements keys.normalize(spec).
func keysNormalize(L *lua.LState) int {
	s, err := key.NormalizeSpec(L.CheckString(1))
	if err != nil {
		return pushError(L, err)
	}
	L.Push(lua.LString(s))
	return 1
}

// keysParseMode implements keys.parse_mode(name).
func keysParseMode(L *lua.LState) int {
	m, err := mode.Parse(L.CheckString(1))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString("ModeNameNotFound"))
		L.Push(lua.LString(err.Error()))
		return 3
	}
	L.Push(lua.LString(m.String()))
	return 1
}

// keysModifiers implements keys.modifiers().
func keysModifiers(L *lua.LState) int {
	L.Push(stringList(L, key.ModifierNames()))
	return 1
}

// keysModes implements keys.modes().
func keysModes(L *lua.LState) int {
	modes := mode.All()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	L.Push(stringList(L, names))
	return 1
}

// keysEvent implements keys.event(text), returning a table with kind and
// either mode or element.
func keysEvent(L *lua.LState) int {
	ev, err := event.ParseEvent(L.CheckString(1))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString("InvalidEvent"))
		L.Push(lua.LString(err.Error()))
		return 3
	}

	t := L.NewTable()
	t.RawSetString("kind", lua.LString(ev.Kind().String()))
	t.RawSetString("topic", lua.LString(ev.Topic().String()))
	if m, ok := ev.Mode(); ok {
		t.RawSetString("mode", lua.LString(m.String()))
	}
	if e, ok := ev.Element(); ok {
		t.RawSetString("element", lua.LString(e.String()))
		if lvl := e.HeadingLevel(); lvl > 0 {
			t.RawSetString("level", lua.LNumber(lvl))
		}
	}
	L.Push(t)
	return 1
}

// bindingTable converts b into the table returned by keys.parse.
func bindingTable(L *lua.LState, b key.KeyBinding) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("key", lua.LString(string(b.Key)))
	t.RawSetString("repeat", lua.LNumber(b.Repeat))
	t.RawSetString("mode", lua.LString(b.Mode.String()))
	t.RawSetString("mods", lua.LNumber(b.Mods))
	t.RawSetString("modifiers", stringList(L, b.Mods.Names()))
	t.RawSetString("text", lua.LString(b.String()))

	t.RawSetString("control", lua.LBool(b.Mods.Control()))
	t.RawSetString("alt", lua.LBool(b.Mods.Alt()))
	t.RawSetString("shift", lua.LBool(b.Mods.Shift()))
	t.RawSetString("meta", lua.LBool(b.Mods.Meta()))
	t.RawSetString("odilia", lua.LBool(b.Mods.Odilia()))
	t.RawSetString("applications", lua.LBool(b.Mods.Applications()))
	t.RawSetString("left", lua.LBool(b.Mods.Left()))
	t.RawSetString("right", lua.LBool(b.Mods.Right()))
	return t
}

func stringList(L *lua.LState, items []string) *lua.LTable {
	t := L.CreateTable(len(items), 0)
	for _, s := range items {
		t.Append(lua.LString(s))
	}
	return t
}

// pushError pushes nil, the key error kind name and the message.
func pushError(L *lua.LState, err error) int {
	L.Push(lua.LNil)
	L.Push(lua.LString(key.ErrorKind(err).String()))
	L.Push(lua.LString(err.Error()))
	return 3
}
