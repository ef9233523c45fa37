package lua

import (
	"testing"

	glua "github.com/yuin/gopher-lua"

	"github.com/odilia-app/odilia-common/internal/input/keymap"
)

func TestKeysModule(t *testing.T) {
	state := NewState()
	defer state.Close()

	scripts := map[string]string{
		"parse": `
			local keys = require("odilia.keys")
			local b = keys.parse("Control+Shift+Alt+Meta+Applications+Odilia+s:3")
			assert(b.key == "s", "key")
			assert(b["repeat"] == 3, "repeat")
			assert(b.mode == "CommandMode", "mode")
			assert(b.control and b.shift and b.alt and b.meta, "families")
			assert(b.odilia and b.applications, "odilia")
			assert(b.left and b.right, "sides")
			assert(#b.modifiers == 6, "modifier names")
			assert(b.text == "Odilia+Applications+Control+Alt+Shift+Meta+s:3", b.text)
		`,
		"parse in mode": `
			local keys = require("odilia.keys")
			local b = keys.parse("LeftShift+h", "BrowseMode")
			assert(b.mode == "BrowseMode")
			assert(b.shift and b.left and not b.right)
			assert(b["repeat"] == 1)
		`,
		"parse errors": `
			local keys = require("odilia.keys")
			local b, kind, msg = keys.parse("Hyper+a")
			assert(b == nil and kind == "InvalidModifier", tostring(kind))
			assert(type(msg) == "string")
			assert(select(2, keys.parse("")) == "EmptyString")
			assert(select(2, keys.parse("Odilia+")) == "NoKey")
			assert(select(2, keys.parse(":3")) == "EmptyKey")
			assert(select(2, keys.parse("ab")) == "InvalidKey")
			assert(select(2, keys.parse("a:0")) == "InvalidRepeat")
			assert(select(2, keys.parse("a", "InsertMode")) == "InvalidMode")
		`,
		"normalize": `
			local keys = require("odilia.keys")
			assert(keys.normalize("shift+odilia+h:1") == "Odilia+Shift+h")
			assert(keys.normalize("a:") == nil)
		`,
		"parse_mode": `
			local keys = require("odilia.keys")
			assert(keys.parse_mode("FocusMode") == "FocusMode")
			local m, kind = keys.parse_mode("focus")
			assert(m == nil and kind == "ModeNameNotFound")
		`,
		"lists": `
			local keys = require("odilia.keys")
			assert(#keys.modifiers() == 14)
			assert(keys.modifiers()[1] == "Odilia")
			assert(#keys.modes() == 4)
		`,
		"event": `
			local keys = require("odilia.keys")
			local ev = keys.event("Next(HeadingLevel3)")
			assert(ev.kind == "Next" and ev.element == "HeadingLevel3" and ev.level == 3)
			assert(ev.topic == "navigate.next")
			ev = keys.event("ChangeMode(FocusMode)")
			assert(ev.kind == "ChangeMode" and ev.mode == "FocusMode" and ev.element == nil)
			assert(keys.event("Jump(Button)") == nil)
		`,
	}

	for name, code := range scripts {
		t.Run(name, func(t *testing.T) {
			if err := state.DoString(code); err != nil {
				t.Errorf("script error = %v", err)
			}
		})
	}
}

func TestKeysParseFromGo(t *testing.T) {
	state := NewState()
	defer state.Close()

	err := state.DoString(`
		local keys = require("odilia.keys")
		function describe(spec)
			local b, kind = keys.parse(spec)
			if not b then return kind end
			return b.text
		end
	`)
	if err != nil {
		t.Fatalf("DoString() error = %v", err)
	}

	tests := []struct {
		spec string
		want string
	}{
		{"Odilia+h", "Odilia+h"},
		{"RightAlt+LeftAlt+x:2", "Alt+x:2"},
		{"Odilia+Odilia", "InvalidKey"},
		{"Super+a", "InvalidModifier"},
	}
	for _, tt := range tests {
		results, err := state.Call("describe", glua.LString(tt.spec))
		if err != nil {
			t.Errorf("describe(%q) error = %v", tt.spec, err)
			continue
		}
		if got := results[0].String(); got != tt.want {
			t.Errorf("describe(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

func TestPreloadKeymap(t *testing.T) {
	state := NewState()
	defer state.Close()

	km := keymap.Default()
	PreloadKeymap(state.LuaState(), km)

	err := state.DoString(`
		local km = require("odilia.keymap")
		assert(km.len() > 0)
		assert(#km.entries() == km.len())

		local action, desc = km.lookup("h", "BrowseMode")
		assert(action == "Next(Heading)", tostring(action))
		assert(type(desc) == "string")

		assert(km.lookup("Shift+h", "BrowseMode") == "Previous(Heading)")
		assert(km.lookup("Odilia+f", "CommandMode") == "ChangeMode(FocusMode)")
		assert(km.lookup("h", "FocusMode") == nil)

		local _, kind = km.lookup("Hyper+h")
		assert(kind == "InvalidModifier")
	`)
	if err != nil {
		t.Errorf("script error = %v", err)
	}
}
