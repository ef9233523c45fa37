package key

import (
	"errors"
	"testing"

	"github.com/odilia-app/odilia-common/input/mode"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		spec       string
		wantKey    rune
		wantMods   Modifiers
		wantRepeat uint8
	}{
		{"a", 'a', ModNone, 1},
		{"Odilia+h", 'h', Odilia, 1},
		{"Odilia+H", 'H', Odilia, 1},
		{"Control+Shift+Alt+Meta+Applications+Odilia+s:3", 's', Control | Shift | Alt | Meta | Applications | Odilia, 3},
		{"LeftControl+LeftShift+LeftAlt+LeftMeta+.:2", '.', ControlL | ShiftL | AltL | MetaL, 2},
		{"RightAlt+x", 'x', AltR, 1},
		{"odilia+h", 'h', Odilia, 1},
		{"ODILIA+h", 'h', Odilia, 1},
		{"oDiLiA+APPLICATIONS+1", '1', Odilia | Applications, 1},
		{"Odilia+h   ", 'h', Odilia, 1},
		{"Odilia+h:3\t", 'h', Odilia, 3},
		{" Odilia +h", 'h', Odilia, 1},
		{"LeftShift+RightShift+q", 'q', Shift, 1},
		{"Shift+LeftShift+q", 'q', Shift, 1},
		{"a:255", 'a', ModNone, 255},
		{"a:007", 'a', ModNone, 7},
		{"Odilia+\u00e9", '\u00e9', Odilia, 1},
		{"Odilia+ж:2", 'ж', Odilia, 2},
	}

	for _, tt := range tests {
		b, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if b.Key != tt.wantKey {
			t.Errorf("Parse(%q) key = %q, want %q", tt.spec, b.Key, tt.wantKey)
		}
		if b.Mods != tt.wantMods {
			t.Errorf("Parse(%q) mods = %v, want %v", tt.spec, b.Mods, tt.wantMods)
		}
		if b.Repeat != tt.wantRepeat {
			t.Errorf("Parse(%q) repeat = %d, want %d", tt.spec, b.Repeat, tt.wantRepeat)
		}
		if b.Mode != mode.CommandMode {
			t.Errorf("Parse(%q) mode = %v, want CommandMode", tt.spec, b.Mode)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec      string
		want      KeyFromStrError
		wantToken string
	}{
		{"", EmptyString, ""},
		{"+", NoKey, ""},
		{"Odilia+", NoKey, ""},
		{"   ", NoKey, ""},
		{"Odilia+  ", NoKey, ""},
		{":3", EmptyKey, ":3"},
		{"Odilia+:2", EmptyKey, ":2"},
		{"Odilia+::2", EmptyKey, "::2"},
		{"ab", InvalidKey, "ab"},
		{"Odilia+hh", InvalidKey, "hh"},
		{"Odilia+ h", InvalidKey, " h"},
		{"Odilia+e\u0301", InvalidKey, "e\u0301"},
		{"Odilia+\xff", InvalidKey, "\xff"},
		{"Odilia+\x00", InvalidKey, "\x00"},
		{"\x00:2", InvalidKey, "\x00"},
		{"a:notanumber", InvalidRepeat, "notanumber"},
		{"a:", InvalidRepeat, ""},
		{"a:0", InvalidRepeat, "0"},
		{"a:256", InvalidRepeat, "256"},
		{"a:-1", InvalidRepeat, "-1"},
		{"a: 3", InvalidRepeat, " 3"},
		{"a:1:2", InvalidRepeat, "1:2"},
		{"Xyz+a", InvalidModifier, "Xyz"},
		{"Control++a", InvalidModifier, ""},
		{"+a", InvalidModifier, ""},
		{"Ctrl+a", InvalidModifier, "Ctrl"},
		{"Good+Odilia+Bad+a", InvalidModifier, "Bad"},
	}

	for _, tt := range tests {
		_, err := Parse(tt.spec)
		if err == nil {
			t.Errorf("Parse(%q) expected error", tt.spec)
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Parse(%q) error %T is not *ParseError", tt.spec, err)
			continue
		}
		if pe.Kind != tt.want {
			t.Errorf("Parse(%q) kind = %v, want %v", tt.spec, pe.Kind, tt.want)
		}
		if pe.Token != tt.wantToken {
			t.Errorf("Parse(%q) token = %q, want %q", tt.spec, pe.Token, tt.wantToken)
		}
		if pe.Input != tt.spec {
			t.Errorf("Parse(%q) input = %q", tt.spec, pe.Input)
		}
	}
}

func TestParseKeyCaseSensitive(t *testing.T) {
	lower, err := Parse("odilia+h")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	upper, err := Parse("ODILIA+H")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if lower.Mods != upper.Mods {
		t.Errorf("modifier masks differ: %v vs %v", lower.Mods, upper.Mods)
	}
	if lower.Key == upper.Key {
		t.Error("key case should be preserved")
	}
	if lower == upper {
		t.Error("bindings with different key case should differ")
	}
}

func TestParseLeftOnly(t *testing.T) {
	b, err := Parse("LeftControl+LeftShift+LeftAlt+LeftMeta+.:2")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if !b.Mods.Left() {
		t.Error("Left() should be true")
	}
	if b.Mods.Right() {
		t.Error("Right() should be false")
	}
}

func TestParseDeterministic(t *testing.T) {
	specs := []string{"Odilia+h", "Xyz+a", "a:0", "Control+Shift+Alt+Meta+Applications+Odilia+s:3"}
	for _, spec := range specs {
		b1, err1 := Parse(spec)
		b2, err2 := Parse(spec)
		if b1 != b2 {
			t.Errorf("Parse(%q) not deterministic: %v vs %v", spec, b1, b2)
		}
		if ErrorKind(err1) != ErrorKind(err2) {
			t.Errorf("Parse(%q) error kinds differ: %v vs %v", spec, err1, err2)
		}
	}
}

func TestParseInMode(t *testing.T) {
	b, err := ParseInMode("Odilia+h", "BrowseMode")
	if err != nil {
		t.Fatalf("ParseInMode error = %v", err)
	}
	if b.Mode != mode.BrowseMode {
		t.Errorf("mode = %v, want BrowseMode", b.Mode)
	}
	if b.Key != 'h' || b.Mods != Odilia {
		t.Errorf("binding = %+v", b)
	}

	_, err = ParseInMode("Odilia+h", "browsemode")
	if !errors.Is(err, InvalidMode) {
		t.Errorf("ParseInMode with bad mode error = %v, want InvalidMode", err)
	}
	if !errors.Is(err, mode.ModeNameNotFound) {
		t.Errorf("ParseInMode with bad mode should wrap ModeNameNotFound, got %v", err)
	}

	_, err = ParseInMode("Bogus+h", "BrowseMode")
	if !errors.Is(err, InvalidModifier) {
		t.Errorf("ParseInMode with bad modifier error = %v, want InvalidModifier", err)
	}
}

func TestMustParse(t *testing.T) {
	b := MustParse("Odilia+b")
	if b.Key != 'b' {
		t.Errorf("MustParse key = %q", b.Key)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse(invalid) should panic")
		}
	}()
	MustParse("Nope+b")
}

func TestNormalizeSpec(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"odilia+h", "Odilia+h"},
		{"Shift+Odilia+h:1", "Odilia+Shift+h"},
		{"LeftShift+RightShift+q:4", "Shift+q:4"},
		{"meta+rightalt+applications+z", "Applications+RightAlt+Meta+z"},
	}

	for _, tt := range tests {
		got, err := NormalizeSpec(tt.spec)
		if err != nil {
			t.Errorf("NormalizeSpec(%q) error = %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeSpec(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}

	if _, err := NormalizeSpec(""); !errors.Is(err, EmptyString) {
		t.Errorf("NormalizeSpec(\"\") error = %v, want EmptyString", err)
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse("Control+Shift+Alt+Meta+Applications+Odilia+s:3")
	}
}
