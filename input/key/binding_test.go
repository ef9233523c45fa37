package key

import (
	"errors"
	"testing"

	"github.com/odilia-app/odilia-common/input/mode"
)

func TestBindingString(t *testing.T) {
	tests := []struct {
		binding KeyBinding
		want    string
	}{
		{KeyBinding{Key: 'h', Mods: Odilia, Repeat: 1, Mode: mode.CommandMode}, "Odilia+h"},
		{KeyBinding{Key: 'a', Repeat: 1, Mode: mode.CommandMode}, "a"},
		{KeyBinding{Key: 's', Mods: Control | Shift | Alt | Meta | Applications | Odilia, Repeat: 3, Mode: mode.CommandMode}, "Odilia+Applications+Control+Alt+Shift+Meta+s:3"},
		{KeyBinding{Key: '.', Mods: ControlL | ShiftL | AltL | MetaL, Repeat: 2, Mode: mode.CommandMode}, "LeftControl+LeftAlt+LeftShift+LeftMeta+.:2"},
	}

	for _, tt := range tests {
		if got := tt.binding.String(); got != tt.want {
			t.Errorf("KeyBinding.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBindingRoundTrip(t *testing.T) {
	keys := []rune{'a', 'Z', '.', '1', '/', 'é', '中'}
	mods := []Modifiers{ModNone, Odilia, ControlL, ControlR, Control, AltR | ShiftL, Meta | Applications, 0x3ff}
	repeats := []uint8{1, 2, 255}

	for _, k := range keys {
		for _, m := range mods {
			for _, r := range repeats {
				want := KeyBinding{Key: k, Mods: m, Repeat: r, Mode: mode.CommandMode}
				got, err := Parse(want.String())
				if err != nil {
					t.Errorf("Parse(%q) error = %v", want.String(), err)
					continue
				}
				if got != want {
					t.Errorf("Parse(%q) = %+v, want %+v", want.String(), got, want)
				}
			}
		}
	}
}

func TestBindingEqualityAndHash(t *testing.T) {
	a := MustParse("Control+Odilia+h:2")
	b := MustParse("odilia+control+h:2")
	if a != b {
		t.Errorf("equal bindings compare unequal: %+v vs %+v", a, b)
	}

	set := map[KeyBinding]int{a: 1}
	if set[b] != 1 {
		t.Error("equal bindings should hash to the same map entry")
	}

	c := MustParse("Control+Odilia+h:3")
	if _, ok := set[c]; ok {
		t.Error("different repeat should be a different key")
	}

	d := a
	d.Mode = mode.BrowseMode
	if a == d {
		t.Error("different mode should make bindings unequal")
	}
}

func TestBindingValidate(t *testing.T) {
	valid := MustParse("Odilia+h")
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() on parsed binding = %v", err)
	}

	tests := []struct {
		name    string
		binding KeyBinding
		want    KeyFromStrError
	}{
		{"zero", KeyBinding{}, NoKey},
		{"plus key", KeyBinding{Key: '+', Repeat: 1, Mode: mode.CommandMode}, InvalidKey},
		{"colon key", KeyBinding{Key: ':', Repeat: 1, Mode: mode.CommandMode}, InvalidKey},
		{"space key", KeyBinding{Key: ' ', Repeat: 1, Mode: mode.CommandMode}, InvalidKey},
		{"zero repeat", KeyBinding{Key: 'a', Mode: mode.CommandMode}, InvalidRepeat},
		{"stray bits", KeyBinding{Key: 'a', Mods: 1 << 12, Repeat: 1, Mode: mode.CommandMode}, InvalidModifier},
		{"no mode", KeyBinding{Key: 'a', Repeat: 1}, InvalidMode},
	}

	for _, tt := range tests {
		err := tt.binding.Validate()
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: Validate() = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestParsedBindingsValidate(t *testing.T) {
	for r := rune(0); r < 0x3000; r++ {
		spec := "Odilia+" + string(r) + ":2"
		b, err := Parse(spec)
		if err != nil {
			continue
		}
		if err := b.Validate(); err != nil {
			t.Errorf("Parse(%q) accepted a binding that Validate rejects: %v", spec, err)
		}
		if _, err := b.MarshalText(); err != nil {
			t.Errorf("Parse(%q) accepted a binding that MarshalText rejects: %v", spec, err)
		}
	}
}

func TestBindingTextMarshaling(t *testing.T) {
	b := MustParse("LeftShift+Odilia+k:2")
	text, err := b.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "Odilia+LeftShift+k:2" {
		t.Errorf("MarshalText() = %q", text)
	}

	var decoded KeyBinding
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if decoded != b {
		t.Errorf("UnmarshalText() = %+v, want %+v", decoded, b)
	}

	if err := decoded.UnmarshalText([]byte("Hyper+k")); !errors.Is(err, InvalidModifier) {
		t.Errorf("UnmarshalText(Hyper+k) error = %v, want InvalidModifier", err)
	}

	if _, err := (KeyBinding{}).MarshalText(); err == nil {
		t.Error("MarshalText() on zero binding should fail")
	}
}
