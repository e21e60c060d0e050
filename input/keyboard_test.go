package input

import (
	"errors"
	"testing"
)

func TestParseKeyCombo(t *testing.T) {
	tests := []struct {
		in   string
		mods Modifier
		key  string
	}{
		{"CTRL+M", ModCtrl, "M"},
		{"ctrl + shift + f5", ModCtrl | ModShift, "F5"},
		{"LALT+1", ModAlt, "Digit1"},
		{"F12", 0, "F12"},
		{"numpad3", 0, "Numpad3"},
		{"SHIFT+`", ModShift, "Backquote"},
	}
	for _, tt := range tests {
		got, err := ParseKeyCombo(tt.in)
		if err != nil {
			t.Errorf("ParseKeyCombo(%q): %v", tt.in, err)
			continue
		}
		if got.Modifiers != tt.mods || got.Key != tt.key {
			t.Errorf("ParseKeyCombo(%q) = %+v", tt.in, got)
		}
	}
}

func TestParseKeyComboErrors(t *testing.T) {
	for _, in := range []string{"", "CTRL+", "HYPER+M", "CTRL+F13", "M+CTRL", "+"} {
		if _, err := ParseKeyCombo(in); !errors.Is(err, ErrUnknownKey) {
			t.Errorf("ParseKeyCombo(%q) err = %v", in, err)
		}
	}
}

func TestKeyComboString(t *testing.T) {
	c, err := ParseKeyCombo("shift+ctrl+m")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.String(); got != "CTRL+SHIFT+M" {
		t.Errorf("String() = %q", got)
	}
}
