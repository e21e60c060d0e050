package ui

import "testing"

func TestMeasureText(t *testing.T) {
	w, h := MeasureText("Pet:ON")
	if w != 6*charWidth || h != 13 {
		t.Errorf("MeasureText = %v x %v, want %v x 13", w, h, 6*charWidth)
	}
	if w, h := MeasureText(""); w != 0 || h != 0 {
		t.Errorf("empty text measured %v x %v", w, h)
	}
}

func TestTruncStr(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"player", 10, "player"},
		{"player", 4, "pla."},
		{"チョコボ", 3, "チョ."},
		{"pet", 1, "."},
	}
	for _, tt := range tests {
		if got := TruncStr(tt.in, tt.max); got != tt.want {
			t.Errorf("TruncStr(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("pet"); got != "Pet" {
		t.Errorf("DisplayName(pet) = %q", got)
	}
}
