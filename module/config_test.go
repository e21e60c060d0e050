package module

import (
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"

	"mappy/host"
	"mappy/maps"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#a3dbff50", RGBA(0xa3, 0xdb, 0xff, 0x50), false},
		{"9370db", RGBA(0x93, 0x70, 0xdb, 0xff), false},
		{"#fff", Color{}, true},
		{"#zzzzzz", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestConfigYAML(t *testing.T) {
	cfg := Config{
		Enable:  true,
		Layer:   5,
		Icon:    &IconConfig{ShowIcon: true, IconScale: 0.75, SelectedIcon: 60961},
		Tooltip: &TooltipConfig{ShowTooltip: true, TooltipColor: RGBA(147, 112, 219, 255)},
	}
	out, err := yaml.Marshal(&cfg)
	if err != nil {
		t.Fatal(err)
	}

	var back Config
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal %s: %v", out, err)
	}
	if back.Tooltip == nil || back.Tooltip.TooltipColor != cfg.Tooltip.TooltipColor {
		t.Errorf("tooltip lost in %s", out)
	}
	if back.Colors != nil {
		t.Error("absent capability came back")
	}
}

func TestCapabilities(t *testing.T) {
	bare := &Config{Enable: true}
	if _, ok := bare.IconSettings(); ok {
		t.Error("bare config has icon settings")
	}
	if _, ok := bare.ColorSettings(); ok {
		t.Error("bare config has color settings")
	}
	if s := bare.Style(); s.ShowIcon || s.ShowTooltip {
		t.Errorf("bare style = %+v", s)
	}

	full := &Config{
		Icon:    &IconConfig{ShowIcon: true, IconScale: 0.4},
		Tooltip: &TooltipConfig{ShowTooltip: true, TooltipColor: RGBA(1, 2, 3, 4)},
		Colors:  &ColorConfig{FillColor: RGBA(9, 9, 9, 9)},
	}
	s := full.Style()
	if !s.ShowIcon || s.IconScale != 0.4 || !s.ShowTooltip || s.TooltipColor != (color.NRGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("style = %+v", s)
	}
	if c, ok := full.ColorSettings(); !ok || c.FillColor != RGBA(9, 9, 9, 9) {
		t.Errorf("colors = %+v, %v", c, ok)
	}
}

func TestBaseChecks(t *testing.T) {
	snap := &host.Snapshot{Map: 13}
	cfg := &Config{Enable: false}
	b := NewBase(snap, cfg)

	m := maps.Map{ID: 13}
	if b.ShouldDrawMarkers(m) {
		t.Error("disabled base should not draw")
	}
	cfg.Enable = true
	if !b.ShouldDrawMarkers(m) {
		t.Error("enabled base should draw")
	}

	if !b.IsPlayerInCurrentMap(m) || b.IsPlayerInCurrentMap(maps.Map{ID: 14}) {
		t.Error("IsPlayerInCurrentMap mismatch")
	}
	if b.IsLocalPlayerValid() {
		t.Error("no player in snapshot")
	}
	snap.Player = &host.Entity{ID: 7}
	if !b.IsLocalPlayerValid() {
		t.Error("player should be valid")
	}
}
