package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadAppDefaults(t *testing.T) {
	cfg, err := LoadApp()
	if err != nil {
		t.Fatalf("LoadApp: %v", err)
	}
	if cfg.ToggleKey != "CTRL+M" || cfg.WindowWidth != SCREEN_WIDTH || cfg.SettingsDir != "settings" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadAppFromEnv(t *testing.T) {
	t.Setenv("MAPPY_PROCESS", "game.exe")
	t.Setenv("MAPPY_ZOOM", "2")

	cfg, err := LoadApp()
	if err != nil {
		t.Fatalf("LoadApp: %v", err)
	}
	if cfg.ProcessName != "game.exe" || cfg.InitialZoom != 2 {
		t.Errorf("got %+v", cfg)
	}
}

func TestLoadAppRejectsBadValues(t *testing.T) {
	t.Setenv("MAPPY_ZOOM", "50")
	if _, err := LoadApp(); err == nil {
		t.Error("expected zoom validation error")
	}

	t.Setenv("MAPPY_ZOOM", "1")
	t.Setenv("MAPPY_TOGGLE_KEY", "HYPER+M")
	if _, err := LoadApp(); err == nil || !strings.Contains(err.Error(), "toggle key") {
		t.Errorf("expected toggle key error, got %v", err)
	}

	t.Setenv("MAPPY_TOGGLE_KEY", "CTRL+M")
	t.Setenv("MAPPY_WINDOW_WIDTH", "wide")
	if _, err := LoadApp(); err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestLoadOffsets(t *testing.T) {
	def, err := LoadOffsets("")
	if err != nil {
		t.Fatal(err)
	}
	if def.CameraArray != CAMERA_NUMBER_ARRAY || def.CameraSlot != CAMERA_HEADING_SLOT {
		t.Errorf("default camera index = %d/%d", def.CameraArray, def.CameraSlot)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "offsets.yaml")
	profile := "game_version: \"2024.01.01\"\ncamera_number_array: 25\ncamera_heading_slot: 4\n"
	if err := os.WriteFile(path, []byte(profile), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadOffsets(path)
	if err != nil {
		t.Fatalf("LoadOffsets: %v", err)
	}
	if got.GameVersion != "2024.01.01" || got.CameraArray != 25 || got.CameraSlot != 4 {
		t.Errorf("profile not applied: %+v", got)
	}
	if got.ObjectTable != PTR_OBJECT_TABLE {
		t.Errorf("unset fields should keep defaults, object_table = %#x", got.ObjectTable)
	}
}

func TestLoadOffsetsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "offsets.yaml")
	if err := os.WriteFile(path, []byte("object_table_size: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadOffsets(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got.ObjectTableSize != OBJECT_TABLE_SIZE {
		t.Errorf("invalid profile should fall back to defaults, got %+v", got)
	}

	if _, err := LoadOffsets(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing profile")
	}
}

func TestOffsetsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *Offsets)
		wantErr string
	}{
		{"defaults", func(o *Offsets) {}, ""},
		{"position past read size", func(o *Offsets) { o.Object.Position = 0x100 }, "position"},
		{"position straddles end", func(o *Offsets) { o.Object.Position = OBJ_READ_SIZE - 8 }, "position"},
		{"id past read size", func(o *Offsets) { o.Object.ID = OBJ_READ_SIZE }, "id"},
		{"owner past read size", func(o *Offsets) { o.Object.Owner = 0xFFFFFFFFFFFFFFFF }, "owner"},
		{"kind past read size", func(o *Offsets) { o.Object.Kind = OBJ_READ_SIZE }, "kind"},
		{"subkind past read size", func(o *Offsets) { o.Object.SubKind = OBJ_READ_SIZE + 1 }, "subkind"},
		{"rotation past read size", func(o *Offsets) { o.Object.Rotation = OBJ_READ_SIZE - 2 }, "rotation"},
		{"name past read size", func(o *Offsets) { o.Object.NameLen = OBJ_READ_SIZE }, "name"},
		{"negative name length", func(o *Offsets) { o.Object.NameLen = -1 }, "name_len"},
		{"zero read size", func(o *Offsets) { o.Object.ReadSize = 0 }, "read_size"},
		{"zero object table", func(o *Offsets) { o.ObjectTableSize = 0 }, "object_table_size"},
		{"huge object table", func(o *Offsets) { o.ObjectTableSize = MAX_OBJECT_TABLE_SIZE + 1 }, "object_table_size"},
		{"negative party size", func(o *Offsets) { o.PartyMaxMembers = -1 }, "party_max_members"},
		{"huge party size", func(o *Offsets) { o.PartyMaxMembers = MAX_PARTY_MEMBERS + 1 }, "party_max_members"},
		{"negative camera slot", func(o *Offsets) { o.CameraSlot = -1 }, "camera"},
		{"missing version", func(o *Offsets) { o.GameVersion = "" }, "game_version"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOffsets()
			tt.mutate(&o)
			err := o.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadOffsetsRejectsUncoveredField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "offsets.yaml")
	profile := "game_version: x\nobject:\n  position: 0x100\n"
	if err := os.WriteFile(path, []byte(profile), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadOffsets(path)
	if err == nil || !strings.Contains(err.Error(), "position") {
		t.Fatalf("LoadOffsets = %v, want position error", err)
	}
	if got.Object.Position != OFF_OBJ_POSITION {
		t.Errorf("rejected profile should fall back to defaults, position = %#x", got.Object.Position)
	}
}
