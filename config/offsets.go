package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Offsets is a versioned memory layout profile for one game build.
type Offsets struct {
	GameVersion string `yaml:"game_version"`
	Module      string `yaml:"module"`

	ObjectTable     uint64 `yaml:"object_table"`
	ObjectTableSize int    `yaml:"object_table_size"`
	PartyList       uint64 `yaml:"party_list"`
	PartyMemberSize uint64 `yaml:"party_member_size"`
	PartyMaxMembers int    `yaml:"party_max_members"`
	PartyCount      uint64 `yaml:"party_count"`
	PartyObjectID   uint64 `yaml:"party_object_id"`
	Territory       uint64 `yaml:"territory"`
	MapID           uint64 `yaml:"map_id"`

	AtkStage        uint64 `yaml:"atk_stage"`
	AtkArrayHolder  uint64 `yaml:"atk_array_holder"`
	NumberArrays    uint64 `yaml:"number_arrays"`
	IntArray        uint64 `yaml:"int_array"`
	IntArraySize    uint64 `yaml:"int_array_size"`
	CameraArray     int    `yaml:"camera_number_array"`
	CameraSlot      int    `yaml:"camera_heading_slot"`

	Object ObjectOffsets `yaml:"object"`
}

type ObjectOffsets struct {
	Name     uint64 `yaml:"name"`
	NameLen  int    `yaml:"name_len"`
	ID       uint64 `yaml:"id"`
	Owner    uint64 `yaml:"owner"`
	Kind     uint64 `yaml:"kind"`
	SubKind  uint64 `yaml:"subkind"`
	Position uint64 `yaml:"position"`
	Rotation uint64 `yaml:"rotation"`
	ReadSize int    `yaml:"read_size"`
}

func DefaultOffsets() Offsets {
	return Offsets{
		GameVersion:     DEFAULT_GAME_VERSION,
		Module:          "ffxiv_dx11.exe",
		ObjectTable:     PTR_OBJECT_TABLE,
		ObjectTableSize: OBJECT_TABLE_SIZE,
		PartyList:       PTR_PARTY_LIST,
		PartyMemberSize: PARTY_MEMBER_SIZE,
		PartyMaxMembers: PARTY_MAX_MEMBERS,
		PartyCount:      OFF_PARTY_COUNT,
		PartyObjectID:   OFF_PARTY_OBJID,
		Territory:       PTR_TERRITORY,
		MapID:           PTR_MAP_ID,
		AtkStage:        PTR_ATK_STAGE,
		AtkArrayHolder:  OFF_ATK_ARRAY_HOLDER,
		NumberArrays:    OFF_NUMBER_ARRAYS,
		IntArray:        OFF_INT_ARRAY,
		IntArraySize:    OFF_INT_ARRAY_SIZE,
		CameraArray:     CAMERA_NUMBER_ARRAY,
		CameraSlot:      CAMERA_HEADING_SLOT,
		Object: ObjectOffsets{
			Name:     OFF_OBJ_NAME,
			NameLen:  OBJ_NAME_LEN,
			ID:       OFF_OBJ_ID,
			Owner:    OFF_OBJ_OWNER,
			Kind:     OFF_OBJ_KIND,
			SubKind:  OFF_OBJ_SUBKIND,
			Position: OFF_OBJ_POSITION,
			Rotation: OFF_OBJ_ROTATION,
			ReadSize: OBJ_READ_SIZE,
		},
	}
}

// LoadOffsets reads a profile over the defaults. An empty filename returns
// the defaults.
func LoadOffsets(filename string) (Offsets, error) {
	offsets := DefaultOffsets()
	if filename == "" {
		return offsets, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return offsets, fmt.Errorf("read offsets profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &offsets); err != nil {
		return DefaultOffsets(), fmt.Errorf("parse offsets profile %s: %w", filename, err)
	}
	if err := offsets.Validate(); err != nil {
		return DefaultOffsets(), fmt.Errorf("offsets profile %s: %w", filename, err)
	}
	return offsets, nil
}

// Validate rejects profiles that would make a snapshot decode index outside
// the buffers sized from the profile.
func (o Offsets) Validate() error {
	switch {
	case o.GameVersion == "":
		return fmt.Errorf("game_version is required")
	case o.ObjectTableSize <= 0 || o.ObjectTableSize > MAX_OBJECT_TABLE_SIZE:
		return fmt.Errorf("object_table_size %d out of range 1..%d", o.ObjectTableSize, MAX_OBJECT_TABLE_SIZE)
	case o.PartyMaxMembers <= 0 || o.PartyMaxMembers > MAX_PARTY_MEMBERS:
		return fmt.Errorf("party_max_members %d out of range 1..%d", o.PartyMaxMembers, MAX_PARTY_MEMBERS)
	case o.CameraSlot < 0 || o.CameraArray < 0:
		return fmt.Errorf("camera indexes must not be negative")
	}
	return o.Object.validate()
}

func (o ObjectOffsets) validate() error {
	if o.ReadSize <= 0 || o.ReadSize > MAX_OBJ_READ_SIZE {
		return fmt.Errorf("object read_size %#x out of range 1..%#x", o.ReadSize, MAX_OBJ_READ_SIZE)
	}
	if o.NameLen < 0 {
		return fmt.Errorf("object name_len %d must not be negative", o.NameLen)
	}

	fields := []struct {
		name   string
		off    uint64
		length uint64
	}{
		{"id", o.ID, 4},
		{"owner", o.Owner, 4},
		{"kind", o.Kind, 1},
		{"subkind", o.SubKind, 1},
		{"position", o.Position, 12},
		{"rotation", o.Rotation, 4},
		{"name", o.Name, uint64(o.NameLen)},
	}
	size := uint64(o.ReadSize)
	for _, f := range fields {
		if f.off > size || f.length > size-f.off {
			return fmt.Errorf("object read_size %#x does not cover %s at %#x+%d", o.ReadSize, f.name, f.off, f.length)
		}
	}
	return nil
}
