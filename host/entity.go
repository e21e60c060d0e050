package host

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"mappy/geom"
)

// ObjectKind mirrors the game's object kind byte.
type ObjectKind uint8

const (
	KindNone ObjectKind = iota
	KindPlayer
	KindBattleNpc
	KindEventNpc
	KindTreasure
	KindAetheryte
	KindGatheringPoint
	KindEventObj
	KindMount
	KindCompanion
	KindRetainer
	KindArea
	KindHousing
	KindCutscene
	KindCardStand
)

var objectKindNames = map[ObjectKind]string{
	KindNone:           "none",
	KindPlayer:         "player",
	KindBattleNpc:      "battle_npc",
	KindEventNpc:       "event_npc",
	KindTreasure:       "treasure",
	KindAetheryte:      "aetheryte",
	KindGatheringPoint: "gathering_point",
	KindEventObj:       "event_obj",
	KindMount:          "mount",
	KindCompanion:      "companion",
	KindRetainer:       "retainer",
	KindArea:           "area",
	KindHousing:        "housing",
	KindCutscene:       "cutscene",
	KindCardStand:      "card_stand",
}

func (k ObjectKind) String() string {
	if s, ok := objectKindNames[k]; ok {
		return s
	}
	return strconv.Itoa(int(k))
}

func (k ObjectKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

func (k *ObjectKind) UnmarshalYAML(value *yaml.Node) error {
	v, err := parseEnum(value.Value, objectKindNames)
	if err != nil {
		return fmt.Errorf("object kind: %w", err)
	}
	*k = v
	return nil
}

// BattleNpcSubKind is only meaningful for KindBattleNpc.
type BattleNpcSubKind uint8

const (
	SubKindNone    BattleNpcSubKind = 0
	SubKindPart    BattleNpcSubKind = 1
	SubKindPet     BattleNpcSubKind = 2
	SubKindChocobo BattleNpcSubKind = 3
	SubKindEnemy   BattleNpcSubKind = 5
)

var subKindNames = map[BattleNpcSubKind]string{
	SubKindNone:    "none",
	SubKindPart:    "part",
	SubKindPet:     "pet",
	SubKindChocobo: "chocobo",
	SubKindEnemy:   "enemy",
}

func (k BattleNpcSubKind) String() string {
	if s, ok := subKindNames[k]; ok {
		return s
	}
	return strconv.Itoa(int(k))
}

func (k BattleNpcSubKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

func (k *BattleNpcSubKind) UnmarshalYAML(value *yaml.Node) error {
	v, err := parseEnum(value.Value, subKindNames)
	if err != nil {
		return fmt.Errorf("battle npc subkind: %w", err)
	}
	*k = v
	return nil
}

func parseEnum[K ~uint8](s string, names map[K]string) (K, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range names {
		if name == s {
			return k, nil
		}
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("unknown value %q", s)
	}
	return K(n), nil
}

// Entity is a copy of one game object, valid for the frame it was read in.
type Entity struct {
	ID       uint32           `yaml:"id"`
	OwnerID  uint32           `yaml:"owner,omitempty"`
	Kind     ObjectKind       `yaml:"kind"`
	SubKind  BattleNpcSubKind `yaml:"subkind,omitempty"`
	Name     string           `yaml:"name"`
	Position geom.Vec3        `yaml:"position"`
	Rotation float32          `yaml:"rotation,omitempty"`
}

// InvalidID is the game's "no object" id.
const InvalidID = 0xE0000000

func (e Entity) Valid() bool {
	return e.ID != 0 && e.ID != InvalidID
}
