package pet

import (
	"testing"

	"mappy/draw"
	"mappy/geom"
	"mappy/host"
	"mappy/maps"
)

var testMap = maps.Map{ID: 13, SizeFactor: 100}

func owned(id, owner uint32, kind host.ObjectKind, sub host.BattleNpcSubKind, name string) host.Entity {
	return host.Entity{ID: id, OwnerID: owner, Kind: kind, SubKind: sub, Name: name, Position: geom.Vec3{X: float32(id), Z: 1}}
}

func TestOnlyPetsAndChocobos(t *testing.T) {
	player := host.Entity{ID: 1, Kind: host.KindPlayer}
	snap := &host.Snapshot{
		Player: &player,
		Map:    13,
		Table: []host.Entity{
			player,
			owned(10, 1, host.KindBattleNpc, host.SubKindChocobo, "Boko"),
			owned(11, 1, host.KindBattleNpc, host.SubKindEnemy, "Striking Dummy"),
			owned(12, 1, host.KindBattleNpc, host.SubKindPet, "Carbuncle"),
		},
	}

	rec := draw.NewRecorder()
	if err := New(snap).DrawMarkers(rec, geom.Viewport{Scale: 1}, testMap); err != nil {
		t.Fatal(err)
	}
	if got := rec.Count(draw.KindSprite); got != 2 {
		t.Fatalf("got %d icons, want 2", got)
	}
	for _, c := range rec.Commands() {
		if c.IconID != IconID {
			t.Errorf("icon = %d", c.IconID)
		}
	}
}

func TestPartyOwnersAndSkipsStrangers(t *testing.T) {
	snap := &host.Snapshot{
		Player: &host.Entity{ID: 1, Kind: host.KindPlayer},
		Map:    13,
		Party: []host.Entity{
			{ID: 1, Kind: host.KindPlayer},
			{ID: 2, Kind: host.KindPlayer},
		},
		Table: []host.Entity{
			owned(10, 1, host.KindBattleNpc, host.SubKindPet, "Eos"),
			owned(11, 2, host.KindBattleNpc, host.SubKindChocobo, "Boko"),
			owned(12, 3, host.KindBattleNpc, host.SubKindPet, "Stranger's pet"),
			owned(13, 2, host.KindEventNpc, host.SubKindPet, "Not a battle npc"),
		},
	}

	rec := draw.NewRecorder()
	if err := New(snap).DrawMarkers(rec, geom.Viewport{Scale: 1}, testMap); err != nil {
		t.Fatal(err)
	}
	if got := rec.Count(draw.KindSprite); got != 2 {
		t.Errorf("got %d icons, want 2", got)
	}
}

func TestTooltipOnHover(t *testing.T) {
	player := host.Entity{ID: 1, Kind: host.KindPlayer}
	pet := owned(10, 1, host.KindBattleNpc, host.SubKindPet, "Carbuncle")
	snap := &host.Snapshot{Player: &player, Map: 13, Table: []host.Entity{pet}}

	vp := geom.Viewport{Scale: 1}
	vp.Cursor = draw.WorldToScreen(pet.Position.XZ(), testMap, vp)

	rec := draw.NewRecorder()
	if err := New(snap).DrawMarkers(rec, vp, testMap); err != nil {
		t.Fatal(err)
	}
	cmds := rec.Commands()
	if len(cmds) != 2 || cmds[1].Kind != draw.KindTooltip || cmds[1].Text != "Carbuncle" {
		t.Fatalf("got %+v", cmds)
	}
	if cmds[1].Color.R != 147 || cmds[1].Color.G != 112 || cmds[1].Color.B != 219 {
		t.Errorf("tooltip color = %v", cmds[1].Color)
	}
}

func TestEligibility(t *testing.T) {
	snap := &host.Snapshot{Map: 13}
	p := New(snap)

	if !p.ShouldDrawMarkers(testMap) {
		t.Error("should draw on the player's map")
	}
	if p.ShouldDrawMarkers(maps.Map{ID: 99}) {
		t.Error("drew on another map")
	}
	p.config.Enable = false
	if p.ShouldDrawMarkers(testMap) {
		t.Error("disabled module drew")
	}
}
