package maps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testCatalog() *Catalog {
	return NewCatalog([]Map{
		{ID: 13, TerritoryID: 132, Name: "New Gridania", SizeFactor: 200},
		{ID: 14, TerritoryID: 133, Name: "Old Gridania", SizeFactor: 200},
		{ID: 15, TerritoryID: 133, Name: "Old Gridania (sub)", SizeFactor: 400},
		{ID: 99, TerritoryID: 999, Name: "No Factor"},
	})
}

func TestCatalogLookup(t *testing.T) {
	c := testCatalog()

	if c.Len() != 4 {
		t.Fatalf("Len = %d", c.Len())
	}
	if m, ok := c.ForTerritory(133); !ok || m.ID != 14 {
		t.Errorf("ForTerritory(133) = %+v, %v; want first listed map", m, ok)
	}
	if m, _ := c.Map(99); m.SizeFactor != 100 {
		t.Errorf("missing size factor should default to 100, got %d", m.SizeFactor)
	}
	if _, ok := c.Map(1); ok {
		t.Error("unexpected map 1")
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maps.yaml")
	doc := `maps:
  - id: 13
    territory: 132
    name: New Gridania
    size_factor: 200
    offset_x: -48
    offset_y: 12
    texture: textures/13.png
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	m, ok := c.Map(13)
	if !ok {
		t.Fatal("map 13 missing")
	}
	want := Map{ID: 13, TerritoryID: 132, Name: "New Gridania", SizeFactor: 200, OffsetX: -48, OffsetY: 12, Texture: "textures/13.png"}
	if m != want {
		t.Errorf("got %+v, want %+v", m, want)
	}

	if _, err := LoadCatalog(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestControllerNotifiesOnLoad(t *testing.T) {
	c := NewController(testCatalog())
	if c.Ready() {
		t.Fatal("controller ready before any map")
	}

	var got []uint32
	sub := c.Subscribe(func(d MapData) { got = append(got, d.Map.ID) })

	if err := c.Follow(132, 0); err != nil {
		t.Fatal(err)
	}
	// same map again is not a reload
	if err := c.Follow(132, 13); err != nil {
		t.Fatal(err)
	}
	if err := c.Follow(133, 15); err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 || got[0] != 13 || got[1] != 15 {
		t.Fatalf("notifications = %v", got)
	}
	if m, ok := c.CurrentMap(); !ok || m.ID != 15 {
		t.Errorf("CurrentMap = %+v, %v", m, ok)
	}

	c.Unsubscribe(sub)
	c.Unsubscribe(sub)
	if err := c.Follow(132, 0); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("unsubscribed listener called: %v", got)
	}
}

func TestControllerLoadStopsFollowing(t *testing.T) {
	c := NewController(testCatalog())

	if err := c.Load(14); err != nil {
		t.Fatal(err)
	}
	if c.Following() {
		t.Fatal("Load should turn off follow mode")
	}
	if err := c.Follow(132, 13); err != nil {
		t.Fatal(err)
	}
	if m, _ := c.CurrentMap(); m.ID != 14 {
		t.Errorf("follow moved the map while off: %d", m.ID)
	}

	c.SetFollow(true)
	if err := c.Follow(132, 13); err != nil {
		t.Fatal(err)
	}
	if m, _ := c.CurrentMap(); m.ID != 13 {
		t.Errorf("map = %d, want 13", m.ID)
	}
}

func TestControllerUnknownMap(t *testing.T) {
	c := NewController(testCatalog())

	if err := c.Load(1234); !errors.Is(err, ErrUnknownMap) {
		t.Errorf("Load err = %v", err)
	}
	if err := c.Follow(4321, 0); !errors.Is(err, ErrUnknownMap) {
		t.Errorf("Follow err = %v", err)
	}
	if c.Ready() {
		t.Error("controller should not be ready")
	}
}
