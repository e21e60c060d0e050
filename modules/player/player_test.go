package player

import (
	"math"
	"testing"

	"mappy/draw"
	"mappy/geom"
	"mappy/host"
	"mappy/maps"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func angleOf(from, to geom.Vec2) float32 {
	d := to.Sub(from)
	return float32(math.Atan2(float64(d.Y), float64(d.X)))
}

// sameAngle compares modulo a full turn.
func sameAngle(a, b float32) bool {
	d := math.Mod(float64(a-b), 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d < 1e-3 || 2*math.Pi-d < 1e-3
}

var testMap = maps.Map{ID: 13, TerritoryID: 132, SizeFactor: 100}

func snapshot(raw int32) *host.Snapshot {
	return &host.Snapshot{
		Player: &host.Entity{ID: 1, Kind: host.KindPlayer, Position: geom.Vec3{X: 10, Y: 99, Z: -20}},
		Map:    13,
		UI:     host.UIState{Ints: []int32{0, 0, 0, raw}, CameraHeadingIndex: 3},
	}
}

func TestHeading(t *testing.T) {
	if got := Heading(0); !approx(got, -math.Pi/2) {
		t.Errorf("Heading(0) = %v", got)
	}
	if got := Heading(90); !approx(got, -math.Pi) {
		t.Errorf("Heading(90) = %v", got)
	}
}

func TestConeBoundaryLines(t *testing.T) {
	p := New(snapshot(30))
	rec := draw.NewRecorder()
	vp := geom.Viewport{Scale: 0.5}

	if err := p.DrawMarkers(rec, vp, testMap); err != nil {
		t.Fatal(err)
	}

	var lines []draw.Command
	for _, c := range rec.Commands() {
		if c.Kind == draw.KindLine {
			lines = append(lines, c)
		}
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}

	heading := Heading(30)
	center := draw.WorldToScreen(geom.Vec2{X: 10, Y: -20}, testMap, vp)
	wantAngles := []float32{heading - math.Pi/4, heading + math.Pi/4}
	for i, l := range lines {
		if !approx(l.Points[0].X, center.X) || !approx(l.Points[0].Y, center.Y) {
			t.Errorf("line %d starts at %v, want %v", i, l.Points[0], center)
		}
		if got := angleOf(l.Points[0], l.Points[1]); !sameAngle(got, wantAngles[i]) {
			t.Errorf("line %d angle = %v, want %v", i, got, wantAngles[i])
		}
		if got := l.Points[1].Sub(l.Points[0]).Len(); !approx(got, 45) {
			t.Errorf("line %d length = %v, want radius * scale", i, got)
		}
	}

	if rec.Count(draw.KindPolyline) != 1 || rec.Count(draw.KindPolygon) != 1 {
		t.Errorf("arc/wedge missing: %+v", rec.Commands())
	}
	if rec.Count(draw.KindSprite) != 1 {
		t.Error("player icon missing")
	}
}

func TestIconRotatedByHeading(t *testing.T) {
	p := New(snapshot(0))
	p.config.ShowCone = false
	rec := draw.NewRecorder()

	if err := p.DrawMarkers(rec, geom.Viewport{Scale: 1}, testMap); err != nil {
		t.Fatal(err)
	}
	cmds := rec.Commands()
	if len(cmds) != 1 || cmds[0].Kind != draw.KindSprite {
		t.Fatalf("got %+v", cmds)
	}
	// raw 0 faces north, which is the upright icon
	if cmds[0].IconID != IconID || !approx(cmds[0].Rotation, 0) {
		t.Errorf("sprite = %+v", cmds[0])
	}
	if !approx(cmds[0].Size, draw.IconSize*0.40) {
		t.Errorf("size = %v", cmds[0].Size)
	}
}

func TestNoHeadingSkipsCone(t *testing.T) {
	snap := snapshot(0)
	snap.UI = host.UIState{}
	p := New(snap)
	rec := draw.NewRecorder()

	if err := p.DrawMarkers(rec, geom.Viewport{Scale: 1}, testMap); err != nil {
		t.Fatal(err)
	}
	if rec.Count(draw.KindLine) != 0 || rec.Count(draw.KindSprite) != 1 {
		t.Fatalf("got %+v", rec.Commands())
	}
	for _, cmd := range rec.Commands() {
		if cmd.Kind == draw.KindSprite && cmd.Rotation != 0 {
			t.Errorf("icon without heading rotated by %v", cmd.Rotation)
		}
	}
}

func TestEligibility(t *testing.T) {
	snap := snapshot(0)
	p := New(snap)

	if !p.ShouldDrawMarkers(testMap) {
		t.Error("should draw on own map")
	}
	if p.ShouldDrawMarkers(maps.Map{ID: 14}) {
		t.Error("should not draw on another map")
	}

	p.config.Enable = false
	if p.ShouldDrawMarkers(testMap) {
		t.Error("disabled module drew")
	}

	p.config.Enable = true
	snap.Player = nil
	if p.ShouldDrawMarkers(testMap) {
		t.Error("drew without a local player")
	}
}
