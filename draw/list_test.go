package draw

import (
	"image/color"
	"math"
	"testing"

	"mappy/geom"
)

func TestRecorderArcStroke(t *testing.T) {
	rec := NewRecorder()
	center := geom.Vec2{X: 100, Y: 100}
	rec.PathArcTo(center, 10, 0, math.Pi/2)
	rec.PathStroke(color.NRGBA{A: 255}, 2)

	cmds := rec.Commands()
	if len(cmds) != 1 || cmds[0].Kind != KindPolyline {
		t.Fatalf("got %+v", cmds)
	}
	pts := cmds[0].Points
	if len(pts) != ArcSegments+1 {
		t.Fatalf("got %d points", len(pts))
	}
	if !approx(pts[0].X, 110) || !approx(pts[0].Y, 100) {
		t.Errorf("arc start = %v", pts[0])
	}
	if last := pts[len(pts)-1]; !approx(last.X, 100) || !approx(last.Y, 110) {
		t.Errorf("arc end = %v", last)
	}
}

func TestRecorderFillClearsPath(t *testing.T) {
	rec := NewRecorder()
	rec.PathLineTo(geom.Vec2{X: 0, Y: 0})
	rec.PathLineTo(geom.Vec2{X: 1, Y: 0})
	rec.PathLineTo(geom.Vec2{X: 0, Y: 1})
	rec.PathFillConvex(color.NRGBA{R: 1, A: 255})

	// a lone point is not a polyline
	rec.PathLineTo(geom.Vec2{X: 5, Y: 5})
	rec.PathStroke(color.NRGBA{}, 1)

	if len(rec.Commands()) != 1 || rec.Count(KindPolygon) != 1 {
		t.Fatalf("got %+v", rec.Commands())
	}
	if n := len(rec.Commands()[0].Points); n != 3 {
		t.Errorf("polygon has %d points", n)
	}

	rec.Reset()
	if len(rec.Commands()) != 0 {
		t.Errorf("Reset kept %d commands", len(rec.Commands()))
	}
}

func TestKindString(t *testing.T) {
	if KindPolygon.String() != "polygon" || Kind(99).String() != "unknown" {
		t.Error("unexpected Kind names")
	}
}
