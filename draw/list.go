package draw

import (
	"image/color"
	"math"

	"mappy/geom"
)

// List is the per-frame GUI draw list. Modules only issue commands to it.
type List interface {
	Line(from, to geom.Vec2, clr color.NRGBA, thickness float32)
	// PathArcTo appends an arc from start to stop (radians) to the current path.
	PathArcTo(center geom.Vec2, radius, start, stop float32)
	PathLineTo(p geom.Vec2)
	// PathStroke draws the current path as an open polyline and clears it.
	PathStroke(clr color.NRGBA, thickness float32)
	// PathFillConvex fills the current path as a convex polygon and clears it.
	PathFillConvex(clr color.NRGBA)
	// Sprite rotation is clockwise radians; zero draws the icon upright.
	Sprite(iconID uint32, center geom.Vec2, size, rotation float32)
	Tooltip(text string, at geom.Vec2, clr color.NRGBA)
}

type Kind int

const (
	KindLine Kind = iota
	KindPolyline
	KindPolygon
	KindSprite
	KindTooltip
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindPolyline:
		return "polyline"
	case KindPolygon:
		return "polygon"
	case KindSprite:
		return "sprite"
	case KindTooltip:
		return "tooltip"
	}
	return "unknown"
}

// Command is one recorded primitive. Which fields are set depends on Kind.
type Command struct {
	Kind      Kind
	Points    []geom.Vec2
	Color     color.NRGBA
	Thickness float32
	IconID    uint32
	Size      float32
	Rotation  float32
	Text      string
}

// ArcSegments is the tessellation used for PathArcTo.
const ArcSegments = 32

// Recorder is a List that keeps the commands of one frame for replay.
type Recorder struct {
	commands []Command
	path     []geom.Vec2
}

func NewRecorder() *Recorder {
	return &Recorder{
		commands: make([]Command, 0, 64),
	}
}

func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.path = r.path[:0]
}

func (r *Recorder) Commands() []Command {
	return r.commands
}

// Count returns how many recorded commands have the given kind.
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, c := range r.commands {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) Line(from, to geom.Vec2, clr color.NRGBA, thickness float32) {
	r.commands = append(r.commands, Command{
		Kind:      KindLine,
		Points:    []geom.Vec2{from, to},
		Color:     clr,
		Thickness: thickness,
	})
}

func (r *Recorder) PathArcTo(center geom.Vec2, radius, start, stop float32) {
	if radius <= 0 {
		r.path = append(r.path, center)
		return
	}
	step := (stop - start) / ArcSegments
	for i := 0; i <= ArcSegments; i++ {
		a := float64(start + step*float32(i))
		r.path = append(r.path, geom.Vec2{
			X: center.X + radius*float32(math.Cos(a)),
			Y: center.Y + radius*float32(math.Sin(a)),
		})
	}
}

func (r *Recorder) PathLineTo(p geom.Vec2) {
	r.path = append(r.path, p)
}

func (r *Recorder) PathStroke(clr color.NRGBA, thickness float32) {
	if len(r.path) >= 2 {
		r.commands = append(r.commands, Command{
			Kind:      KindPolyline,
			Points:    r.takePath(),
			Color:     clr,
			Thickness: thickness,
		})
	}
	r.path = r.path[:0]
}

func (r *Recorder) PathFillConvex(clr color.NRGBA) {
	if len(r.path) >= 3 {
		r.commands = append(r.commands, Command{
			Kind:   KindPolygon,
			Points: r.takePath(),
			Color:  clr,
		})
	}
	r.path = r.path[:0]
}

func (r *Recorder) Sprite(iconID uint32, center geom.Vec2, size, rotation float32) {
	r.commands = append(r.commands, Command{
		Kind:     KindSprite,
		Points:   []geom.Vec2{center},
		IconID:   iconID,
		Size:     size,
		Rotation: rotation,
	})
}

func (r *Recorder) Tooltip(text string, at geom.Vec2, clr color.NRGBA) {
	r.commands = append(r.commands, Command{
		Kind:   KindTooltip,
		Points: []geom.Vec2{at},
		Color:  clr,
		Text:   text,
	})
}

func (r *Recorder) takePath() []geom.Vec2 {
	pts := make([]geom.Vec2, len(r.path))
	copy(pts, r.path)
	return pts
}
