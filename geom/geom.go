package geom

import "math"

type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Polar returns the point at distance r from the origin along angle (radians).
func Polar(r, angle float32) Vec2 {
	sin, cos := math.Sincos(float64(angle))
	return Vec2{r * float32(cos), r * float32(sin)}
}

// Vec3 is a world position as the game stores it: Y is the vertical axis.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// XZ projects onto the top-down map plane.
func (v Vec3) XZ() Vec2 {
	return Vec2{v.X, v.Z}
}

// Viewport is the pan/zoom state of the map window. Origin is the
// top-left of the map area on screen; Cursor is in screen space.
type Viewport struct {
	Pan    Vec2
	Scale  float32
	Origin Vec2
	Cursor Vec2
}
