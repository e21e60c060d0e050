package draw

import (
	"math"

	"mappy/geom"
	"mappy/maps"
)

// WorldToTexture converts a top-down world position into map texture space.
func WorldToTexture(pos geom.Vec2, m maps.Map) geom.Vec2 {
	scale := float32(m.SizeFactor) / 100
	offset := geom.Vec2{X: float32(m.OffsetX), Y: float32(m.OffsetY)}
	half := float32(maps.TextureSize / 2)
	return pos.Add(offset).Scale(scale).Add(geom.Vec2{X: half, Y: half})
}

func TextureToScreen(pos geom.Vec2, vp geom.Viewport) geom.Vec2 {
	return pos.Scale(vp.Scale).Add(vp.Pan).Add(vp.Origin)
}

func ScreenToTexture(pos geom.Vec2, vp geom.Viewport) geom.Vec2 {
	if vp.Scale == 0 {
		return geom.Vec2{}
	}
	return pos.Sub(vp.Origin).Sub(vp.Pan).Scale(1 / vp.Scale)
}

func WorldToScreen(pos geom.Vec2, m maps.Map, vp geom.Viewport) geom.Vec2 {
	return TextureToScreen(WorldToTexture(pos, m), vp)
}

func DegreesToRadians(deg float32) float32 {
	return deg * math.Pi / 180
}
