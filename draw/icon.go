package draw

import (
	"image/color"

	"mappy/geom"
	"mappy/maps"
)

// IconSize is the on-screen edge length of a map icon at scale 1.
const IconSize = 64

// MapIcon is a draw request built fresh every frame. Exactly one of
// ObjectPosition (world) or TexturePosition is used; TexturePosition wins
// when HasTexturePosition is set.
type MapIcon struct {
	IconID             uint32
	ObjectPosition     geom.Vec2
	TexturePosition    geom.Vec2
	HasTexturePosition bool
	Tooltip            string
	// Zero means "use the style".
	Scale        float32
	TooltipColor *color.NRGBA
}

// Style is what a module configuration contributes to icon drawing.
type Style struct {
	ShowIcon     bool
	IconScale    float32
	ShowTooltip  bool
	TooltipColor color.NRGBA
}

func DrawMapIcon(dl List, icon MapIcon, style Style, vp geom.Viewport, m maps.Map) {
	tex := icon.TexturePosition
	if !icon.HasTexturePosition {
		tex = WorldToTexture(icon.ObjectPosition, m)
	}
	pos := TextureToScreen(tex, vp)

	scale := style.IconScale
	if icon.Scale != 0 {
		scale = icon.Scale
	}
	size := IconSize * scale

	if style.ShowIcon {
		dl.Sprite(icon.IconID, pos, size, 0)
	}

	if style.ShowTooltip && icon.Tooltip != "" && hovered(pos, size, vp.Cursor) {
		clr := style.TooltipColor
		if icon.TooltipColor != nil {
			clr = *icon.TooltipColor
		}
		dl.Tooltip(icon.Tooltip, pos, clr)
	}
}

// DrawIconRotated draws an icon at a texture position oriented by rotation
// (radians). It never shows a tooltip.
func DrawIconRotated(dl List, iconID uint32, tex geom.Vec2, scale, rotation float32, vp geom.Viewport) {
	dl.Sprite(iconID, TextureToScreen(tex, vp), IconSize*scale, rotation)
}

func hovered(center geom.Vec2, size float32, cursor geom.Vec2) bool {
	return cursor.Sub(center).Len() <= size/2
}
