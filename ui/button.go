package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var colorBorder = color.RGBA{100, 100, 100, 255}

// Button is a clickable rectangle with a centred label. Hovered is set by the
// owner each frame.
type Button struct {
	X, Y, W, H float32
	Label      string
	Hovered    bool
}

func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.W && fy >= b.Y && fy <= b.Y+b.H
}

func (b *Button) Draw(screen *ebiten.Image, bgColor, hoverColor color.Color) {
	c := bgColor
	if b.Hovered {
		c = hoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, c, false)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 1, colorBorder, false)

	label := TruncStr(b.Label, int(b.W-8)/charWidth)
	DrawTextCentered(screen, label, float64(b.X+b.W/2), float64(b.Y+b.H/2), color.White)
}
