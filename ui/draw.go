package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// charWidth is the advance of basicfont.Face7x13.
const charWidth = 7

// Face is the UI font. A GoXFace must not be copied, so it is shared.
var Face = text.NewGoXFace(basicfont.Face7x13)

// DrawText draws s with the top-left corner of its line box at (x, y).
func DrawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, Face, op)
}

// DrawTextCentered draws s centred on (cx, cy).
func DrawTextCentered(dst *ebiten.Image, s string, cx, cy float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, Face, op)
}

// MeasureText returns the size of s drawn on one line.
func MeasureText(s string) (w, h float64) {
	return text.Measure(s, Face, 0)
}

// TruncStr shortens s to maxLen runes, marking the cut with a period.
func TruncStr(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "."
	}
	return string(r[:maxLen-1]) + "."
}

var titleCaser = cases.Title(language.English)

// DisplayName turns a module name such as "pet" into "Pet".
func DisplayName(name string) string {
	return titleCaser.String(name)
}
