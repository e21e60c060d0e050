package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider maps its handle position onto [Min, Max] on a log scale, which
// suits zoom factors.
type Slider struct {
	X, Y, W, H float32
	Value      float32
	Min, Max   float32
	Dragging   bool
	Label      string
	Color      color.RGBA
}

func (s *Slider) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= s.X && fx <= s.X+s.W && fy >= s.Y-5 && fy <= s.Y+s.H+5
}

func (s *Slider) SetValueFromX(x int) {
	s.Value = clamp01((float32(x) - s.X) / s.W)
}

// Current returns the mapped value.
func (s *Slider) Current() float32 {
	lo, hi := math.Log(float64(s.Min)), math.Log(float64(s.Max))
	return float32(math.Exp(lo + (hi-lo)*float64(s.Value)))
}

// SetCurrent moves the handle to the given mapped value.
func (s *Slider) SetCurrent(v float32) {
	if s.Max <= s.Min || v <= 0 {
		return
	}
	lo, hi := math.Log(float64(s.Min)), math.Log(float64(s.Max))
	s.Value = clamp01(float32((math.Log(float64(v)) - lo) / (hi - lo)))
}

func (s *Slider) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, s.X, s.Y, s.W, s.H, color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen, s.X, s.Y, s.W*s.Value, s.H, s.Color, false)
	vector.StrokeRect(screen, s.X, s.Y, s.W, s.H, 1, color.RGBA{80, 80, 80, 255}, false)
	handleX := s.X + s.W*s.Value
	vector.DrawFilledRect(screen, handleX-4, s.Y-3, 8, s.H+6, color.RGBA{200, 200, 200, 255}, false)
	labelText := fmt.Sprintf("%s: %.2fx", s.Label, s.Current())
	DrawText(screen, labelText, float64(s.X), float64(s.Y)-17, color.White)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
