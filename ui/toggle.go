package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Toggle is a labelled on/off button bound to a bool owned elsewhere.
type Toggle struct {
	Name   string
	Button *Button
	Value  *bool
}

func NewToggle(name string, value *bool, x, y, w, h float32) *Toggle {
	t := &Toggle{
		Name:   name,
		Value:  value,
		Button: &Button{X: x, Y: y, W: w, H: h},
	}
	t.refresh()
	return t
}

// Click flips the value if (x, y) is on the button.
func (t *Toggle) Click(x, y int) bool {
	if !t.Button.Contains(x, y) {
		return false
	}
	*t.Value = !*t.Value
	t.refresh()
	return true
}

func (t *Toggle) Hover(x, y int) {
	t.Button.Hovered = t.Button.Contains(x, y)
	t.refresh()
}

func (t *Toggle) refresh() {
	state := "OFF"
	if *t.Value {
		state = "ON"
	}
	t.Button.Label = t.Name + ":" + state
}

var (
	colorOn      = color.RGBA{40, 110, 60, 255}
	colorOnHover = color.RGBA{50, 140, 75, 255}
	colorOff     = color.RGBA{60, 60, 68, 255}
	colorOffHov  = color.RGBA{80, 80, 90, 255}
)

func (t *Toggle) Draw(screen *ebiten.Image) {
	if *t.Value {
		t.Button.Draw(screen, colorOn, colorOnHover)
		return
	}
	t.Button.Draw(screen, colorOff, colorOffHov)
}
