package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mappy/input"
)

type hotkey struct {
	combo input.KeyCombo
	key   ebiten.Key
}

func newHotkey(spec string) (hotkey, error) {
	combo, err := input.ParseKeyCombo(spec)
	if err != nil {
		return hotkey{}, err
	}
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(combo.Key)); err != nil {
		return hotkey{}, fmt.Errorf("hotkey %q: %w", spec, err)
	}
	return hotkey{combo: combo, key: key}, nil
}

// justPressed reports whether the main key went down this tick with exactly
// the configured modifiers held.
func (h hotkey) justPressed() bool {
	if !inpututil.IsKeyJustPressed(h.key) {
		return false
	}
	held := map[input.Modifier]ebiten.Key{
		input.ModCtrl:  ebiten.KeyControl,
		input.ModShift: ebiten.KeyShift,
		input.ModAlt:   ebiten.KeyAlt,
	}
	for mod, key := range held {
		if (h.combo.Modifiers&mod != 0) != ebiten.IsKeyPressed(key) {
			return false
		}
	}
	return true
}

func (h hotkey) String() string {
	return h.combo.String()
}
