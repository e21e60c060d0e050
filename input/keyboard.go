// Package input parses hotkey strings such as "CTRL+M" or "SHIFT+F5".
package input

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKey = errors.New("unknown key")

type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

func (m Modifier) String() string {
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "CTRL")
	}
	if m&ModShift != 0 {
		parts = append(parts, "SHIFT")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "ALT")
	}
	return strings.Join(parts, "+")
}

var modifierMap = map[string]Modifier{
	"SHIFT":    ModShift,
	"LSHIFT":   ModShift,
	"RSHIFT":   ModShift,
	"CTRL":     ModCtrl,
	"CONTROL":  ModCtrl,
	"LCTRL":    ModCtrl,
	"LCONTROL": ModCtrl,
	"RCTRL":    ModCtrl,
	"RCONTROL": ModCtrl,
	"ALT":      ModAlt,
	"LALT":     ModAlt,
	"RALT":     ModAlt,
}

// keyNameMap translates the short names users write into the key names the
// window toolkit understands. Letters and F-keys pass through unchanged.
var keyNameMap = map[string]string{
	"1": "Digit1", "2": "Digit2", "3": "Digit3", "4": "Digit4", "5": "Digit5",
	"6": "Digit6", "7": "Digit7", "8": "Digit8", "9": "Digit9", "0": "Digit0",
	"SPACE": "Space", "ENTER": "Enter", "TAB": "Tab",
	"ESC": "Escape", "ESCAPE": "Escape",
	"BACKSPACE": "Backspace", "DELETE": "Delete", "INSERT": "Insert",
	"HOME": "Home", "END": "End", "PAGEUP": "PageUp", "PAGEDOWN": "PageDown",
	"UP": "ArrowUp", "DOWN": "ArrowDown", "LEFT": "ArrowLeft", "RIGHT": "ArrowRight",
	"NUMPAD0": "Numpad0", "NUMPAD1": "Numpad1", "NUMPAD2": "Numpad2", "NUMPAD3": "Numpad3",
	"NUMPAD4": "Numpad4", "NUMPAD5": "Numpad5", "NUMPAD6": "Numpad6", "NUMPAD7": "Numpad7",
	"NUMPAD8": "Numpad8", "NUMPAD9": "Numpad9",
	"NUM0": "Numpad0", "NUM1": "Numpad1", "NUM2": "Numpad2", "NUM3": "Numpad3",
	"NUM4": "Numpad4", "NUM5": "Numpad5", "NUM6": "Numpad6", "NUM7": "Numpad7",
	"NUM8": "Numpad8", "NUM9": "Numpad9",
	"`": "Backquote", "TILDE": "Backquote", "~": "Backquote",
	"-": "Minus", "=": "Equal",
	"[": "BracketLeft", "]": "BracketRight", "\\": "Backslash",
	";": "Semicolon", "'": "Quote",
	",": "Comma", ".": "Period", "/": "Slash",
}

// KeyCombo is a parsed hotkey. Key is the toolkit name of the main key.
type KeyCombo struct {
	Modifiers Modifier
	Key       string
	RawString string
}

func (c KeyCombo) String() string {
	if c.Modifiers == 0 {
		return c.Key
	}
	return c.Modifiers.String() + "+" + c.Key
}

// ParseKeyCombo converts a string such as "CTRL+M" into a KeyCombo. The
// last part is the main key; every other part must be a modifier.
func ParseKeyCombo(keyStr string) (KeyCombo, error) {
	combo := KeyCombo{RawString: keyStr}

	norm := strings.ToUpper(strings.TrimSpace(keyStr))
	if norm == "" {
		return combo, fmt.Errorf("empty hotkey: %w", ErrUnknownKey)
	}
	// "+" on its own would otherwise split into nothing
	if norm == "+" || strings.HasSuffix(norm, "++") {
		return combo, fmt.Errorf("hotkey %q: %w", keyStr, ErrUnknownKey)
	}
	parts := strings.Split(norm, "+")

	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return combo, fmt.Errorf("hotkey %q: empty part: %w", keyStr, ErrUnknownKey)
		}

		if i < len(parts)-1 {
			mod, ok := modifierMap[part]
			if !ok {
				return combo, fmt.Errorf("hotkey %q: modifier %q: %w", keyStr, part, ErrUnknownKey)
			}
			combo.Modifiers |= mod
			continue
		}

		key, ok := keyName(part)
		if !ok {
			return combo, fmt.Errorf("hotkey %q: key %q: %w", keyStr, part, ErrUnknownKey)
		}
		combo.Key = key
	}

	return combo, nil
}

func keyName(part string) (string, bool) {
	if name, ok := keyNameMap[part]; ok {
		return name, true
	}
	if len(part) == 1 && part[0] >= 'A' && part[0] <= 'Z' {
		return part, true
	}
	if len(part) >= 2 && len(part) <= 3 && part[0] == 'F' {
		var n int
		if _, err := fmt.Sscanf(part[1:], "%d", &n); err == nil && n >= 1 && n <= 12 {
			return fmt.Sprintf("F%d", n), true
		}
	}
	return "", false
}
