package input

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/keix/internal/keys"
)

const (
	shiftKey   keys.ID = "ShiftLeft"
	controlKey keys.ID = "ControlLeft"
	altKey     keys.ID = "AltLeft"
)

type runeKey struct {
	code    keys.ID
	shifted bool
}

// US QWERTY positions. Shifted symbols share the physical key of their base.
var usRunes = map[rune]runeKey{
	'`': {"Backquote", false}, '~': {"Backquote", true},
	'1': {"Digit1", false}, '!': {"Digit1", true},
	'2': {"Digit2", false}, '@': {"Digit2", true},
	'3': {"Digit3", false}, '#': {"Digit3", true},
	'4': {"Digit4", false}, '$': {"Digit4", true},
	'5': {"Digit5", false}, '%': {"Digit5", true},
	'6': {"Digit6", false}, '^': {"Digit6", true},
	'7': {"Digit7", false}, '&': {"Digit7", true},
	'8': {"Digit8", false}, '*': {"Digit8", true},
	'9': {"Digit9", false}, '(': {"Digit9", true},
	'0': {"Digit0", false}, ')': {"Digit0", true},
	'-': {"Minus", false}, '_': {"Minus", true},
	'=': {"Equal", false}, '+': {"Equal", true},
	'[': {"BracketLeft", false}, '{': {"BracketLeft", true},
	']': {"BracketRight", false}, '}': {"BracketRight", true},
	'\\': {"Backslash", false}, '|': {"Backslash", true},
	';': {"Semicolon", false}, ':': {"Semicolon", true},
	'\'': {"Quote", false}, '"': {"Quote", true},
	',': {"Comma", false}, '<': {"Comma", true},
	'.': {"Period", false}, '>': {"Period", true},
	'/': {"Slash", false}, '?': {"Slash", true},
	' ': {"Space", false},
}

// ЙЦУКЕН letters on the same physical keys.
var cyrillicRunes = map[rune]keys.ID{
	'ё': "Backquote",
	'й': "KeyQ", 'ц': "KeyW", 'у': "KeyE", 'к': "KeyR", 'е': "KeyT", 'н': "KeyY",
	'г': "KeyU", 'ш': "KeyI", 'щ': "KeyO", 'з': "KeyP", 'х': "BracketLeft", 'ъ': "BracketRight",
	'ф': "KeyA", 'ы': "KeyS", 'в': "KeyD", 'а': "KeyF", 'п': "KeyG", 'р': "KeyH",
	'о': "KeyJ", 'л': "KeyK", 'д': "KeyL", 'ж': "Semicolon", 'э': "Quote",
	'я': "KeyZ", 'ч': "KeyX", 'с': "KeyC", 'м': "KeyV", 'и': "KeyB", 'т': "KeyN",
	'ь': "KeyM", 'б': "Comma", 'ю': "Period",
}

// Codes maps a terminal key message to the physical keys it implies.
// Modifiers the terminal reports are attributed to the left-hand key.
// Pasted text yields no codes.
func Codes(msg tea.KeyMsg) []keys.ID {
	if msg.Paste {
		return nil
	}
	var out []keys.ID
	if msg.Alt {
		out = append(out, altKey)
	}
	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			out = appendRune(out, r)
		}
		return out
	case tea.KeySpace:
		return append(out, "Space")
	case tea.KeyEnter:
		return append(out, "Enter")
	case tea.KeyTab:
		return append(out, "Tab")
	case tea.KeyShiftTab:
		return append(out, shiftKey, "Tab")
	case tea.KeyBackspace:
		return append(out, "Backspace")
	case tea.KeyDelete:
		return append(out, "Delete")
	case tea.KeyEsc:
		return append(out, "Escape")
	case tea.KeyInsert:
		return append(out, "Insert")
	case tea.KeyHome:
		return append(out, "Home")
	case tea.KeyEnd:
		return append(out, "End")
	case tea.KeyPgUp:
		return append(out, "PageUp")
	case tea.KeyPgDown:
		return append(out, "PageDown")
	case tea.KeyCtrlPgUp:
		return append(out, controlKey, "PageUp")
	case tea.KeyCtrlPgDown:
		return append(out, controlKey, "PageDown")
	case tea.KeyUp:
		return append(out, "ArrowUp")
	case tea.KeyDown:
		return append(out, "ArrowDown")
	case tea.KeyLeft:
		return append(out, "ArrowLeft")
	case tea.KeyRight:
		return append(out, "ArrowRight")
	case tea.KeyShiftUp:
		return append(out, shiftKey, "ArrowUp")
	case tea.KeyShiftDown:
		return append(out, shiftKey, "ArrowDown")
	case tea.KeyShiftLeft:
		return append(out, shiftKey, "ArrowLeft")
	case tea.KeyShiftRight:
		return append(out, shiftKey, "ArrowRight")
	case tea.KeyCtrlUp:
		return append(out, controlKey, "ArrowUp")
	case tea.KeyCtrlDown:
		return append(out, controlKey, "ArrowDown")
	case tea.KeyCtrlLeft:
		return append(out, controlKey, "ArrowLeft")
	case tea.KeyCtrlRight:
		return append(out, controlKey, "ArrowRight")
	case tea.KeyF1:
		return append(out, "F1")
	case tea.KeyF2:
		return append(out, "F2")
	case tea.KeyF3:
		return append(out, "F3")
	case tea.KeyF4:
		return append(out, "F4")
	case tea.KeyF5:
		return append(out, "F5")
	case tea.KeyF6:
		return append(out, "F6")
	case tea.KeyF7:
		return append(out, "F7")
	case tea.KeyF8:
		return append(out, "F8")
	case tea.KeyF9:
		return append(out, "F9")
	case tea.KeyF10:
		return append(out, "F10")
	case tea.KeyF11:
		return append(out, "F11")
	case tea.KeyF12:
		return append(out, "F12")
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		letter := 'A' + rune(msg.Type-tea.KeyCtrlA)
		return append(out, controlKey, keys.ID("Key"+string(letter)))
	}
	return out
}

func appendRune(out []keys.ID, r rune) []keys.ID {
	switch {
	case r >= 'a' && r <= 'z':
		return append(out, keys.ID("Key"+string(unicode.ToUpper(r))))
	case r >= 'A' && r <= 'Z':
		return append(out, shiftKey, keys.ID("Key"+string(r)))
	}
	if k, ok := usRunes[r]; ok {
		if k.shifted {
			out = append(out, shiftKey)
		}
		return append(out, k.code)
	}
	lower := unicode.ToLower(r)
	if code, ok := cyrillicRunes[lower]; ok {
		if lower != r {
			out = append(out, shiftKey)
		}
		return append(out, code)
	}
	return append(out, keys.ID(string(r)))
}
