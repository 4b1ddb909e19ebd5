// Package keys tracks physical key state for the switch tester.
package keys

import "strings"

// ID names one physical key position, independent of layout or locale.
type ID string

// Section is one block of the physical keyboard, drawn as rows of keys.
type Section struct {
	Name string
	Rows [][]ID
}

const defaultWidth = 3

var sections = []Section{
	{
		Name: "main",
		Rows: [][]ID{
			{"Escape", "F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12"},
			{"Backquote", "Digit1", "Digit2", "Digit3", "Digit4", "Digit5", "Digit6", "Digit7", "Digit8", "Digit9", "Digit0", "Minus", "Equal", "Backspace"},
			{"Tab", "KeyQ", "KeyW", "KeyE", "KeyR", "KeyT", "KeyY", "KeyU", "KeyI", "KeyO", "KeyP", "BracketLeft", "BracketRight", "Backslash"},
			{"CapsLock", "KeyA", "KeyS", "KeyD", "KeyF", "KeyG", "KeyH", "KeyJ", "KeyK", "KeyL", "Semicolon", "Quote", "Enter"},
			{"ShiftLeft", "KeyZ", "KeyX", "KeyC", "KeyV", "KeyB", "KeyN", "KeyM", "Comma", "Period", "Slash", "ShiftRight"},
			{"ControlLeft", "MetaLeft", "AltLeft", "Space", "AltRight", "MetaRight", "ContextMenu", "ControlRight"},
		},
	},
	{
		Name: "nav",
		Rows: [][]ID{
			{"PrintScreen", "ScrollLock", "Pause"},
			{"Insert", "Home", "PageUp"},
			{"Delete", "End", "PageDown"},
			{},
			{"ArrowUp"},
			{"ArrowLeft", "ArrowDown", "ArrowRight"},
		},
	},
	{
		Name: "numpad",
		Rows: [][]ID{
			{"NumLock", "NumpadDivide", "NumpadMultiply", "NumpadSubtract"},
			{"Numpad7", "Numpad8", "Numpad9", "NumpadAdd"},
			{"Numpad4", "Numpad5", "Numpad6"},
			{"Numpad1", "Numpad2", "Numpad3", "NumpadEnter"},
			{"Numpad0", "NumpadDecimal"},
		},
	},
}

var labels = map[ID]string{
	"Backquote": "~", "Minus": "-", "Equal": "=", "BracketLeft": "[", "BracketRight": "]",
	"Backslash": "\\", "Semicolon": ";", "Quote": "'", "Comma": ",", "Period": ".", "Slash": "/",
	"Space": "",
	"ControlLeft": "Ctrl", "MetaLeft": "Win", "AltLeft": "Alt",
	"ControlRight": "Ctrl", "MetaRight": "Win", "AltRight": "Alt",
	"ShiftLeft": "Shift", "ShiftRight": "Shift",
	"Backspace": "Bksp", "Enter": "Enter", "CapsLock": "Caps", "Tab": "Tab",
	"ContextMenu": "Fn", "Escape": "Esc",
	"PrintScreen": "PrtSc", "ScrollLock": "ScrLk", "Pause": "Pause",
	"Insert": "Ins", "Home": "Home", "PageUp": "PgUp",
	"Delete": "Del", "End": "End", "PageDown": "PgDn",
	"ArrowUp": "↑", "ArrowLeft": "←", "ArrowDown": "↓", "ArrowRight": "→",
	"NumLock": "Num", "NumpadDivide": "/", "NumpadMultiply": "*", "NumpadSubtract": "-",
	"NumpadAdd": "+", "NumpadEnter": "Ent", "NumpadDecimal": ".",
	"Numpad0": "0", "Numpad1": "1", "Numpad2": "2", "Numpad3": "3", "Numpad4": "4",
	"Numpad5": "5", "Numpad6": "6", "Numpad7": "7", "Numpad8": "8", "Numpad9": "9",
}

// Widths are inner cap widths in terminal cells; a cap border adds two.
var widths = map[ID]int{
	"Backspace": 7, "Tab": 5, "CapsLock": 6, "Enter": 8,
	"ShiftLeft": 8, "ShiftRight": 11,
	"Space": 25,
	"ControlLeft": 4, "MetaLeft": 3, "AltLeft": 4,
	"ControlRight": 4, "MetaRight": 3, "AltRight": 4,
	"Numpad0": 8,
}

var known = buildKnown()

func buildKnown() map[ID]struct{} {
	out := map[ID]struct{}{}
	for _, section := range sections {
		for _, row := range section.Rows {
			for _, id := range row {
				out[id] = struct{}{}
			}
		}
	}
	return out
}

// Sections returns the keyboard layout. Callers may not modify the rows.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// Catalog returns every known key in layout order.
func Catalog() []ID {
	out := make([]ID, 0, len(known))
	for _, section := range sections {
		for _, row := range section.Rows {
			out = append(out, row...)
		}
	}
	return out
}

// Known reports whether id is part of the physical layout.
func Known(id ID) bool {
	_, ok := known[id]
	return ok
}

// Label returns the cap label for id. Unknown keys fall back to the
// identifier without its Key/Digit prefix.
func Label(id ID) string {
	if label, ok := labels[id]; ok {
		return label
	}
	s := string(id)
	s = strings.TrimPrefix(s, "Key")
	s = strings.TrimPrefix(s, "Digit")
	return s
}

// Width returns the preferred inner cap width for id in cells.
func Width(id ID) int {
	if w, ok := widths[id]; ok {
		return w
	}
	return defaultWidth
}
