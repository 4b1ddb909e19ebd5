package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field is the hidden text capture field of the typing view. Edits are
// published as TextChange events carrying the whole value.
type Field struct {
	bus      *Bus
	input    textinput.Model
	readOnly bool
}

// NewField returns a field publishing to bus.
func NewField(bus *Bus) *Field {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	return &Field{bus: bus, input: ti}
}

// Update applies a key to the field. Key messages are dropped while read-only.
func (f *Field) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok && f.readOnly {
		return nil
	}
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if after := f.input.Value(); after != before {
		f.bus.Publish(TextChange{Value: after})
	}
	return cmd
}

// SetReadOnly toggles whether keys may edit the field.
func (f *Field) SetReadOnly(readOnly bool) {
	f.readOnly = readOnly
}

// Clear empties the field without publishing a change.
func (f *Field) Clear() {
	f.input.SetValue("")
}

// Focus gives the field input focus.
func (f *Field) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes input focus.
func (f *Field) Blur() {
	f.input.Blur()
}

// Value returns the current field value.
func (f *Field) Value() string {
	return f.input.Value()
}
