package input

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/keix/internal/keys"
)

func TestBusPublishOrderAndUnsubscribe(t *testing.T) {
	bus := NewBus()
	var got []string
	first := bus.Subscribe(func(Event) { got = append(got, "first") })
	second := bus.Subscribe(func(Event) { got = append(got, "second") })
	if bus.Len() != 2 {
		t.Fatalf("expected 2 subscriptions, got %d", bus.Len())
	}

	bus.Publish(KeyUp{Code: "KeyA"})
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("unexpected delivery order: %v", got)
	}

	first.Unsubscribe()
	first.Unsubscribe()
	if bus.Len() != 1 {
		t.Fatalf("expected 1 subscription after unsubscribe, got %d", bus.Len())
	}
	got = nil
	bus.Publish(TextChange{Value: "x"})
	if len(got) != 1 || got[0] != "second" {
		t.Fatalf("expected only second handler, got %v", got)
	}
	second.Unsubscribe()
	if bus.Len() != 0 {
		t.Fatalf("expected no subscriptions, got %d", bus.Len())
	}
}

func TestBusUnsubscribeDuringPublish(t *testing.T) {
	bus := NewBus()
	calls := 0
	var sub *Subscription
	sub = bus.Subscribe(func(Event) {
		calls++
		sub.Unsubscribe()
	})
	bus.Subscribe(func(Event) { calls++ })
	bus.Publish(KeyUp{Code: "KeyA"})
	if calls != 2 {
		t.Fatalf("expected both handlers to run once, got %d calls", calls)
	}
	if bus.Len() != 1 {
		t.Fatalf("expected 1 subscription left, got %d", bus.Len())
	}
}

func TestKeyDownPreventDefault(t *testing.T) {
	bus := NewBus()
	bus.Subscribe(func(ev Event) {
		if down, ok := ev.(*KeyDown); ok {
			down.PreventDefault()
		}
	})
	ev := &KeyDown{Code: "Tab"}
	bus.Publish(ev)
	if !ev.DefaultPrevented() {
		t.Fatalf("expected default prevented")
	}
}

func TestCodes(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want []keys.ID
	}{
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, []keys.ID{"KeyA"}},
		{"upper", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Q")}, []keys.ID{"ShiftLeft", "KeyQ"}},
		{"shifted digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")}, []keys.ID{"ShiftLeft", "Digit1"}},
		{"symbol", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(";")}, []keys.ID{"Semicolon"}},
		{"cyrillic", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ж")}, []keys.ID{"Semicolon"}},
		{"cyrillic upper", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Й")}, []keys.ID{"ShiftLeft", "KeyQ"}},
		{"unknown rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ß")}, []keys.ID{"ß"}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, []keys.ID{"Space"}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []keys.ID{"Enter"}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []keys.ID{"Tab"}},
		{"f5", tea.KeyMsg{Type: tea.KeyF5}, []keys.ID{"F5"}},
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, []keys.ID{"ArrowLeft"}},
		{"ctrl letter", tea.KeyMsg{Type: tea.KeyCtrlW}, []keys.ID{"ControlLeft", "KeyW"}},
		{"alt letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, []keys.ID{"AltLeft", "KeyX"}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc"), Paste: true}, nil},
	}
	for _, tc := range cases {
		got := Codes(tc.msg)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
			}
		}
	}
}

func TestCodesCoverCatalogLetters(t *testing.T) {
	for r := 'a'; r <= 'z'; r++ {
		codes := Codes(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		if len(codes) != 1 || !keys.Known(codes[0]) {
			t.Fatalf("expected %q to map to a catalog key, got %v", r, codes)
		}
	}
}

func immediateTick(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg { return fn(time.Time{}) }
}

func TestReleaserRepeatSupersedesTimer(t *testing.T) {
	r := NewReleaser(time.Second)
	r.tick = immediateTick

	repeat, first := r.Press("KeyA")
	if repeat {
		t.Fatalf("did not expect first press to be a repeat")
	}
	repeat, second := r.Press("KeyA")
	if !repeat {
		t.Fatalf("expected second press to be a repeat")
	}

	if r.Expire(first().(ReleaseMsg)) {
		t.Fatalf("expected stale timer to be ignored")
	}
	if len(r.Pending()) != 1 {
		t.Fatalf("expected KeyA pending")
	}
	if !r.Expire(second().(ReleaseMsg)) {
		t.Fatalf("expected latest timer to release")
	}
	if len(r.Pending()) != 0 {
		t.Fatalf("expected nothing pending")
	}
	if r.Expire(second().(ReleaseMsg)) {
		t.Fatalf("expected duplicate release to be ignored")
	}
}

func TestReleaserForget(t *testing.T) {
	r := NewReleaser(0)
	r.tick = immediateTick
	_, cmd := r.Press("KeyB")
	r.Forget()
	if r.Expire(cmd().(ReleaseMsg)) {
		t.Fatalf("expected forgotten key to be ignored")
	}
	if r.window != DefaultReleaseWindow {
		t.Fatalf("expected default window")
	}
}

func TestFieldPublishesWholeValue(t *testing.T) {
	bus := NewBus()
	var values []string
	bus.Subscribe(func(ev Event) {
		if change, ok := ev.(TextChange); ok {
			values = append(values, change.Value)
		}
	})
	f := NewField(bus)
	f.Focus()
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if len(values) != 3 || values[0] != "h" || values[1] != "hi" || values[2] != "h" {
		t.Fatalf("unexpected values: %v", values)
	}

	f.SetReadOnly(true)
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if len(values) != 3 || f.Value() != "h" {
		t.Fatalf("expected read-only field to ignore keys")
	}

	f.Clear()
	if f.Value() != "" || len(values) != 3 {
		t.Fatalf("expected clear without publishing")
	}
}
