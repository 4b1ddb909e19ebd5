package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/keix/internal/typing"
)

func states(s ...typing.CharState) []typing.CharState {
	return s
}

func TestBuildStyledRunesCursor(t *testing.T) {
	runes := buildStyledRunes([]rune("ab"), states(typing.CharCorrect, typing.CharCursor))
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != cursorStyle.Render("b") {
		t.Fatalf("expected cursor style for second rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	runes := buildStyledRunes([]rune("ab"), states(typing.CharCorrect, typing.CharIncorrect))
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style to show the target rune")
	}
}

func TestBuildStyledRunesWordHighlighting(t *testing.T) {
	target := []rune("one two")
	st := states(typing.CharCorrect, typing.CharCursor, typing.CharUntyped, typing.CharUntyped,
		typing.CharUntyped, typing.CharUntyped, typing.CharUntyped)
	runes := buildStyledRunes(target, st)
	if runes[2].s != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style inside the cursor word")
	}
	if runes[4].s != pendingStyle.Render("t") || runes[6].s != pendingStyle.Render("o") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestBuildStyledRunesCursorOnSpaceHighlightsNextWord(t *testing.T) {
	target := []rune("ab cd")
	st := states(typing.CharCorrect, typing.CharCorrect, typing.CharCursor, typing.CharUntyped, typing.CharUntyped)
	runes := buildStyledRunes(target, st)
	if runes[3].s != currentWordStyle.Render("c") {
		t.Fatalf("expected next word highlighted when cursor sits on a space")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	runes := buildStyledRunes([]rune("a b"), states(typing.CharCorrect, typing.CharIncorrect, typing.CharCursor))
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
}

func TestBuildStyledRunesCyrillic(t *testing.T) {
	runes := buildStyledRunes([]rune("ёж"), states(typing.CharCorrect, typing.CharCursor))
	if len(runes) != 2 || runes[0].width != 1 {
		t.Fatalf("expected one cell per cyrillic rune, got %+v", runes)
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	target := []rune("one two three")
	st := make([]typing.CharState, len(target))
	out := wrapStyledRunes(buildStyledRunes(target, st), 8)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
}

func TestWrapStyledRunesSplitsLongWords(t *testing.T) {
	target := []rune("abcdefghij")
	st := make([]typing.CharState, len(target))
	out := wrapStyledRunes(buildStyledRunes(target, st), 4)
	if got := len(strings.Split(out, "\n")); got != 3 {
		t.Fatalf("expected 3 lines, got %d", got)
	}
}
