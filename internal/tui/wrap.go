package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/keix/internal/typing"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildStyledRunes renders each target rune according to its state. The word
// holding the cursor is highlighted; a mistyped space shows as a dot.
func buildStyledRunes(target []rune, states []typing.CharState) []styledRune {
	cursor := -1
	for i, st := range states {
		if st == typing.CharCursor {
			cursor = i
			break
		}
	}
	word := wordAt(target, cursor)

	out := make([]styledRune, 0, len(target))
	for i, r := range target {
		displayed := r
		var style lipgloss.Style
		switch states[i] {
		case typing.CharCorrect:
			style = correctStyle
		case typing.CharIncorrect:
			style = incorrectStyle
			if r == ' ' {
				displayed = '•'
			}
		case typing.CharCursor:
			style = cursorStyle
		default:
			style = pendingStyle
			if r != ' ' && i >= word.start && i < word.end {
				style = currentWordStyle
			}
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: r == ' ',
		})
	}
	return out
}

type wordRange struct {
	start int
	end   int
}

// wordAt returns the word containing idx, or the next word when idx sits on
// a space. A negative idx yields an empty range.
func wordAt(target []rune, idx int) wordRange {
	if idx < 0 || idx >= len(target) {
		return wordRange{}
	}
	start := idx
	if target[idx] == ' ' {
		for start < len(target) && target[start] == ' ' {
			start++
		}
	} else {
		for start > 0 && target[start-1] != ' ' {
			start--
		}
	}
	end := start
	for end < len(target) && target[end] != ' ' {
		end++
	}
	return wordRange{start: start, end: end}
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks lines at the last space that fits in width, or
// mid-word when a word is longer than the line.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var lines []string
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpace := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpace >= 0 {
				lines = append(lines, renderStyledRunes(line[:lastSpace]))
				line = append([]styledRune{}, line[lastSpace+1:]...)
			} else {
				lines = append(lines, renderStyledRunes(line))
				line = line[:0]
			}
			lineWidth, lastSpace = measure(line)
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpace = len(line) - 1
		}
		i++
	}
	lines = append(lines, renderStyledRunes(line))
	return strings.Join(lines, "\n")
}

func measure(line []styledRune) (width, lastSpace int) {
	lastSpace = -1
	for i, item := range line {
		width += item.width
		if item.isSpace {
			lastSpace = i
		}
	}
	return width, lastSpace
}
