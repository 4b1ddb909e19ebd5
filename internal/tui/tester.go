package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/message"

	"github.com/verte-zerg/keix/internal/input"
	"github.com/verte-zerg/keix/internal/keys"
)

// testerView draws the keyboard and tracks which switches were exercised.
type testerView struct {
	bus     *input.Bus
	printer *message.Printer
	logger  *slog.Logger

	sub     *input.Subscription
	tracker *keys.Tracker
}

func newTesterView(bus *input.Bus, printer *message.Printer, logger *slog.Logger) *testerView {
	return &testerView{
		bus:     bus,
		printer: printer,
		logger:  logger.With("component", "tester"),
	}
}

func (v *testerView) activate() tea.Cmd {
	v.tracker = keys.NewTracker()
	v.sub = v.bus.Subscribe(v.handle)
	return nil
}

func (v *testerView) deactivate() {
	v.sub.Unsubscribe()
	v.sub = nil
}

func (v *testerView) handle(ev input.Event) {
	switch e := ev.(type) {
	case *input.KeyDown:
		e.PreventDefault()
		v.tracker.OnDown(e.Code)
		if !e.Repeat {
			v.logger.Debug("key down", "code", e.Code, "known", keys.Known(e.Code))
		}
	case input.KeyUp:
		v.tracker.OnUp(e.Code)
	}
}

func (v *testerView) update(tea.Msg) tea.Cmd {
	return nil
}

func (v *testerView) flush() tea.Cmd {
	return nil
}

func (v *testerView) actionLabel() string {
	return v.printer.Sprintf("tester.reset")
}

func (v *testerView) action() tea.Cmd {
	v.tracker.Reset()
	v.logger.Debug("reset")
	return nil
}

func (v *testerView) help() string {
	return v.printer.Sprintf("app.help.tester")
}

func (v *testerView) render(width, height int) string {
	if v.tracker == nil {
		return ""
	}
	blocks := make([]string, 0, len(keys.Sections()))
	for _, section := range keys.Sections() {
		blocks = append(blocks, v.renderSection(section))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, interleave(blocks, "  ")...)
	if width > 0 && lipgloss.Width(board) > width {
		board = lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, board, "", v.statusLine())
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (v *testerView) renderSection(section keys.Section) string {
	rows := make([]string, 0, len(section.Rows))
	for _, row := range section.Rows {
		if len(row) == 0 {
			rows = append(rows, strings.Repeat("\n", capIdleStyle.GetVerticalFrameSize()))
			continue
		}
		caps := make([]string, 0, len(row))
		for _, id := range row {
			caps = append(caps, v.renderCap(id))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, caps...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v *testerView) renderCap(id keys.ID) string {
	style := capIdleStyle
	switch v.tracker.StatusOf(id) {
	case keys.StatusActive:
		style = capActiveStyle
	case keys.StatusTested:
		style = capTestedStyle
	}
	width := keys.Width(id)
	label := runewidth.Truncate(keys.Label(id), width, "")
	return style.Width(width).Render(label)
}

func (v *testerView) statusLine() string {
	last := "-"
	if id, ok := v.tracker.LastPressed(); ok {
		last = string(id)
	}
	return footerStyle.Render(fmt.Sprintf("%s: %d/%d  %s: %d  %s: %s",
		v.printer.Sprintf("tester.pressed"), v.tracker.TestedCount(), len(keys.Catalog()),
		v.printer.Sprintf("tester.held"), len(v.tracker.Held()),
		v.printer.Sprintf("tester.code"), last))
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}
