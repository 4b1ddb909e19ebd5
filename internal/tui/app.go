// Package tui provides the Bubble Tea application shell and its two views.
package tui

import (
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"

	"github.com/verte-zerg/keix/internal/i18n"
	"github.com/verte-zerg/keix/internal/input"
	"github.com/verte-zerg/keix/internal/model"
	"github.com/verte-zerg/keix/internal/typing"
)

// view is one screen of the shell. A view subscribes to the bus on
// activate and must drop the subscription on deactivate.
type view interface {
	activate() tea.Cmd
	deactivate()
	update(msg tea.Msg) tea.Cmd
	// flush returns commands queued by bus handlers.
	flush() tea.Cmd
	action() tea.Cmd
	actionLabel() string
	help() string
	render(width, height int) string
}

// Options configure an App.
type Options struct {
	Config   model.Config
	Corpus   typing.Corpus
	Recorder Recorder
	Clock    typing.Clock
	Logger   *slog.Logger
}

type hitTarget int

const (
	hitNone hitTarget = iota
	hitTester
	hitTyping
	hitAction
)

type span struct {
	from, to int
	target   hitTarget
}

// App is the root model. It owns the host event bus and routes terminal
// input to the active view.
type App struct {
	printer  *message.Printer
	logger   *slog.Logger
	bus      *input.Bus
	releaser *input.Releaser
	views    map[model.Mode]view

	mode    model.Mode
	active  view
	initCmd tea.Cmd
	closed  bool

	width  int
	height int
}

// NewApp builds the shell and activates the configured mode.
func NewApp(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cfg := opts.Config
	printer := i18n.Printer(cfg.Lang)
	bus := input.NewBus()
	field := input.NewField(bus)
	window := time.Duration(cfg.ReleaseMs) * time.Millisecond

	a := &App{
		printer:  printer,
		logger:   logger,
		bus:      bus,
		releaser: input.NewReleaser(window),
	}
	a.views = map[model.Mode]view{
		model.ModeTester: newTesterView(bus, printer, logger),
		model.ModeTyping: newTypingView(cfg, bus, field, opts.Corpus, typing.NewPicker(cfg.Seed), opts.Clock, opts.Recorder, printer, logger),
	}
	mode := cfg.Mode
	if _, ok := a.views[mode]; !ok {
		mode = model.ModeTester
	}
	a.initCmd = a.switchTo(mode)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.initCmd
}

// Mode returns the active mode.
func (a *App) Mode() model.Mode {
	return a.mode
}

// Close deactivates the active view. It is safe to call more than once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	if a.active != nil {
		a.active.deactivate()
		a.active = nil
	}
	a.releaser.Forget()
	a.logger.Debug("app closed")
}

func (a *App) switchTo(mode model.Mode) tea.Cmd {
	if a.closed || (mode == a.mode && a.active != nil) {
		return nil
	}
	if a.active != nil {
		a.active.deactivate()
	}
	a.releaser.Forget()
	a.mode = mode
	a.active = a.views[mode]
	a.logger.Info("mode switched", "mode", mode)
	return a.active.activate()
}

func (a *App) otherMode() model.Mode {
	if a.mode == model.ModeTester {
		return model.ModeTyping
	}
	return model.ModeTester
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.closed {
		return a, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			a.Close()
			return a, tea.Quit
		}
		return a, a.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || msg.Y != 0 {
			return a, nil
		}
		return a, a.click(msg.X)
	case input.ReleaseMsg:
		if a.releaser.Expire(msg) {
			a.bus.Publish(input.KeyUp{Code: msg.Code})
		}
		return a, a.active.flush()
	default:
		cmd := a.active.update(msg)
		return a, tea.Batch(cmd, a.active.flush())
	}
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	var cmds []tea.Cmd
	prevented := false
	for _, code := range input.Codes(msg) {
		repeat, release := a.releaser.Press(code)
		cmds = append(cmds, release)
		ev := &input.KeyDown{Code: code, Repeat: repeat}
		a.bus.Publish(ev)
		prevented = prevented || ev.DefaultPrevented()
	}
	cmds = append(cmds, a.active.flush())
	if prevented {
		return tea.Batch(cmds...)
	}
	if msg.Type == tea.KeyTab {
		cmds = append(cmds, a.switchTo(a.otherMode()))
		return tea.Batch(cmds...)
	}
	cmds = append(cmds, a.active.update(msg), a.active.flush())
	return tea.Batch(cmds...)
}

func (a *App) click(x int) tea.Cmd {
	for _, s := range a.headerSpans() {
		if x < s.from || x >= s.to {
			continue
		}
		switch s.target {
		case hitTester:
			return a.switchTo(model.ModeTester)
		case hitTyping:
			return a.switchTo(model.ModeTyping)
		case hitAction:
			return tea.Batch(a.active.action(), a.active.flush())
		}
	}
	return nil
}

func (a *App) headerParts() (tester, typingTab, action string) {
	tabStyle := func(mode model.Mode) lipgloss.Style {
		if mode == a.mode {
			return activeTabStyle
		}
		return inactiveTabStyle
	}
	tester = tabStyle(model.ModeTester).Render(a.printer.Sprintf("app.tab.tester"))
	typingTab = tabStyle(model.ModeTyping).Render(a.printer.Sprintf("app.tab.typing"))
	if a.active != nil {
		if label := a.active.actionLabel(); label != "" {
			action = actionStyle.Render(label)
		}
	}
	return tester, typingTab, action
}

// headerSpans returns the clickable columns of the header line.
func (a *App) headerSpans() []span {
	tester, typingTab, action := a.headerParts()
	tw := lipgloss.Width(tester)
	yw := lipgloss.Width(typingTab)
	spans := []span{
		{from: 0, to: tw, target: hitTester},
		{from: tw + 1, to: tw + 1 + yw, target: hitTyping},
	}
	if action != "" {
		start := a.actionColumn(tw+1+yw, lipgloss.Width(action))
		spans = append(spans, span{from: start, to: start + lipgloss.Width(action), target: hitAction})
	}
	return spans
}

func (a *App) actionColumn(tabsWidth, actionWidth int) int {
	return max(tabsWidth+2, a.width-actionWidth)
}

func (a *App) renderHeader() string {
	tester, typingTab, action := a.headerParts()
	tabs := tester + " " + typingTab
	tabsWidth := lipgloss.Width(tabs)
	if action == "" {
		return tabs
	}
	gap := a.actionColumn(tabsWidth, lipgloss.Width(action)) - tabsWidth
	return tabs + strings.Repeat(" ", gap) + action
}

// View implements tea.Model.
func (a *App) View() string {
	if a.active == nil {
		return ""
	}
	header := a.renderHeader()
	help := footerStyle.Render(a.active.help())
	bodyHeight := 0
	if a.height > 0 {
		bodyHeight = max(1, a.height-2)
	}
	body := a.active.render(a.width, bodyHeight)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}
