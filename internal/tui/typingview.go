package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"

	"github.com/verte-zerg/keix/internal/input"
	"github.com/verte-zerg/keix/internal/model"
	"github.com/verte-zerg/keix/internal/stats"
	"github.com/verte-zerg/keix/internal/typing"
)

const (
	speedRefresh      = 250 * time.Millisecond
	celebrationFrame  = 90 * time.Millisecond
	celebrationFrames = 12
)

// Recorder persists finished attempts and serves the history the typing
// view shows and biases phrase picks with.
type Recorder interface {
	InsertAttempt(ctx context.Context, attempt model.Attempt, chars []model.CharStats) (int64, error)
	ListAttempts(ctx context.Context, cfg model.StatsConfig) ([]model.AttemptAggregate, error)
	GetWeakChars(ctx context.Context, window int, lang string) ([]model.CharAggregate, error)
}

type speedTickMsg struct{ gen int }

type celebrateMsg struct {
	gen   int
	frame int
}

// typingView runs typing attempts against phrases from the corpus.
type typingView struct {
	cfg      model.Config
	bus      *input.Bus
	field    *input.Field
	corpus   typing.Corpus
	picker   *typing.Picker
	clock    typing.Clock
	recorder Recorder
	printer  *message.Printer
	logger   *slog.Logger

	sub     *input.Subscription
	session *typing.Session
	gen     int
	ticking bool
	frame   int
	pending []tea.Cmd

	lastWPM int
	bestWPM int
	hasLast bool
}

func newTypingView(cfg model.Config, bus *input.Bus, field *input.Field, corpus typing.Corpus, picker *typing.Picker, clock typing.Clock, recorder Recorder, printer *message.Printer, logger *slog.Logger) *typingView {
	return &typingView{
		cfg:      cfg,
		bus:      bus,
		field:    field,
		corpus:   corpus,
		picker:   picker,
		clock:    clock,
		recorder: recorder,
		printer:  printer,
		logger:   logger.With("component", "typing"),
	}
}

func (v *typingView) activate() tea.Cmd {
	v.session = typing.NewSession(v.corpus, v.picker, v.clock)
	if weak := v.loadWeakSet(); len(weak) > 0 {
		v.session.SetWeakFocus(weak, v.cfg.WeakFactor)
		v.session.Start()
	}
	v.loadHistory()
	v.sub = v.bus.Subscribe(v.handle)
	return v.begin()
}

func (v *typingView) deactivate() {
	v.sub.Unsubscribe()
	v.sub = nil
	v.gen++
	v.ticking = false
	v.field.Blur()
	v.field.Clear()
	v.field.SetReadOnly(false)
}

// begin resets the capture field for a fresh attempt and focuses it.
func (v *typingView) begin() tea.Cmd {
	v.gen++
	v.ticking = false
	v.frame = 0
	v.field.Clear()
	v.field.SetReadOnly(false)
	v.logger.Debug("attempt ready", "phrase", v.session.Target())
	return v.field.Focus()
}

func (v *typingView) handle(ev input.Event) {
	change, ok := ev.(input.TextChange)
	if !ok {
		return
	}
	if !v.session.OnInputChange(change.Value) {
		if !v.ticking && !v.session.Completed() {
			if _, started := v.session.StartedAt(); started {
				v.ticking = true
				v.pending = append(v.pending, v.speedTick())
			}
		}
		return
	}
	v.field.SetReadOnly(true)
	v.ticking = false
	v.record()
	v.pending = append(v.pending, v.celebrate(0))
}

func (v *typingView) record() {
	attempt, chars, ok := v.session.Result(v.cfg.Lang)
	if !ok {
		return
	}
	v.logger.Info("attempt complete", "wpm", attempt.WPM, "duration_ms", attempt.DurationMs,
		"correct", attempt.Correct, "incorrect", attempt.Incorrect)
	v.lastWPM = attempt.WPM
	v.bestWPM = max(v.bestWPM, attempt.WPM)
	v.hasLast = true
	if v.recorder == nil {
		return
	}
	if _, err := v.recorder.InsertAttempt(context.Background(), attempt, chars); err != nil {
		v.logger.Error("failed to save attempt", "error", err)
		return
	}
	if weak := v.loadWeakSet(); len(weak) > 0 {
		v.session.SetWeakFocus(weak, v.cfg.WeakFactor)
	}
}

func (v *typingView) loadWeakSet() map[rune]struct{} {
	if v.recorder == nil || !v.cfg.FocusWeak {
		return nil
	}
	aggs, err := v.recorder.GetWeakChars(context.Background(), v.cfg.WeakWindow, v.cfg.Lang)
	if err != nil {
		v.logger.Error("failed to load weak chars", "error", err)
		return nil
	}
	if len(aggs) == 0 {
		v.logger.Info("no stats available for weak-char focus yet")
		return nil
	}
	return stats.SelectWeakChars(aggs, v.cfg.WeakTop)
}

func (v *typingView) loadHistory() {
	if v.recorder == nil {
		return
	}
	attempts, err := v.recorder.ListAttempts(context.Background(), model.StatsConfig{Lang: v.cfg.Lang})
	if err != nil {
		v.logger.Error("failed to load attempt history", "error", err)
		return
	}
	v.hasLast = false
	v.bestWPM = 0
	for _, a := range attempts {
		v.bestWPM = max(v.bestWPM, a.WPM)
		v.lastWPM = a.WPM
		v.hasLast = true
	}
}

func (v *typingView) speedTick() tea.Cmd {
	gen := v.gen
	return tea.Tick(speedRefresh, func(time.Time) tea.Msg {
		return speedTickMsg{gen: gen}
	})
}

func (v *typingView) celebrate(frame int) tea.Cmd {
	v.frame = frame
	gen := v.gen
	return tea.Tick(celebrationFrame, func(time.Time) tea.Msg {
		return celebrateMsg{gen: gen, frame: frame + 1}
	})
}

func (v *typingView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case speedTickMsg:
		if msg.gen != v.gen || !v.ticking || v.session.Completed() {
			return nil
		}
		return v.speedTick()
	case celebrateMsg:
		if msg.gen != v.gen || !v.session.Completed() {
			return nil
		}
		if msg.frame >= celebrationFrames {
			v.frame = celebrationFrames
			return nil
		}
		return v.celebrate(msg.frame)
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter && v.session.Completed() {
			return v.action()
		}
		return v.field.Update(msg)
	default:
		return v.field.Update(msg)
	}
}

func (v *typingView) flush() tea.Cmd {
	if len(v.pending) == 0 {
		return nil
	}
	cmds := v.pending
	v.pending = nil
	return tea.Batch(cmds...)
}

// actionLabel is empty until the attempt completes, which hides the button.
func (v *typingView) actionLabel() string {
	if !v.session.Completed() {
		return ""
	}
	return v.printer.Sprintf("typing.again")
}

func (v *typingView) action() tea.Cmd {
	if !v.session.Completed() {
		return nil
	}
	v.session.Restart()
	return v.begin()
}

func (v *typingView) help() string {
	return v.printer.Sprintf("app.help.typing")
}

func (v *typingView) render(width, height int) string {
	if v.session == nil {
		return ""
	}
	speed := speedStyle.Render(v.printer.Sprintf("typing.speed") + ": " + v.printer.Sprintf("typing.wpm", v.session.Speed()))
	status := pendingStyle.Render(v.printer.Sprintf("typing.prompt"))
	if v.session.Completed() {
		status = v.renderComplete()
	}

	contentWidth := 0
	if width > 0 {
		contentWidth = max(1, int(float64(width)*0.70))
	}
	target := []rune(v.session.Target())
	phrase := wrapStyledRunes(buildStyledRunes(target, v.session.Classify()), contentWidth)
	if contentWidth > 0 {
		phrase = lipgloss.NewStyle().Width(contentWidth).Render(phrase)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, speed, status, "", phrase, "", v.renderFooter())
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (v *typingView) renderComplete() string {
	label := v.printer.Sprintf("typing.complete")
	if v.frame >= celebrationFrames {
		return completeStyle.Render(label)
	}
	color := celebrationColors[v.frame%len(celebrationColors)]
	sparkle := strings.Repeat("✦", 1+v.frame%3)
	return completeStyle.Foreground(color).Render(sparkle + " " + label + " " + sparkle)
}

func (v *typingView) renderFooter() string {
	segments := []string{v.printer.Sprintf("typing.progress", int(v.session.Progress()*100))}
	if v.hasLast {
		segments = append(segments,
			v.printer.Sprintf("typing.last", v.lastWPM),
			v.printer.Sprintf("typing.best", v.bestWPM))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}
