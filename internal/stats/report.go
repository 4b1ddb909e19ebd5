package stats

import (
	"context"
	"io"

	"github.com/verte-zerg/keix/internal/model"
)

// DefaultTopChars is how many characters get their own curve.
const DefaultTopChars = 5

// Source is the history backend a report reads from.
type Source interface {
	ListAttempts(ctx context.Context, cfg model.StatsConfig) ([]model.AttemptAggregate, error)
	ListCharAggregatesForAttempts(ctx context.Context, attemptIDs []int64) ([]model.CharAggregate, error)
	ListCharStatsForAttempts(ctx context.Context, attemptIDs []int64, chars []string) (map[int64]map[string]model.CharAggregate, error)
}

// Report contains precomputed data for stats rendering.
type Report struct {
	Attempts         []model.AttemptAggregate
	WindowAttemptIDs []int64
	CharAggsAll      []model.CharAggregate
	CharAggsWindow   []model.CharAggregate
	TopChars         []string
	PerAttempt       map[int64]map[string]model.CharAggregate
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, src Source, cfg model.StatsConfig) (Report, error) {
	attempts, err := src.ListAttempts(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(attempts) > cfg.Last {
		attempts = attempts[len(attempts)-cfg.Last:]
	}

	allIDs := attemptIDs(attempts)
	windowIDs := allIDs
	if cfg.CurveWindow > 0 && len(allIDs) > cfg.CurveWindow {
		windowIDs = allIDs[len(allIDs)-cfg.CurveWindow:]
	}
	charAggsAll, err := src.ListCharAggregatesForAttempts(ctx, allIDs)
	if err != nil {
		return Report{}, err
	}
	charAggsWindow, err := src.ListCharAggregatesForAttempts(ctx, windowIDs)
	if err != nil {
		return Report{}, err
	}
	topChars := TopCharsByFrequency(charAggsAll, DefaultTopChars)
	perAttempt, err := src.ListCharStatsForAttempts(ctx, allIDs, topChars)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Attempts:         attempts,
		WindowAttemptIDs: windowIDs,
		CharAggsAll:      charAggsAll,
		CharAggsWindow:   charAggsWindow,
		TopChars:         topChars,
		PerAttempt:       perAttempt,
	}, nil
}

// Render writes the full plain-text report.
func (r Report) Render(w io.Writer, window, width int) error {
	if err := RenderSummary(w, r.Attempts); err != nil {
		return err
	}
	if len(r.Attempts) == 0 {
		return nil
	}
	if err := RenderCurves(w, r.Attempts, window, width); err != nil {
		return err
	}
	if err := RenderCharCurves(w, r.Attempts, r.PerAttempt, r.TopChars, window, width); err != nil {
		return err
	}
	if err := RenderCharTable(w, r.CharAggsWindow); err != nil {
		return err
	}
	return RenderAttempts(w, r.Attempts)
}

func attemptIDs(attempts []model.AttemptAggregate) []int64 {
	ids := make([]int64, len(attempts))
	for i, a := range attempts {
		ids[i] = a.AttemptID
	}
	return ids
}
