// Package store keeps the history of finished typing attempts in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/keix/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for attempt history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	st := &Store{db: db}
	if err := st.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate db: %w", err)
	}
	return st, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			lang TEXT NOT NULL,
			phrase TEXT NOT NULL,
			phrase_chars INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			wpm INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			incorrect INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS attempt_char_stats (
			attempt_id INTEGER NOT NULL,
			char TEXT NOT NULL,
			correct INTEGER NOT NULL,
			incorrect INTEGER NOT NULL,
			latency_sum_ms INTEGER NOT NULL,
			latency_count INTEGER NOT NULL,
			PRIMARY KEY (attempt_id, char)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_ended_at ON attempts(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_attempt_char_stats_char ON attempt_char_stats(char);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertAttempt stores a completed attempt and its per-character stats.
func (s *Store) InsertAttempt(ctx context.Context, attempt model.Attempt, chars []model.CharStats) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO attempts (started_at, ended_at, lang, phrase, phrase_chars, duration_ms, wpm, correct, incorrect)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		attempt.StartedAt.Format(time.RFC3339Nano),
		attempt.EndedAt.Format(time.RFC3339Nano),
		attempt.Lang,
		attempt.Phrase,
		attempt.PhraseChars,
		attempt.DurationMs,
		attempt.WPM,
		attempt.Correct,
		attempt.Incorrect,
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(chars) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO attempt_char_stats (attempt_id, char, correct, incorrect, latency_sum_ms, latency_count)
			 VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() { _ = stmt.Close() }()
		for _, cs := range chars {
			if _, err := stmt.ExecContext(ctx, id, cs.Char, cs.Correct, cs.Incorrect, cs.LatencySumMs, cs.LatencyCount); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// GetWeakChars aggregates character stats over the most recent attempts.
func (s *Store) GetWeakChars(ctx context.Context, window int, lang string) ([]model.CharAggregate, error) {
	if window <= 0 {
		return nil, nil
	}
	query := `WITH recent AS (
		SELECT id FROM attempts
		WHERE (? = '' OR lang = ?)
		ORDER BY ended_at DESC
		LIMIT ?
	)
	SELECT cs.char, SUM(cs.correct), SUM(cs.incorrect), SUM(cs.latency_sum_ms), SUM(cs.latency_count)
	FROM attempt_char_stats cs
	JOIN recent r ON r.id = cs.attempt_id
	GROUP BY cs.char`
	rows, err := s.db.QueryContext(ctx, query, lang, lang, window)
	if err != nil {
		return nil, err
	}
	return scanCharAggregates(rows)
}

// ListAttempts returns attempts matching the stats filters, oldest first.
func (s *Store) ListAttempts(ctx context.Context, cfg model.StatsConfig) ([]model.AttemptAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Lang != "" {
		clauses = append(clauses, "lang = ?")
		args = append(args, cfg.Lang)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, ended_at, lang, phrase, phrase_chars, duration_ms, wpm, correct, incorrect
		FROM attempts
		WHERE %s
		ORDER BY ended_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var attempts []model.AttemptAggregate
	for rows.Next() {
		var agg model.AttemptAggregate
		var endedAt string
		if err := rows.Scan(&agg.AttemptID, &endedAt, &agg.Lang, &agg.Phrase, &agg.PhraseChars,
			&agg.DurationMs, &agg.WPM, &agg.Correct, &agg.Incorrect); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		attempts = append(attempts, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attempts, nil
}

// ListCharAggregatesForAttempts aggregates per-character stats across attempts.
func (s *Store) ListCharAggregatesForAttempts(ctx context.Context, attemptIDs []int64) ([]model.CharAggregate, error) {
	if len(attemptIDs) == 0 {
		return nil, nil
	}
	placeholders, args := inClause(attemptIDs)
	query := fmt.Sprintf(`SELECT char, SUM(correct), SUM(incorrect), SUM(latency_sum_ms), SUM(latency_count)
		FROM attempt_char_stats
		WHERE attempt_id IN (%s)
		GROUP BY char`, placeholders)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanCharAggregates(rows)
}

// ListCharStatsForAttempts returns per-attempt stats for selected characters.
func (s *Store) ListCharStatsForAttempts(ctx context.Context, attemptIDs []int64, chars []string) (map[int64]map[string]model.CharAggregate, error) {
	result := map[int64]map[string]model.CharAggregate{}
	if len(attemptIDs) == 0 || len(chars) == 0 {
		return result, nil
	}
	idPlaceholders, args := inClause(attemptIDs)
	charPlaceholders := make([]string, len(chars))
	for i, ch := range chars {
		charPlaceholders[i] = "?"
		args = append(args, ch)
	}
	query := fmt.Sprintf(`SELECT attempt_id, char, correct, incorrect, latency_sum_ms, latency_count
		FROM attempt_char_stats
		WHERE attempt_id IN (%s) AND char IN (%s)`, idPlaceholders, strings.Join(charPlaceholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var attemptID int64
		var agg model.CharAggregate
		if err := rows.Scan(&attemptID, &agg.Char, &agg.Correct, &agg.Incorrect, &agg.LatencySumMs, &agg.LatencyCount); err != nil {
			return nil, err
		}
		if _, ok := result[attemptID]; !ok {
			result[attemptID] = map[string]model.CharAggregate{}
		}
		result[attemptID][agg.Char] = agg
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func inClause(ids []int64) (string, []any) {
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	return strings.Join(placeholders, ","), args
}

func scanCharAggregates(rows *sql.Rows) ([]model.CharAggregate, error) {
	defer func() { _ = rows.Close() }()
	var result []model.CharAggregate
	for rows.Next() {
		var agg model.CharAggregate
		if err := rows.Scan(&agg.Char, &agg.Correct, &agg.Incorrect, &agg.LatencySumMs, &agg.LatencyCount); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
