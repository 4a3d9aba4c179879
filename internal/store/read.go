package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrRunNotFound is returned when a run token has no row.
var ErrRunNotFound = errors.New("run not found")

// ReadRun fetches the run row for a token.
func (s *Store) ReadRun(ctx context.Context, token string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT token, created_at, steps FROM runs WHERE token = ?
	`, token)

	var r Run
	if err := row.Scan(&r.Token, &r.CreatedAt, &r.Steps); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("read run %s: %w", token, ErrRunNotFound)
		}
		return nil, fmt.Errorf("read run %s: %w", token, err)
	}
	return &r, nil
}

// ReadSamples returns all samples of a run in ascending pattern order.
// The stored int64 treats the top bit as a sign, so plain ORDER BY would
// put the second half turn first; sorting non-negatives ahead restores
// the unsigned order.
func (s *Store) ReadSamples(ctx context.Context, token string) ([]Sample, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT repr, sin_bits, cos_bits FROM samples
		WHERE run_token = ?
		ORDER BY repr >= 0 DESC, repr ASC
	`, token)
	if err != nil {
		return nil, fmt.Errorf("read samples %s: %w", token, err)
	}
	defer rows.Close()

	var out []Sample
	for rows.Next() {
		var repr, sinBits, cosBits int64
		if err := rows.Scan(&repr, &sinBits, &cosBits); err != nil {
			return nil, fmt.Errorf("read samples %s: %w", token, err)
		}
		out = append(out, Sample{
			Repr:    uint64(repr),
			SinBits: uint64(sinBits),
			CosBits: uint64(cosBits),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read samples %s: %w", token, err)
	}
	return out, nil
}

// CountSamples returns the number of samples stored for a run.
func (s *Store) CountSamples(ctx context.Context, token string) (int64, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM samples WHERE run_token = ?
	`, token)

	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("count samples %s: %w", token, err)
	}
	return n, nil
}
