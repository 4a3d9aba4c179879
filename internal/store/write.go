package store

import (
	"context"
	"fmt"
)

// BeginRun inserts a run row. The token must be unique; recording the same
// token twice is an error, not an idempotent no-op, because two runs are
// never the same evaluation even when their parameters match.
func (s *Store) BeginRun(ctx context.Context, token string, steps int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (token, steps) VALUES (?, ?)
	`, token, steps)
	if err != nil {
		return fmt.Errorf("begin run %s: %w", token, err)
	}
	return nil
}

// WriteSamples inserts a batch of samples for a run inside one
// transaction. uint64 values are stored as int64 bit-reinterpretations
// (see schema.sql); the cast is lossless.
func (s *Store) WriteSamples(ctx context.Context, token string, samples []Sample) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO samples (run_token, repr, sin_bits, cos_bits)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	defer stmt.Close()

	for _, sm := range samples {
		_, err := stmt.ExecContext(ctx,
			token, int64(sm.Repr), int64(sm.SinBits), int64(sm.CosBits))
		if err != nil {
			return fmt.Errorf("write sample %#x: %w", sm.Repr, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	return nil
}
