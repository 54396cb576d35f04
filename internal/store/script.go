package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// execer is the slice of the pool the applier needs; batches carry no bind
// parameters.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// batchSeparator delimits independently executed batches in the schema and
// seed scripts. Each batch gets its own error handling, so re-applying a
// script against an already initialized database skips past the batches
// that already took effect instead of aborting the whole script.
const batchSeparator = "GO"

type applyOptions struct {
	// skipCreateDatabase drops batches that create the database itself;
	// that responsibility belongs to the connection manager.
	skipCreateDatabase bool
}

// splitBatches splits a script on standalone separator lines
// (case-insensitive), trims each batch and drops empty ones.
func splitBatches(script string) []string {
	var batches []string
	var current []string

	flush := func() {
		batch := strings.TrimSpace(strings.Join(current, "\n"))
		if batch != "" {
			batches = append(batches, batch)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(script, "\n") {
		if strings.EqualFold(strings.TrimSpace(line), batchSeparator) {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return batches
}

// skipBatch reports whether a batch must not be executed: database-context
// selection is meaningless against a pool bound to the target database, and
// database creation is handled before the pool exists.
func skipBatch(batch string, opts applyOptions) bool {
	upper := strings.ToUpper(batch)
	if strings.HasPrefix(upper, "USE ") {
		return true
	}
	if opts.skipCreateDatabase && strings.Contains(upper, "CREATE DATABASE") {
		return true
	}
	return false
}

// applyScript executes each batch of a script in order. Batches that fail
// because their object or row already exists are logged and skipped; any
// other failure aborts the remaining batches.
func (s *Store) applyScript(ctx context.Context, db execer, script string, opts applyOptions) error {
	for _, batch := range splitBatches(script) {
		if skipBatch(batch, opts) {
			continue
		}
		if _, err := db.Exec(ctx, batch); err != nil {
			if isBenignReapply(err) {
				s.log.Debug("batch already applied", zap.Error(err))
				continue
			}
			s.log.Error("script batch failed", zap.Error(err))
			return fmt.Errorf("apply script batch: %w", err)
		}
	}
	return nil
}

// benignCodes are the Postgres error codes raised when a batch has already
// been applied.
var benignCodes = map[string]struct{}{
	"42P04": {}, // duplicate_database
	"42P07": {}, // duplicate_table
	"42710": {}, // duplicate_object
	"42701": {}, // duplicate_column
	"23505": {}, // unique_violation
}

// isBenignReapply reports whether an error indicates the statement's effect
// is already present. Structured error codes are authoritative; the message
// match below is a fallback for errors that reach us without one, and is
// fragile by nature since it depends on server wording.
func isBenignReapply(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		_, ok := benignCodes[pgErr.Code]
		return ok
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate")
}
