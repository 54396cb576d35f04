package store

import (
	"context"
	_ "embed"
	"fmt"
)

// Schema and seed scripts are embedded so the service can self-bootstrap
// its database on first start.
//
//go:embed schema.sql
var schemaSQL string

//go:embed seed.sql
var seedSQL string

// EnsureInitialized applies the schema and seed scripts when the tickets
// table is missing, and is a no-op otherwise. It must complete before the
// HTTP server starts accepting traffic; failure is fatal to startup.
func (s *Store) EnsureInitialized(ctx context.Context) error {
	pool, err := s.acquire(ctx)
	if err != nil {
		return err
	}

	var exists bool
	err = pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'tickets')`,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check tickets table: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.applyScript(ctx, pool, schemaSQL, applyOptions{skipCreateDatabase: true}); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	if err := s.applyScript(ctx, pool, seedSQL, applyOptions{}); err != nil {
		return fmt.Errorf("apply seed: %w", err)
	}
	s.log.Info("database schema and seed applied")
	return nil
}
