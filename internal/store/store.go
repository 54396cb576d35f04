package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"ticketing/internal/config"
)

const (
	// The retry budget covers a dependency's cold start: a containerized
	// Postgres can take well over a minute to accept connections.
	connectAttempts = 40
	connectInterval = 2 * time.Second

	connectTimeout = 30 * time.Second
	queryTimeout   = 30 * time.Second
	maxPoolConns   = 10
)

// Store is the durable persistence layer. The pooled connection is
// established lazily on first use and memoized; concurrent callers share a
// single in-flight establishment instead of racing their own.
type Store struct {
	cfg config.DB
	log *zap.Logger

	mu   sync.RWMutex
	pool *pgxpool.Pool
	sf   singleflight.Group
}

// New creates a Store. No connection is made until Connect or the first
// query.
func New(cfg config.DB, log *zap.Logger) *Store {
	return &Store{cfg: cfg, log: log}
}

// Connect establishes the pooled connection, retrying until the database
// engine is reachable or the attempt budget runs out.
func (s *Store) Connect(ctx context.Context) error {
	_, err := s.acquire(ctx)
	return err
}

// Ping verifies database connectivity with a trivial round trip.
func (s *Store) Ping(ctx context.Context) error {
	pool, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	var one int
	return pool.QueryRow(ctx, `SELECT 1`).Scan(&one)
}

// Close shuts down the connection pool.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pool != nil {
		s.pool.Close()
		s.pool = nil
	}
}

// acquire returns the memoized pool, establishing it on first call.
func (s *Store) acquire(ctx context.Context) (*pgxpool.Pool, error) {
	s.mu.RLock()
	pool := s.pool
	s.mu.RUnlock()
	if pool != nil {
		return pool, nil
	}

	v, err, _ := s.sf.Do("establish", func() (any, error) {
		s.mu.RLock()
		pool := s.pool
		s.mu.RUnlock()
		if pool != nil {
			return pool, nil
		}
		pool, err := s.establish(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.pool = pool
		s.mu.Unlock()
		return pool, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*pgxpool.Pool), nil
}

func (s *Store) establish(ctx context.Context) (*pgxpool.Pool, error) {
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		pool, err := s.tryEstablish(ctx)
		if err == nil {
			return pool, nil
		}
		lastErr = err
		s.log.Warn("database not ready",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", connectAttempts),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(connectInterval):
		}
	}
	return nil, fmt.Errorf("connect to database after %d attempts: %w", connectAttempts, lastErr)
}

// tryEstablish performs one full establishment: ensure the target database
// exists via the maintenance database, then open and ping the pool.
func (s *Store) tryEstablish(ctx context.Context) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := s.ensureDatabase(ctx); err != nil {
		return nil, err
	}

	poolCfg, err := pgxpool.ParseConfig(s.cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	poolCfg.MaxConns = maxPoolConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping pool: %w", err)
	}
	return pool, nil
}

// ensureDatabase connects to the maintenance database, probes liveness and
// creates the target database when missing. CREATE DATABASE takes no bind
// parameters; the name is operator-configured and validated as a plain
// identifier at config load.
func (s *Store) ensureDatabase(ctx context.Context) error {
	admin, err := pgx.Connect(ctx, s.cfg.AdminURL())
	if err != nil {
		return fmt.Errorf("connect admin database: %w", err)
	}
	defer admin.Close(ctx)

	var one int
	if err := admin.QueryRow(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("liveness probe: %w", err)
	}

	var exists bool
	err = admin.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`,
		s.cfg.Name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database exists: %w", err)
	}
	if exists {
		return nil
	}

	s.log.Info("creating database", zap.String("name", s.cfg.Name))
	_, err = admin.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{s.cfg.Name}.Sanitize())
	if err != nil && !isBenignReapply(err) {
		return fmt.Errorf("create database: %w", err)
	}
	return nil
}

// queryContext bounds a single query so a hung dependency cannot stall a
// handler indefinitely.
func queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}
