package store

import (
	"context"
	"fmt"

	"ticketing/internal/models"
)

// ListVenues returns all venues ordered by name.
func (s *Store) ListVenues(ctx context.Context) ([]models.Venue, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()

	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `
		SELECT id, name, city, capacity
		FROM venues
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	venues := make([]models.Venue, 0)
	for rows.Next() {
		var v models.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.Capacity); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}
