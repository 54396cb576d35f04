package store

import (
	"context"
	"fmt"
	"time"

	"ticketing/internal/models"
)

// ListEvents returns all events joined with their venue, ordered by date.
func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()

	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `
		SELECT e.id, e.venue_id, e.title, e.event_date, e.status, v.name, v.city
		FROM events e
		JOIN venues v ON v.id = e.venue_id
		ORDER BY e.event_date`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.VenueID, &e.Title, &e.EventDate, &e.Status, &e.VenueName, &e.City); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CreateEvent inserts an event; status takes the column default.
func (s *Store) CreateEvent(ctx context.Context, cmd models.CreateEventCommand) (models.CreatedEvent, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()

	pool, err := s.acquire(ctx)
	if err != nil {
		return models.CreatedEvent{}, err
	}

	var e models.CreatedEvent
	err = pool.QueryRow(ctx, `
		INSERT INTO events (venue_id, title, event_date)
		VALUES ($1, $2, $3)
		RETURNING id, title, event_date, status`,
		cmd.VenueID, cmd.Title, cmd.EventDate,
	).Scan(&e.ID, &e.Title, &e.EventDate, &e.Status)
	if err != nil {
		return models.CreatedEvent{}, fmt.Errorf("insert event: %w", err)
	}
	return e, nil
}

// ImportEvent inserts one bulk-import row.
func (s *Store) ImportEvent(ctx context.Context, venueID int64, title string, date time.Time) (models.ImportedEvent, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()

	pool, err := s.acquire(ctx)
	if err != nil {
		return models.ImportedEvent{}, err
	}

	var e models.ImportedEvent
	err = pool.QueryRow(ctx, `
		INSERT INTO events (venue_id, title, event_date)
		VALUES ($1, $2, $3)
		RETURNING id, title, event_date`,
		venueID, title, date,
	).Scan(&e.ID, &e.Title, &e.EventDate)
	if err != nil {
		return models.ImportedEvent{}, fmt.Errorf("insert imported event: %w", err)
	}
	return e, nil
}

// TicketSummary aggregates ticket count and revenue per event. The LEFT
// JOIN plus COALESCE keeps count and revenue at zero for ticketless events.
func (s *Store) TicketSummary(ctx context.Context) ([]models.EventSummary, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()

	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `
		SELECT e.id, e.title, e.event_date, e.status, v.name, v.city,
		       COUNT(t.id), COALESCE(SUM(t.total), 0)::float8
		FROM events e
		JOIN venues v ON v.id = e.venue_id
		LEFT JOIN tickets t ON t.event_id = e.id
		GROUP BY e.id, e.title, e.event_date, e.status, v.name, v.city
		ORDER BY e.event_date`)
	if err != nil {
		return nil, fmt.Errorf("ticket summary: %w", err)
	}
	defer rows.Close()

	summaries := make([]models.EventSummary, 0)
	for rows.Next() {
		var sm models.EventSummary
		if err := rows.Scan(&sm.ID, &sm.Title, &sm.EventDate, &sm.Status, &sm.VenueName, &sm.City, &sm.TicketCount, &sm.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, sm)
	}
	return summaries, rows.Err()
}
