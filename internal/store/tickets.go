package store

import (
	"context"
	"fmt"

	"ticketing/internal/models"
)

// ListTickets returns all tickets joined with their event, newest first.
func (s *Store) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()

	pool, err := s.acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `
		SELECT t.id, t.event_id, t.customer_name, t.quantity, t.total::float8,
		       e.title, e.event_date
		FROM tickets t
		JOIN events e ON e.id = t.event_id
		ORDER BY t.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]models.Ticket, 0)
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(&t.ID, &t.EventID, &t.CustomerName, &t.Quantity, &t.Total, &t.EventTitle, &t.EventDate); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// CreateTicket inserts a ticket sale.
func (s *Store) CreateTicket(ctx context.Context, cmd models.CreateTicketCommand) (models.CreatedTicket, error) {
	ctx, cancel := queryContext(ctx)
	defer cancel()

	pool, err := s.acquire(ctx)
	if err != nil {
		return models.CreatedTicket{}, err
	}

	var t models.CreatedTicket
	err = pool.QueryRow(ctx, `
		INSERT INTO tickets (event_id, customer_name, quantity, total)
		VALUES ($1, $2, $3, $4)
		RETURNING id, event_id, customer_name, quantity, total::float8`,
		cmd.EventID, cmd.CustomerName, cmd.Quantity, cmd.Total,
	).Scan(&t.ID, &t.EventID, &t.CustomerName, &t.Quantity, &t.Total)
	if err != nil {
		return models.CreatedTicket{}, fmt.Errorf("insert ticket: %w", err)
	}
	return t, nil
}
