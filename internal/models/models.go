package models

import "time"

// Venue is a physical location that can host events. City and Capacity are
// optional and render as null when absent.
type Venue struct {
	ID       int64   `json:"Id"`
	Name     string  `json:"Name"`
	City     *string `json:"City"`
	Capacity *int64  `json:"Capacity"`
}

// Event is a scheduled occurrence at a venue, joined with the venue's
// name/city for listing.
type Event struct {
	ID        int64     `json:"Id"`
	VenueID   int64     `json:"VenueId"`
	Title     string    `json:"Title"`
	EventDate time.Time `json:"EventDate"`
	Status    string    `json:"Status"`
	VenueName string    `json:"VenueName"`
	City      *string   `json:"City"`
}

// CreatedEvent is the row returned by POST /api/events.
type CreatedEvent struct {
	ID        int64     `json:"Id"`
	Title     string    `json:"Title"`
	EventDate time.Time `json:"EventDate"`
	Status    string    `json:"Status"`
}

// ImportedEvent is one row returned by the bulk import endpoint.
type ImportedEvent struct {
	ID        int64     `json:"Id"`
	Title     string    `json:"Title"`
	EventDate time.Time `json:"EventDate"`
}

// ImportResult is the POST /api/etl/events response.
type ImportResult struct {
	Loaded int             `json:"loaded"`
	Events []ImportedEvent `json:"events"`
}

// EventSummary aggregates ticket sales per event. TicketCount and
// TotalRevenue are zero, never null, for events without tickets.
type EventSummary struct {
	ID           int64     `json:"Id"`
	Title        string    `json:"Title"`
	EventDate    time.Time `json:"EventDate"`
	Status       string    `json:"Status"`
	VenueName    string    `json:"VenueName"`
	City         *string   `json:"City"`
	TicketCount  int64     `json:"TicketCount"`
	TotalRevenue float64   `json:"TotalRevenue"`
}

// Ticket is a sale record against an event, joined with the event's
// title/date for listing.
type Ticket struct {
	ID           int64     `json:"Id"`
	EventID      int64     `json:"EventId"`
	CustomerName string    `json:"CustomerName"`
	Quantity     int64     `json:"Quantity"`
	Total        float64   `json:"Total"`
	EventTitle   string    `json:"EventTitle"`
	EventDate    time.Time `json:"EventDate"`
}

// CreatedTicket is the row returned by POST /api/tickets.
type CreatedTicket struct {
	ID           int64   `json:"Id"`
	EventID      int64   `json:"EventId"`
	CustomerName string  `json:"CustomerName"`
	Quantity     int64   `json:"Quantity"`
	Total        float64 `json:"Total"`
}
