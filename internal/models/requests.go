package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// ValidationError is a client-input failure. Handlers translate it to a 400
// response without touching the database.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) *ValidationError { return &ValidationError{Message: msg} }

// FlexInt accepts a JSON number or a numeric string. Callers that receive
// hand-built payloads (the import feed in particular) send both.
type FlexInt struct {
	value int64
	valid bool
}

// Int64 reports the coerced value and whether coercion succeeded.
func (f FlexInt) Int64() (int64, bool) { return f.value, f.valid }

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	f.value, f.valid = 0, false
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil
		}
		s = strings.TrimSpace(str)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		f.value, f.valid = n, true
		return nil
	}
	// Fractional input truncates toward zero, matching integer coercion of
	// free-form feeds. The range check also rules out NaN and the
	// infinities, whose int64 conversion is undefined.
	if fl, err := strconv.ParseFloat(s, 64); err == nil && fl >= -(1<<63) && fl < (1<<63) {
		f.value, f.valid = int64(fl), true
	}
	return nil
}

// FlexFloat accepts a JSON number or a numeric string.
type FlexFloat struct {
	value float64
	valid bool
}

// Float64 reports the coerced value and whether coercion succeeded.
func (f FlexFloat) Float64() (float64, bool) { return f.value, f.valid }

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	f.value, f.valid = 0, false
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil
		}
		s = strings.TrimSpace(str)
	}
	// ParseFloat accepts "NaN" and "Infinity"; neither is a usable amount,
	// so non-finite parses fall through to the zero default.
	if fl, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(fl) && !math.IsInf(fl, 0) {
		f.value, f.valid = fl, true
	}
	return nil
}

// eventDateLayouts are the accepted date/time formats, most specific first.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseEventDate parses an event date in any accepted layout.
func ParseEventDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CreateEventRequest is the POST /api/events payload.
type CreateEventRequest struct {
	VenueID   FlexInt `json:"venueId"`
	Title     string  `json:"title"`
	EventDate string  `json:"eventDate"`
}

// CreateEventCommand is a fully validated event creation.
type CreateEventCommand struct {
	VenueID   int64
	Title     string
	EventDate time.Time
}

// Validate coerces and checks the request, producing either a well-formed
// command or a ValidationError.
func (r CreateEventRequest) Validate() (CreateEventCommand, *ValidationError) {
	venueID, ok := r.VenueID.Int64()
	title := strings.TrimSpace(r.Title)
	if !ok || venueID == 0 || title == "" || strings.TrimSpace(r.EventDate) == "" {
		return CreateEventCommand{}, invalid("venueId, title and eventDate are required")
	}
	date, ok := ParseEventDate(r.EventDate)
	if !ok {
		return CreateEventCommand{}, invalid("eventDate must be a valid date")
	}
	return CreateEventCommand{VenueID: venueID, Title: title, EventDate: date}, nil
}

// ImportItem is one record of the bulk import feed. Field matching is
// case-insensitive, so both venueId and VenueId casings bind.
type ImportItem struct {
	VenueID   FlexInt `json:"venueId"`
	Title     string  `json:"title"`
	EventDate string  `json:"eventDate"`
}

// ImportEventsRequest accepts either a bare JSON array or an object with an
// items field wrapping the same array.
type ImportEventsRequest struct {
	Items []ImportItem
}

func (r *ImportEventsRequest) UnmarshalJSON(b []byte) error {
	r.Items = nil
	var items []ImportItem
	if err := json.Unmarshal(b, &items); err == nil {
		r.Items = items
		return nil
	}
	var wrapped struct {
		Items []ImportItem `json:"items"`
	}
	if err := json.Unmarshal(b, &wrapped); err != nil {
		return err
	}
	r.Items = wrapped.Items
	return nil
}

// ImportEventCommand is one import item that survived filtering. The date
// stays raw here: a bad date on a surviving item fails at insert time, and
// the loader's partial progress stands.
type ImportEventCommand struct {
	VenueID   int64
	Title     string
	EventDate string
}

// Filter drops items missing any required field and returns the survivors.
func (r ImportEventsRequest) Filter() []ImportEventCommand {
	out := make([]ImportEventCommand, 0, len(r.Items))
	for _, item := range r.Items {
		venueID, ok := item.VenueID.Int64()
		title := strings.TrimSpace(item.Title)
		if !ok || venueID == 0 || title == "" || strings.TrimSpace(item.EventDate) == "" {
			continue
		}
		out = append(out, ImportEventCommand{
			VenueID:   venueID,
			Title:     title,
			EventDate: strings.TrimSpace(item.EventDate),
		})
	}
	return out
}

// CreateTicketRequest is the POST /api/tickets payload.
type CreateTicketRequest struct {
	EventID      FlexInt   `json:"eventId"`
	CustomerName string    `json:"customerName"`
	Quantity     FlexInt   `json:"quantity"`
	Total        FlexFloat `json:"total"`
}

// CreateTicketCommand is a fully validated ticket creation.
type CreateTicketCommand struct {
	EventID      int64
	CustomerName string
	Quantity     int64
	Total        float64
}

// Validate coerces and checks the request. Quantity falls back to 1 when it
// does not coerce to a nonzero integer; total falls back to 0 when it does
// not coerce at all, and is rejected when negative.
func (r CreateTicketRequest) Validate() (CreateTicketCommand, *ValidationError) {
	eventID, ok := r.EventID.Int64()
	customer := strings.TrimSpace(r.CustomerName)
	if !ok || eventID == 0 || customer == "" {
		return CreateTicketCommand{}, invalid("eventId and customerName are required")
	}
	quantity, ok := r.Quantity.Int64()
	if !ok || quantity == 0 {
		quantity = 1
	}
	total, ok := r.Total.Float64()
	if !ok {
		total = 0
	}
	if total < 0 {
		return CreateTicketCommand{}, invalid("total must not be negative")
	}
	return CreateTicketCommand{
		EventID:      eventID,
		CustomerName: customer,
		Quantity:     quantity,
		Total:        total,
	}, nil
}
