package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketing/internal/models"
)

// ListEvents handles GET /api/events.
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.store.ListEvents(c.Request.Context())
	if err != nil {
		h.serverError(c, "list events", err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// CreateEvent handles POST /api/events. Validation happens before any query
// is issued.
func (h *Handler) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON payload")
		return
	}
	cmd, verr := req.Validate()
	if verr != nil {
		badRequest(c, verr.Message)
		return
	}

	created, err := h.store.CreateEvent(c.Request.Context(), cmd)
	if err != nil {
		h.serverError(c, "create event", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ImportEvents handles POST /api/etl/events. Items missing a required field
// are filtered out up front; the survivors are inserted one at a time,
// best-effort. Rows loaded before a failure stay loaded.
func (h *Handler) ImportEvents(c *gin.Context) {
	var req models.ImportEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON payload")
		return
	}

	items := req.Filter()
	if len(items) == 0 {
		badRequest(c, "Provide an array with venueId, title, eventDate")
		return
	}

	imported := make([]models.ImportedEvent, 0, len(items))
	for _, item := range items {
		date, ok := models.ParseEventDate(item.EventDate)
		if !ok {
			h.serverError(c, "import events", fmt.Errorf("invalid eventDate %q", item.EventDate))
			return
		}
		ev, err := h.store.ImportEvent(c.Request.Context(), item.VenueID, item.Title, date)
		if err != nil {
			h.serverError(c, "import events", err)
			return
		}
		imported = append(imported, ev)
	}

	c.JSON(http.StatusOK, models.ImportResult{Loaded: len(imported), Events: imported})
}

// TicketSummary handles GET /api/events/ticket-summary.
func (h *Handler) TicketSummary(c *gin.Context) {
	summaries, err := h.store.TicketSummary(c.Request.Context())
	if err != nil {
		h.serverError(c, "ticket summary", err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}
