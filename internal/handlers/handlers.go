package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ticketing/internal/models"
)

// Store is the persistence surface the handlers depend on.
type Store interface {
	Ping(ctx context.Context) error
	ListVenues(ctx context.Context) ([]models.Venue, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, cmd models.CreateEventCommand) (models.CreatedEvent, error)
	ImportEvent(ctx context.Context, venueID int64, title string, date time.Time) (models.ImportedEvent, error)
	TicketSummary(ctx context.Context) ([]models.EventSummary, error)
	ListTickets(ctx context.Context) ([]models.Ticket, error)
	CreateTicket(ctx context.Context, cmd models.CreateTicketCommand) (models.CreatedTicket, error)
}

// Handler maps validated requests onto store calls and store results onto
// HTTP responses.
type Handler struct {
	store Store
	log   *zap.Logger
}

func New(store Store, log *zap.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// serverError logs a query failure and surfaces the underlying message.
// Handler errors never terminate the process.
func (h *Handler) serverError(c *gin.Context, op string, err error) {
	h.log.Error(op, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
