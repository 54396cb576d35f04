package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketing/internal/models"
)

// ListTickets handles GET /api/tickets.
func (h *Handler) ListTickets(c *gin.Context) {
	tickets, err := h.store.ListTickets(c.Request.Context())
	if err != nil {
		h.serverError(c, "list tickets", err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// CreateTicket handles POST /api/tickets.
func (h *Handler) CreateTicket(c *gin.Context) {
	var req models.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid JSON payload")
		return
	}
	cmd, verr := req.Validate()
	if verr != nil {
		badRequest(c, verr.Message)
		return
	}

	created, err := h.store.CreateTicket(c.Request.Context(), cmd)
	if err != nil {
		h.serverError(c, "create ticket", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
