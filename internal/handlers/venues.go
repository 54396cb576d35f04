package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListVenues handles GET /api/venues.
func (h *Handler) ListVenues(c *gin.Context) {
	venues, err := h.store.ListVenues(c.Request.Context())
	if err != nil {
		h.serverError(c, "list venues", err)
		return
	}
	c.JSON(http.StatusOK, venues)
}
