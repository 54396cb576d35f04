package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ticketing/internal/config"
	"ticketing/internal/handlers"
)

// NewRouter wires the REST API and, when configured, the static frontend
// directory.
func NewRouter(cfg config.Config, h *handlers.Handler, log *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(log))

	api := r.Group("/api")
	api.GET("/venues", h.ListVenues)
	api.GET("/events", h.ListEvents)
	api.POST("/events", h.CreateEvent)
	api.POST("/etl/events", h.ImportEvents)
	api.GET("/events/ticket-summary", h.TicketSummary)
	api.GET("/tickets", h.ListTickets)
	api.POST("/tickets", h.CreateTicket)
	api.GET("/health", h.Health)

	// Frontend assets fall through to a plain file server so static paths
	// never collide with the /api routes.
	if cfg.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(cfg.StaticDir))
		r.NoRoute(gin.WrapH(fileServer))
	}

	return r
}
