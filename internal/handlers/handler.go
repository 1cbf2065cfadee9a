package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/smartcare/smartcare-api/internal/config"
	"github.com/smartcare/smartcare-api/internal/services"
	"github.com/smartcare/smartcare-api/internal/store"
)

// Handler holds the dependencies shared by all route handlers.
type Handler struct {
	Store  store.Store
	Mailer services.Mailer
	Config *config.Config
	Logger zerolog.Logger
}

func NewHandler(st store.Store, mailer services.Mailer, cfg *config.Config, logger zerolog.Logger) *Handler {
	return &Handler{
		Store:  st,
		Mailer: mailer,
		Config: cfg,
		Logger: logger,
	}
}

// Root is the banner endpoint.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Smart Care Routing Backend is running!"})
}

// Health reports which store backend is serving requests.
func (h *Handler) Health(c *gin.Context) {
	message := "Backend and database are working correctly"
	if h.Store.Name() == "memory" {
		message = "Backend is running with in-memory storage"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": h.Store.Name(),
		"message":  message,
	})
}
