// Package v1 provides the HTTP handlers for the assistant API.
package v1

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/pitstopd/pitstop/internal/agent"
	"github.com/pitstopd/pitstop/internal/catalog"
	"github.com/pitstopd/pitstop/internal/ledger"
)

// Handler handles HTTP requests.
type Handler struct {
	agent    *agent.Controller
	sessions *agent.SessionStore
	store    *catalog.Store
	bookings *ledger.Ledger
	logger   *zap.Logger
}

// NewHandler creates a new handler.
func NewHandler(controller *agent.Controller, sessions *agent.SessionStore, store *catalog.Store, bookings *ledger.Ledger, logger *zap.Logger) *Handler {
	return &Handler{
		agent:    controller,
		sessions: sessions,
		store:    store,
		bookings: bookings,
		logger:   logger,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/v1/chat", h.Chat)
	e.GET("/v1/chat/ws", h.ChatWS)
	e.DELETE("/v1/sessions/:session_id/history", h.ClearHistory)

	e.GET("/v1/dealerships", h.ListDealerships)
	e.GET("/v1/dealerships/:dealership_id/availability", h.GetAvailability)
	e.GET("/v1/bookings", h.ListBookings)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a request validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
