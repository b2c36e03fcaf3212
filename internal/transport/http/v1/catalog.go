package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pitstopd/pitstop/internal/catalog"
	"github.com/pitstopd/pitstop/internal/domain"
)

// ListDealerships returns dealerships, optionally filtered by location
// and service. Pure read.
// GET /v1/dealerships?location=&service=
func (h *Handler) ListDealerships(c echo.Context) error {
	results := h.store.Search(c.QueryParam("location"), c.QueryParam("service"))
	return c.JSON(http.StatusOK, map[string]any{
		"dealerships": results,
	})
}

// GetAvailability returns the available slots for a dealership, sorted by
// (date, time), optionally narrowed to one date. Pure read.
// GET /v1/dealerships/:dealership_id/availability?date=
func (h *Handler) GetAvailability(c echo.Context) error {
	dealershipID := c.Param("dealership_id")
	slots, err := h.store.Availability(dealershipID, c.QueryParam("date"))
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "dealership not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	catalog.SortSlots(slots)
	if slots == nil {
		slots = []domain.TimeSlot{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"slots": slots,
	})
}

// ListBookings returns all current appointments in insertion order.
// GET /v1/bookings
func (h *Handler) ListBookings(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"bookings": h.bookings.List(),
	})
}
