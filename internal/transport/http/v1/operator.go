package v1

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/helloasmak/vyra/internal/domain"
)

// RegisterOperatorRoutes registers the inquiry read routes behind a bearer token.
func (h *Handler) RegisterOperatorRoutes(e *echo.Echo, token string) {
	g := e.Group("/v1/operator", middleware.KeyAuth(func(key string, c echo.Context) (bool, error) {
		return subtle.ConstantTimeCompare([]byte(key), []byte(token)) == 1, nil
	}))

	g.GET("/bookings", h.ListBookings)
	g.GET("/bookings/:id", h.GetBooking)
	g.GET("/partnerships", h.ListPartnerships)
	g.GET("/partnerships/:id", h.GetPartnership)
}

// GET /v1/operator/bookings?limit=
func (h *Handler) ListBookings(c echo.Context) error {
	bookings, err := h.service.RecentBookings(c.Request().Context(), queryLimit(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"bookings": bookings,
	})
}

// GET /v1/operator/bookings/:id
func (h *Handler) GetBooking(c echo.Context) error {
	booking, err := h.service.Booking(c.Request().Context(), c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "booking not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, booking)
}

// GET /v1/operator/partnerships?limit=
func (h *Handler) ListPartnerships(c echo.Context) error {
	apps, err := h.service.RecentPartnerships(c.Request().Context(), queryLimit(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"partnerships": apps,
	})
}

// GET /v1/operator/partnerships/:id
func (h *Handler) GetPartnership(c echo.Context) error {
	app, err := h.service.Partnership(c.Request().Context(), c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "partnership not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, app)
}

// queryLimit parses ?limit=, leaving the store default for missing or bad values.
func queryLimit(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
