package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/helloasmak/vyra/internal/domain"
	"github.com/helloasmak/vyra/internal/inquiry"
)

// SubmitBooking records a journey request.
// POST /v1/inquiries/booking
func (h *Handler) SubmitBooking(c echo.Context) error {
	var req domain.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	ack, err := h.service.SubmitBooking(c.Request().Context(), req)
	if err != nil {
		return inquiryError(c, err)
	}
	return c.JSON(http.StatusCreated, ack)
}

// SubmitPartnership records an agency application.
// POST /v1/inquiries/partnership
func (h *Handler) SubmitPartnership(c echo.Context) error {
	var app domain.PartnershipApplication
	if err := c.Bind(&app); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	ack, err := h.service.SubmitPartnership(c.Request().Context(), app)
	if err != nil {
		return inquiryError(c, err)
	}
	return c.JSON(http.StatusCreated, ack)
}

func inquiryError(c echo.Context, err error) error {
	var verr *inquiry.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":  "invalid inquiry",
			"fields": verr.Fields,
		})
	}
	if errors.Is(err, domain.ErrInvalidInquiry) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to record inquiry"})
}
