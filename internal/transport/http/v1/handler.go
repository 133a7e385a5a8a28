// Package v1 provides the versioned REST handlers.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/helloasmak/vyra/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Reference content
	e.GET("/v1/services", h.ListServices)
	e.GET("/v1/services/:service_id", h.GetService)
	e.GET("/v1/faqs", h.ListFAQs)
	e.GET("/v1/partners", h.GetPartners)
	e.GET("/v1/careers", h.ListCareers)
	e.GET("/v1/support", h.ListSupportChannels)
	e.GET("/v1/legal/:kind", h.GetLegal)

	// Concierge chat
	e.POST("/v1/chat/sessions", h.CreateChatSession)
	e.GET("/v1/chat/sessions/:session_id/messages", h.GetChatMessages)
	e.POST("/v1/chat/sessions/:session_id/messages", h.SendChatMessage)
	e.POST("/v1/concierge", h.Ask)

	// Inquiry forms
	e.POST("/v1/inquiries/booking", h.SubmitBooking)
	e.POST("/v1/inquiries/partnership", h.SubmitPartnership)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	if err := h.service.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
