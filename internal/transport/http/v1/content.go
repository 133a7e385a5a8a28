package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/helloasmak/vyra/internal/domain"
)

// ListServices returns the service collection.
// GET /v1/services
func (h *Handler) ListServices(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"services": h.service.Services(),
	})
}

// GetService returns one service.
// GET /v1/services/:service_id
func (h *Handler) GetService(c echo.Context) error {
	svc, err := h.service.Service(c.Param("service_id"))
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "service not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, svc)
}

// GET /v1/faqs
func (h *Handler) ListFAQs(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"faqs": h.service.FAQs(),
	})
}

// GET /v1/partners
func (h *Handler) GetPartners(c echo.Context) error {
	partners, steps := h.service.Partners()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"partners":          partners,
		"steps":             steps,
		"partnership_types": domain.PartnershipTypes,
	})
}

// GET /v1/careers
func (h *Handler) ListCareers(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"careers": h.service.Careers(),
	})
}

// GET /v1/support
func (h *Handler) ListSupportChannels(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"channels": h.service.SupportChannels(),
	})
}

// GetLegal returns the privacy, terms or cookie policy.
// GET /v1/legal/:kind
func (h *Handler) GetLegal(c echo.Context) error {
	doc, err := h.service.Legal(domain.LegalKind(c.Param("kind")))
	if errors.Is(err, domain.ErrUnknownLegalKind) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "legal document not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, doc)
}
