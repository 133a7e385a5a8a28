package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/helloasmak/vyra/internal/domain"
)

type chatRequest struct {
	Text string `json:"text"`
}

// CreateChatSession opens a chat seeded with the welcome message.
// POST /v1/chat/sessions
func (h *Handler) CreateChatSession(c echo.Context) error {
	sess := h.service.StartChat(c.Request().Context())
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"session_id": sess.SessionID,
		"messages":   sess.Messages,
	})
}

// GetChatMessages returns a session transcript.
// GET /v1/chat/sessions/:session_id/messages
func (h *Handler) GetChatMessages(c echo.Context) error {
	messages, err := h.service.ChatHistory(c.Request().Context(), c.Param("session_id"))
	if err != nil {
		return chatError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"messages": messages,
	})
}

// SendChatMessage sends a guest message and waits for the concierge reply.
// POST /v1/chat/sessions/:session_id/messages
func (h *Handler) SendChatMessage(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	reply, messages, err := h.service.SendChatMessage(c.Request().Context(), c.Param("session_id"), req.Text)
	if err != nil {
		return chatError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"reply":    reply,
		"messages": messages,
	})
}

// Ask answers one question without a session.
// POST /v1/concierge
func (h *Handler) Ask(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	reply, err := h.service.Ask(c.Request().Context(), req.Text)
	if err != nil {
		return chatError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"reply": reply})
}

func chatError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	case errors.Is(err, domain.ErrSessionBusy):
		return c.JSON(http.StatusConflict, map[string]string{"error": "a reply is already pending for this session"})
	case errors.Is(err, domain.ErrMessageRejected):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
