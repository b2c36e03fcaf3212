package v1

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ChatRequest is one user message bound to a session.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" validate:"required"`
}

// ChatResponse is the assistant's reply for one turn.
type ChatResponse struct {
	Message   string `json:"message"`
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
}

// Chat handles one conversation turn.
// POST /v1/chat
func (h *Handler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	reply, err := h.agent.Chat(c.Request().Context(), req.SessionID, req.Message)
	if err != nil {
		// Unexpected failures surface as success=false rather than an
		// HTTP error; session history was not touched.
		h.logger.Error("chat turn failed",
			zap.String("session_id", req.SessionID),
			zap.Error(err))
		return c.JSON(http.StatusOK, ChatResponse{
			Message:   "Error: " + err.Error(),
			Success:   false,
			SessionID: req.SessionID,
		})
	}
	return c.JSON(http.StatusOK, ChatResponse{
		Message:   reply,
		Success:   true,
		SessionID: req.SessionID,
	})
}

// ClearHistory resets a session's history to empty.
// DELETE /v1/sessions/:session_id/history
func (h *Handler) ClearHistory(c echo.Context) error {
	sessionID := c.Param("session_id")
	h.agent.ClearHistory(sessionID)
	return c.JSON(http.StatusOK, map[string]string{
		"status":     "cleared",
		"session_id": sessionID,
	})
}
