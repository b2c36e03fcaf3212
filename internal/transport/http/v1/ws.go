package v1

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ChatWS runs chat turns over a websocket: every JSON frame carries a
// ChatRequest and gets a ChatResponse frame back. Turns on one connection
// run sequentially; the session lock still applies across connections.
// GET /v1/chat/ws
func (h *Handler) ChatWS(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	for {
		var req ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read failed", zap.Error(err))
			}
			return nil
		}
		if req.SessionID == "" {
			req.SessionID = uuid.New().String()
		}

		resp := ChatResponse{Success: true, SessionID: req.SessionID}
		if req.Message == "" {
			resp.Success = false
			resp.Message = "Error: message is required"
		} else if reply, err := h.agent.Chat(c.Request().Context(), req.SessionID, req.Message); err != nil {
			h.logger.Error("chat turn failed",
				zap.String("session_id", req.SessionID),
				zap.Error(err))
			resp.Success = false
			resp.Message = "Error: " + err.Error()
		} else {
			resp.Message = reply
		}

		if err := conn.WriteJSON(resp); err != nil {
			return nil
		}
	}
}
