package handler

import (
	internalWS "ai-siteplanner-be/internal/websocket"

	"ai-siteplanner-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// ProgressHandler exposes the live progress feed. There is no auth on
// the socket: the service is single-session and the feed carries no
// secrets, only stage changes and progress lines.
type ProgressHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewProgressHandler(hub *internalWS.Hub, log logger.ILogger) *ProgressHandler {
	return &ProgressHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *ProgressHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/plan/v1/ws", h.ServeWs)
}

// ServeWs upgrades the connection and hands it to the hub.
func (h *ProgressHandler) ServeWs(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("ProgressHandler", "Starting WebSocket session", nil)
			internalWS.ServeWs(h.hub, conn)
			h.logger.Info("ProgressHandler", "WebSocket session ended", nil)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
