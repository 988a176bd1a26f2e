package handlers

import (
	"net/http"
	"os"

	"casino_webapp/internal/logger"
	"casino_webapp/internal/service"
	"casino_webapp/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WS подключает клиента к ленте результатов. Токен передается
// query-параметром, т.к. браузерный WebSocket не умеет заголовки.
func (h *Handler) WS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token required"})
		return
	}
	if _, _, err := service.ParseToken(token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "" {
				return true
			}
			return r.Header.Get("Origin") == allowedOrigin
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("не удалось обновить соединение до websocket", "error", err)
		return
	}

	client := ws.NewClient(conn, h.Hub)
	go client.Run()
}
