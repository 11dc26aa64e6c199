package handlers

import (
	"net/http"

	"estatehub/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

// Health reports the latest dependency snapshot. It answers 503 while a
// required dependency is down.
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.Monitor.Status(c.Request.Context())
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	utils.Respond(c, code, status, "Hi, I'm EstateHub")
}
