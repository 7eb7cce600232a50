package handlers

import (
	"net/http"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

// RootHandler handles GET /.
func (h *HealthHandler) RootHandler(c *gin.Context) {
	c.String(http.StatusOK, "doctors portal server is running")
}

// HealthCheckHandler reports the last dependency snapshot.
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	if h == nil || h.Monitor == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}
	status := h.Monitor.Status()
	code := http.StatusOK
	if !status.OK() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
