package handler

import (
	"net/http"
	"runtime"
	"time"

	"shiftlist/config"
	"shiftlist/internal/pkg/response"
	"shiftlist/internal/service"

	"github.com/gin-gonic/gin"
)

type RuntimeInfo struct {
	Env       string        `json:"env"`
	Name      string        `json:"name"`
	Version   string        `json:"version"`
	GoVersion string        `json:"go_version"`
	StartAt   time.Time     `json:"start_at"`
	Uptime    time.Duration `json:"uptime"`
}

type HealthHandler struct {
	healthStatus *service.HealthService
	info         RuntimeInfo
}

func NewHealthHandler(conf *config.Configuration, status *service.HealthService) *HealthHandler {
	return &HealthHandler{
		healthStatus: status,
		info: RuntimeInfo{
			Env:       conf.App.Env,
			Name:      conf.App.Name,
			Version:   conf.App.Version,
			GoVersion: runtime.Version(),
			StartAt:   time.Now(),
		},
	}
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	if h.healthStatus.IsLive() {
		c.JSON(http.StatusOK, gin.H{"status": "alive"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}

func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.healthStatus.IsReady() {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, response.Response{
		Code:        0,
		Data:        "ok",
		Message:     "success",
		Description: "service is alive",
	})
	c.Abort()
}

// Version 版本與 uptime
func (h *HealthHandler) Version(c *gin.Context) {
	info := h.info
	info.Uptime = time.Since(info.StartAt)
	c.JSON(http.StatusOK, info)
}
