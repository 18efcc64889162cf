package httpserver

import (
	"net/http"

	"executive-assistant/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthMessage = "Executive assistant is up"
	HealthVersion = "1.0.0"
	ServiceName   = "executive-assistant"
)

// ReadinessProbe reports why the server cannot serve dialogue yet.
// A nil error means ready.
type ReadinessProbe func() error

func probeBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, probeBody("healthy"))
}

// readyCheck runs the readiness probe, typically "is a project snapshot loaded".
// @Summary Readiness Check
// @Description Check if the assistant has a project snapshot to answer from
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "Not ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.ready != nil {
		if err := srv.ready(); err != nil {
			body := probeBody("not_ready")
			body["reason"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   "not ready",
				Data:      body,
			})
			return
		}
	}
	response.OK(c, probeBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, probeBody("alive"))
}
