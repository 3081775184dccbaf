package httpserver

import (
	"github.com/gin-gonic/gin"

	"phone-assistant/pkg/response"
)

const (
	ServiceName    = "phone-assistant"
	ServiceVersion = "1.0.0"
)

type probeResp struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// probe answers a system probe with the given status word.
func (srv HTTPServer) probe(status string) gin.HandlerFunc {
	body := probeResp{
		Status:      status,
		Service:     ServiceName,
		Version:     ServiceVersion,
		Environment: srv.environment,
	}
	return func(c *gin.Context) {
		response.OK(c, body)
	}
}

// @Summary Health Check
// @Tags System
// @Produce json
// @Success 200 {object} probeResp
// @Router /health [get]
func (srv HTTPServer) healthCheck() gin.HandlerFunc { return srv.probe("healthy") }

// @Summary Readiness Check
// @Description Ready once every route is mapped.
// @Tags System
// @Produce json
// @Success 200 {object} probeResp
// @Router /ready [get]
func (srv HTTPServer) readyCheck() gin.HandlerFunc { return srv.probe("ready") }

// @Summary Liveness Check
// @Tags System
// @Produce json
// @Success 200 {object} probeResp
// @Router /live [get]
func (srv HTTPServer) liveCheck() gin.HandlerFunc { return srv.probe("alive") }
