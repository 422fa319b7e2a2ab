package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"patient-intake-router/internal/router"
	"patient-intake-router/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "patient-intake-router"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": srv.serviceName,
	})
}

// readyCheck reports ready once the classification prompt is available.
// Without it every routing request would end in a configuration error.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "Prompt library incomplete"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	_, promptLoaded := srv.prompts.Get(router.PromptCategory, router.PromptName)

	body := gin.H{
		"version":       HealthVersion,
		"service":       srv.serviceName,
		"routing_rules": len(srv.routing.Rules()),
		"prompt_loaded": promptLoaded,
	}
	if !promptLoaded {
		body["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   router.MsgPromptNotFound,
			Data:      body,
		})
		return
	}

	body["status"] = "ready"
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": srv.serviceName,
	})
}
