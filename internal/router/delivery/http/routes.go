package http

import (
	"github.com/gin-gonic/gin"

	"patient-intake-router/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only the classification route is rate limited; lookups are served from memory.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/route", mw.RateLimit(), h.Route)
	rg.GET("/departments/:id", h.DepartmentDetail)
	rg.GET("/intents/:intent/prerequisites", h.IntentPrerequisites)
}
