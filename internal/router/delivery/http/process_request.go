package http

import (
	"github.com/gin-gonic/gin"
)

// processRouteReq binds and validates the route request body.
func (h *handler) processRouteReq(c *gin.Context) (routeReq, error) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, req.validate()
}

// processDepartmentReq binds the department id path parameter.
func (h *handler) processDepartmentReq(c *gin.Context) (departmentReq, error) {
	var req departmentReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, errEmptyParam
	}
	return req, req.validate()
}

// processPrerequisitesReq binds the intent path parameter.
func (h *handler) processPrerequisitesReq(c *gin.Context) (prerequisitesReq, error) {
	var req prerequisitesReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, errEmptyParam
	}
	return req, req.validate()
}
