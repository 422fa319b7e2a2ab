package http

import (
	"github.com/gin-gonic/gin"

	"patient-intake-router/pkg/response"
)

// Route godoc
// @Summary     Route a patient utterance
// @Description Classifies the caller's intent and returns a routing decision. Classification
// @Description failures are reported in-band as a decision with status "error".
// @Tags        Routing
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Patient utterance"
// @Success     200  {object} response.Resp "Decision in data"
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		h.l.Warnf(ctx, "%s: %v", logPrefixRoute, err)
		response.Error(c, err, nil)
		return
	}

	decision := h.router.ProcessUserInput(ctx, req.text())
	h.l.Infof(ctx, "%s: decision status=%s", logPrefixRoute, decision.Status)

	response.OK(c, decision)
}

// DepartmentDetail godoc
// @Summary     Get department
// @Description Returns a configured department by id.
// @Tags        Routing
// @Produce     json
// @Param       id path string true "Department ID"
// @Success     200 {object} departmentResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/departments/{id} [GET]
func (h *handler) DepartmentDetail(c *gin.Context) {
	req, err := h.processDepartmentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	dept, ok := h.cfg.Department(req.ID)
	if !ok {
		response.Error(c, errDepartmentNotFound, gin.H{"id": req.ID})
		return
	}

	response.OK(c, newDepartmentResp(dept))
}

// IntentPrerequisites godoc
// @Summary     Get prerequisites for an intent
// @Description Returns required and optional prerequisites. Both lists are empty for unknown intents.
// @Tags        Routing
// @Produce     json
// @Param       intent path string true "Intent"
// @Success     200 {object} prerequisitesResp
// @Router      /api/v1/intents/{intent}/prerequisites [GET]
func (h *handler) IntentPrerequisites(c *gin.Context) {
	req, err := h.processPrerequisitesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newPrerequisitesResp(req.Intent, h.cfg.PrerequisitesForIntent(req.Intent)))
}
