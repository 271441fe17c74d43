package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/datadesk/internal/application"
	"github.com/linskybing/datadesk/internal/domain/audit"
	"github.com/linskybing/datadesk/internal/domain/response"
	"github.com/linskybing/datadesk/internal/repository"
	"github.com/linskybing/datadesk/pkg/logger"
	apiresp "github.com/linskybing/datadesk/pkg/response"
	"github.com/linskybing/datadesk/pkg/utils"
)

var saveLabels = map[string]string{
	"Grid":    "grid",
	"Version": "version",
	"Status":  "status",
}

type ResponseHandler struct {
	svc   *application.ResponseService
	audit repository.AuditRepo
	log   *logger.Logger
}

func NewResponseHandler(svc *application.ResponseService, audit repository.AuditRepo, log *logger.Logger) *ResponseHandler {
	return &ResponseHandler{svc: svc, audit: audit, log: log}
}

// MyJobs godoc
// @Summary List the caller's assigned jobs with their response status
// @Tags coder
// @Security BearerAuth
// @Produce json
// @Success 200 {array} application.AssignedJob
// @Failure 401 {object} apiresp.ErrorResponse "Unauthorized"
// @Router /me/jobs [get]
func (h *ResponseHandler) MyJobs(c *gin.Context) {
	email, err := utils.GetEmailFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apiresp.ErrorResponse{Error: err.Error()})
		return
	}

	jobs, err := h.svc.ListAssignedJobs(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Workspace godoc
// @Summary Load the grid for one assigned job
// @Tags coder
// @Security BearerAuth
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} application.Workspace
// @Failure 403 {object} apiresp.ErrorResponse "Job not assigned"
// @Failure 404 {object} apiresp.ErrorResponse "Template not found"
// @Router /jobs/{job_id}/workspace [get]
func (h *ResponseHandler) Workspace(c *gin.Context) {
	email, err := utils.GetEmailFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apiresp.ErrorResponse{Error: err.Error()})
		return
	}

	ws, err := h.svc.Workspace(c.Request.Context(), email, c.Param("job_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ws)
}

// SaveDraft godoc
// @Summary Save the grid as a draft
// @Tags coder
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param job_id path string true "Job ID"
// @Param input body response.SaveInput true "Grid rows and the last seen version"
// @Success 200 {object} response.Summary
// @Failure 400 {object} apiresp.ErrorResponse "Invalid grid"
// @Failure 403 {object} apiresp.ErrorResponse "Job not assigned"
// @Failure 409 {object} apiresp.ErrorResponse "Already submitted or stale version"
// @Router /jobs/{job_id}/response [put]
func (h *ResponseHandler) SaveDraft(c *gin.Context) {
	email, err := utils.GetEmailFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apiresp.ErrorResponse{Error: err.Error()})
		return
	}

	var input response.SaveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, apiresp.ErrorResponse{Error: bindingMessage(err, saveLabels)})
		return
	}

	resp, err := h.svc.SaveDraft(c.Request.Context(), email, c.Param("job_id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogAuditFromRequest(c, utils.AuditEntry{
		Action:       audit.ActionSave,
		ResourceType: audit.ResourceResponse,
		ResourceID:   resp.ResponseID,
		After:        response.Summarize(*resp),
		Description:  fmt.Sprintf("Saved draft v%d", resp.Version),
	}, h.audit, h.log)

	c.JSON(http.StatusOK, response.Summarize(*resp))
}

// Submit godoc
// @Summary Submit the grid as the final response
// @Description Requires confirm=true. A submitted response can no longer change.
// @Tags coder
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param job_id path string true "Job ID"
// @Param input body response.SubmitInput true "Grid rows, last seen version and confirmation"
// @Success 200 {object} response.Summary
// @Failure 400 {object} apiresp.ErrorResponse "Invalid grid or not confirmed"
// @Failure 403 {object} apiresp.ErrorResponse "Job not assigned"
// @Failure 409 {object} apiresp.ErrorResponse "Already submitted or stale version"
// @Router /jobs/{job_id}/response/submit [post]
func (h *ResponseHandler) Submit(c *gin.Context) {
	email, err := utils.GetEmailFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apiresp.ErrorResponse{Error: err.Error()})
		return
	}

	var input response.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, apiresp.ErrorResponse{Error: bindingMessage(err, saveLabels)})
		return
	}

	resp, err := h.svc.Submit(c.Request.Context(), email, c.Param("job_id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogAuditFromRequest(c, utils.AuditEntry{
		Action:       audit.ActionSubmit,
		ResourceType: audit.ResourceResponse,
		ResourceID:   resp.ResponseID,
		After:        response.Summarize(*resp),
		Description:  "Submitted response",
	}, h.audit, h.log)

	c.JSON(http.StatusOK, response.Summarize(*resp))
}

// ListResponses godoc
// @Summary List responses
// @Tags responses
// @Security BearerAuth
// @Produce json
// @Param status query string false "draft or submitted"
// @Param job_id query string false "Job ID"
// @Success 200 {array} response.Summary
// @Failure 400 {object} apiresp.ErrorResponse "Invalid filter"
// @Router /admin/responses [get]
func (h *ResponseHandler) ListResponses(c *gin.Context) {
	var filter response.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apiresp.ErrorResponse{Error: bindingMessage(err, saveLabels)})
		return
	}

	responses, err := h.svc.ListResponses(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]response.Summary, 0, len(responses))
	for _, r := range responses {
		out = append(out, response.Summarize(r))
	}
	c.JSON(http.StatusOK, out)
}

// GetResponse godoc
// @Summary Get one response with its answers
// @Tags responses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Response ID (email_jobid)"
// @Success 200 {object} response.Response
// @Failure 404 {object} apiresp.ErrorResponse "Response not found"
// @Router /admin/responses/{id} [get]
func (h *ResponseHandler) GetResponse(c *gin.Context) {
	resp, err := h.svc.GetResponse(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportResponses godoc
// @Summary Export responses as CSV
// @Tags responses
// @Security BearerAuth
// @Produce text/csv
// @Param status query string false "draft or submitted"
// @Param job_id query string false "Job ID"
// @Success 200 {file} file
// @Failure 400 {object} apiresp.ErrorResponse "Invalid filter"
// @Router /admin/responses/export [get]
func (h *ResponseHandler) ExportResponses(c *gin.Context) {
	var filter response.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apiresp.ErrorResponse{Error: bindingMessage(err, saveLabels)})
		return
	}

	var buf bytes.Buffer
	if err := h.svc.ExportCSV(c.Request.Context(), &buf, filter); err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("responses-%s.csv", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
