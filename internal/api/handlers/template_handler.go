package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/datadesk/internal/application"
	"github.com/linskybing/datadesk/internal/domain/audit"
	"github.com/linskybing/datadesk/internal/domain/template"
	"github.com/linskybing/datadesk/internal/repository"
	"github.com/linskybing/datadesk/pkg/logger"
	"github.com/linskybing/datadesk/pkg/response"
	"github.com/linskybing/datadesk/pkg/utils"
)

type TemplateHandler struct {
	svc   *application.TemplateService
	audit repository.AuditRepo
	log   *logger.Logger
}

func NewTemplateHandler(svc *application.TemplateService, audit repository.AuditRepo, log *logger.Logger) *TemplateHandler {
	return &TemplateHandler{svc: svc, audit: audit, log: log}
}

// UploadTemplate godoc
// @Summary Upload a template CSV
// @Description CSV headers: id,Item,Answer,Definition. An Answer cell holding a bracketed list becomes a dropdown.
// @Tags templates
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param job_id formData string true "Job ID"
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param file formData file true "Template CSV"
// @Success 201 {object} template.Template
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Template already has responses"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/templates [post]
func (h *TemplateHandler) UploadTemplate(c *gin.Context) {
	var input template.UploadTemplateInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingMessage(err, map[string]string{
			"JobID":       "job id",
			"Title":       "title",
			"Description": "description",
		})})
		return
	}

	text, err := readUploadedFile(c)
	if err != nil {
		respondError(c, err)
		return
	}

	tpl, err := h.svc.UploadTemplate(c.Request.Context(), input, text)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogAuditFromRequest(c, utils.AuditEntry{
		Action:       audit.ActionUpload,
		ResourceType: audit.ResourceTemplate,
		ResourceID:   tpl.JobID,
		After:        template.Summarize(tpl),
		Description:  fmt.Sprintf("Uploaded template %s v%d", tpl.JobID, tpl.Version),
	}, h.audit, h.log)

	c.JSON(http.StatusCreated, tpl)
}

// ListTemplates godoc
// @Summary List templates
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Success 200 {array} template.TemplateSummary
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.svc.ListTemplates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]template.TemplateSummary, 0, len(templates))
	for _, t := range templates {
		out = append(out, template.Summarize(t))
	}
	c.JSON(http.StatusOK, out)
}

// GetTemplate godoc
// @Summary Get a template with its questions
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} template.Template
// @Failure 404 {object} response.ErrorResponse "Template not found"
// @Router /admin/templates/{job_id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	tpl, err := h.svc.GetTemplate(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// DownloadSource godoc
// @Summary Download the uploaded CSV of a template
// @Tags templates
// @Security BearerAuth
// @Produce text/csv
// @Param job_id path string true "Job ID"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorResponse "Source not available"
// @Router /admin/templates/{job_id}/source [get]
func (h *TemplateHandler) DownloadSource(c *gin.Context) {
	data, filename, err := h.svc.TemplateSource(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
