package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/datadesk/internal/application"
	"github.com/linskybing/datadesk/internal/domain/audit"
	"github.com/linskybing/datadesk/internal/domain/user"
	"github.com/linskybing/datadesk/internal/repository"
	"github.com/linskybing/datadesk/pkg/logger"
	"github.com/linskybing/datadesk/pkg/utils"
)

type UserHandler struct {
	svc   *application.UserService
	audit repository.AuditRepo
	log   *logger.Logger
}

func NewUserHandler(svc *application.UserService, audit repository.AuditRepo, log *logger.Logger) *UserHandler {
	return &UserHandler{svc: svc, audit: audit, log: log}
}

// ImportUsers godoc
// @Summary Bulk create or update users from CSV
// @Description CSV headers: user_email,password,assigned_jobs,role. Existing users keep their password.
// @Tags users
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Users CSV"
// @Success 200 {object} user.ImportResult
// @Failure 400 {object} response.ErrorResponse "Invalid file"
// @Failure 403 {object} response.ErrorResponse "Admin only"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/users/import [post]
func (h *UserHandler) ImportUsers(c *gin.Context) {
	text, err := readUploadedFile(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.svc.ImportUsers(c.Request.Context(), text)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.LogAuditFromRequest(c, utils.AuditEntry{
		Action:       audit.ActionImport,
		ResourceType: audit.ResourceUsers,
		After:        result,
		Description:  fmt.Sprintf("Created/Updated: %d, Errors: %d", result.Created, result.Errors),
	}, h.audit, h.log)

	c.JSON(http.StatusOK, result)
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} user.UserDTO
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]user.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, user.ToDTO(u))
	}
	c.JSON(http.StatusOK, out)
}
