package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/datadesk/internal/api/middleware"
	"github.com/linskybing/datadesk/internal/application"
	"github.com/linskybing/datadesk/internal/config"
	"github.com/linskybing/datadesk/internal/domain/user"
	"github.com/linskybing/datadesk/pkg/response"
	"github.com/linskybing/datadesk/pkg/utils"
)

type AuthHandler struct {
	svc *application.AuthService
}

func NewAuthHandler(svc *application.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Failure 500 {object} response.ErrorResponse "Failed to generate token"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindingMessage(err, map[string]string{
			"Email":    "email",
			"Password": "password",
		})})
		return
	}

	session, err := h.svc.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetSessionCookie(c, session.Token, config.TokenTTL)
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:   session.Token,
		Email:   session.Email,
		Role:    string(session.Role),
		IsAdmin: session.Role == user.RoleAdmin,
	})
}

// Logout godoc
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// Status godoc
// @Summary Current session
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.AuthStatusResponse
// @Failure 401 {object} response.ErrorResponse "Not signed in"
// @Router /auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.AuthStatusResponse{
		Authenticated: true,
		Email:         claims.Email,
		Role:          claims.Role,
	})
}
