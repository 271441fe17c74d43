package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/datadesk/internal/api/handlers"
	"github.com/linskybing/datadesk/internal/api/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/linskybing/datadesk/docs"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.GET("/health", h.Health.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/login", h.Auth.Login)
	r.POST("/logout", h.Auth.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/status", h.Auth.Status)
		auth.GET("/me/jobs", h.Response.MyJobs)

		jobs := auth.Group("/jobs/:job_id")
		{
			jobs.GET("/workspace", h.Response.Workspace)
			jobs.PUT("/response", h.Response.SaveDraft)
			jobs.POST("/response/submit", h.Response.Submit)
		}

		auth.GET("/ws/responses", middleware.Admin(), h.Stream.StreamResponses)

		admin := auth.Group("/admin")
		admin.Use(middleware.Admin())
		{
			admin.POST("/users/import", h.User.ImportUsers)
			admin.GET("/users", h.User.ListUsers)

			admin.POST("/templates", h.Template.UploadTemplate)
			admin.GET("/templates", h.Template.ListTemplates)
			admin.GET("/templates/:job_id", h.Template.GetTemplate)
			admin.GET("/templates/:job_id/source", h.Template.DownloadSource)

			admin.GET("/responses", h.Response.ListResponses)
			admin.GET("/responses/export", h.Response.ExportResponses)
			admin.GET("/responses/:id", h.Response.GetResponse)

			admin.GET("/audit/logs", h.Audit.GetAuditLogs)
		}
	}
}
