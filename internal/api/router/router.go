package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/repo-edu/repo-edu-sub004/config"
	"github.com/repo-edu/repo-edu-sub004/internal/api/handler"
	"github.com/repo-edu/repo-edu-sub004/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 档案模块
		profiles := v1.Group("/profiles")
		{
			profiles.POST("", h.Profile.CreateProfile)
			profiles.GET("", h.Profile.ListProfiles)
			profiles.GET("/active", h.Profile.GetActiveProfile)
			profiles.PUT("/:id/activate", h.Profile.ActivateProfile)
			profiles.GET("/:id/document", h.Profile.GetDocument)
			profiles.PATCH("/:id/document", h.Profile.UpdateDocument)
			// 校验引擎发布入口
			profiles.PUT("/:id/validation", h.Issue.PublishValidation)
		}

		// 脏状态模块
		dirty := v1.Group("/dirty")
		{
			dirty.GET("", h.Profile.GetDirtyStatus)
			dirty.POST("/mark-clean", h.Profile.MarkClean)
			dirty.POST("/force", h.Profile.ForceDirty)
		}

		// 问题聚合模块
		v1.GET("/issues", h.Issue.ListIssueCards)
		v1.GET("/insights", h.Issue.GetRosterInsights)
		v1.GET("/assignments/:id/coverage", h.Issue.GetAssignmentCoverage)

		// 名册导入导出模块
		roster := v1.Group("/roster")
		{
			roster.POST("/import", h.Roster.ImportRoster)
			roster.GET("/export", h.Roster.ExportRoster)
		}
	}

	return r
}
