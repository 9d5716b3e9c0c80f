package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"toolindex-backend/internal/shared/authz"
	"toolindex-backend/internal/shared/middleware"
	"toolindex-backend/pkg/container"
)

// SetupRouter wires every route group. Staff routes re-check the role
// against the profile store on each request.
func SetupRouter(c *container.Container) *gin.Engine {
	if c.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RecoveryMiddleware(),
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(),
		middleware.CORSMiddleware(nil),
	)

	// Health & crawlers, outside the API prefix.
	router.GET("/healthz", healthHandler(c))
	router.GET("/sitemap.xml", c.SEOHandler.Sitemap)
	router.GET("/robots.txt", c.SEOHandler.Robots)

	v1 := router.Group("/api/v1")

	// Public routes. Optional auth so handlers can see the caller
	// when a token is present.
	public := v1.Group("")
	public.Use(middleware.OptionalAuthMiddleware(c.JWTManager))
	{
		public.GET("/tools", c.ToolHandler.List)
		public.GET("/tools/:slug", c.ToolHandler.GetBySlug)
		public.GET("/categories", c.CategoryHandler.List)
		public.GET("/reviews", c.ReviewHandler.ListByTool)
		public.GET("/blog/posts", c.BlogHandler.ListPosts)
		public.GET("/blog/posts/:slug", c.BlogHandler.GetPost)
		public.POST("/contact", c.ContactHandler.Submit)
		public.GET("/public/settings", c.SettingsHandler.GetPublic)
	}

	// Authenticated user routes.
	user := v1.Group("")
	user.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		user.POST("/tools", c.ToolHandler.Submit)
		user.POST("/reviews", c.ReviewHandler.Create)
		user.POST("/blog/posts/:id/comments", c.BlogHandler.CreateComment)
		user.POST("/blog/comments/:id/like", c.BlogHandler.LikeComment)
		user.POST("/uploads/testimonial", c.UploadHandler.UploadTestimonial)
		user.GET("/user/submissions", c.ToolHandler.ListSubmissions)
		user.GET("/user/notification-preferences", c.PrefsHandler.Get)
		user.PUT("/user/notification-preferences", c.PrefsHandler.Update)
	}

	// Staff routes: admins and moderators.
	staff := v1.Group("/admin")
	staff.Use(
		middleware.AuthMiddleware(c.JWTManager),
		middleware.RequireRole(c.Guard, authz.RoleAdmin, authz.RoleModerator),
	)
	{
		staff.GET("/tools/pending", c.ToolHandler.ListPending)
		staff.POST("/tools/:id/approve", c.ToolHandler.Approve)
		staff.POST("/tools/:id/reject", c.ToolHandler.Reject)
		staff.POST("/tools/:id/archive", c.ToolHandler.Archive)
		staff.POST("/tools/:id/feature", c.ToolHandler.ToggleFeatured)
		staff.GET("/reviews", c.ReviewHandler.ListForAdmin)
		staff.POST("/reviews/:id/approve", c.ReviewHandler.Approve)
		staff.POST("/reviews/:id/reject", c.ReviewHandler.Reject)
		staff.GET("/stats", c.StatsHandler.Dashboard)
		staff.POST("/uploads/blog-cover", c.UploadHandler.UploadBlogCover)
	}

	// Admin-only routes.
	admin := v1.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(c.JWTManager),
		middleware.RequireRole(c.Guard, authz.RoleAdmin),
	)
	{
		admin.POST("/uploads/content", c.UploadHandler.UploadContent)
	}

	return router
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		health := gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			health["status"] = "degraded"
			health["database"] = "down"
		} else {
			health["database"] = "up"
		}

		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			health["redis"] = "down"
		} else {
			health["redis"] = "up"
		}

		ctx.JSON(status, health)
	}
}
