package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/astro-profile/internal/domain/auth"
	"github.com/yanqian/astro-profile/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, posts *PostHandler, authSvc auth.Service) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1")
	requireAuth := authMiddleware(authSvc)

	users := api.Group("/users")
	{
		users.POST("/register", handler.Register)
		users.POST("/login", handler.Login)
		users.GET("/profile", requireAuth, handler.UserProfile)
	}

	astroGroup := api.Group("/astro")
	{
		astroGroup.POST("/birth-chart", handler.BirthChart)
		astroGroup.GET("/signs", handler.Signs)
		astroGroup.GET("/signs/trending", handler.TrendingSigns)
		astroGroup.POST("/data", requireAuth, handler.SaveAstroData)
		astroGroup.GET("/profile", requireAuth, handler.LatestProfile)
		astroGroup.GET("/history", requireAuth, handler.History)
	}

	postGroup := api.Group("/posts")
	{
		postGroup.GET("", posts.List)
		postGroup.POST("", requireAuth, posts.Create)
		postGroup.PUT("/:id", requireAuth, posts.Update)
		postGroup.DELETE("/:id", requireAuth, posts.Delete)
		postGroup.PUT("/:id/like", requireAuth, posts.ToggleLike)
		postGroup.POST("/:id/comments", requireAuth, posts.Comment)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
