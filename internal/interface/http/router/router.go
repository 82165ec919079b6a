// Package router 注册所有HTTP路由
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/library/docs" // swagger文档注册
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// Handlers 所有HTTP处理器
type Handlers struct {
	Auth      *handler.AuthHandler
	Author    *handler.AuthorHandler
	Publisher *handler.PublisherHandler
	Book      *handler.BookHandler
	Insight   *handler.InsightHandler
}

// New 创建并配置Gin引擎
// 中间件顺序：RequestID → Logger → Recovery → CORS → Metrics
// 读接口公开，写接口和/insights需要登录
func New(cfg *config.Config, h *Handlers, auth *middleware.AuthMiddleware) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORS))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	if cfg.Swagger.Enabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := auth.RequireAuth()
	v1 := r.Group("/api/v1")

	accounts := v1.Group("/auth")
	{
		accounts.POST("/register", h.Auth.Register)
		accounts.POST("/login", h.Auth.Login)
		accounts.POST("/refresh", auth.RequireRefresh(), h.Auth.Refresh)
		accounts.POST("/change-password", requireAuth, h.Auth.ChangePassword)
		accounts.POST("/logout", requireAuth, h.Auth.Logout)
		accounts.GET("/me", requireAuth, h.Auth.Me)
	}

	authors := v1.Group("/authors")
	{
		authors.GET("", h.Author.List)
		authors.GET("/search", h.Author.List)
		authors.GET("/:id", h.Author.Get)
		authors.GET("/:id/books", h.Author.Books)
		authors.POST("", requireAuth, h.Author.Create)
		authors.PUT("/:id", requireAuth, h.Author.Update)
		authors.DELETE("/:id", requireAuth, h.Author.Delete)
	}

	publishers := v1.Group("/publishers")
	{
		publishers.GET("", h.Publisher.List)
		publishers.GET("/search", h.Publisher.List)
		publishers.GET("/:id", h.Publisher.Get)
		publishers.GET("/:id/books", h.Publisher.Books)
		publishers.POST("", requireAuth, h.Publisher.Create)
		publishers.PUT("/:id", requireAuth, h.Publisher.Update)
		publishers.DELETE("/:id", requireAuth, h.Publisher.Delete)
	}

	books := v1.Group("/books")
	{
		books.GET("", h.Book.List)
		books.GET("/search", h.Book.List)
		books.GET("/:id", h.Book.Get)
		books.GET("/:id/insights", h.Book.Insights)
		books.POST("", requireAuth, h.Book.Create)
		books.PUT("/:id", requireAuth, h.Book.Update)
		books.DELETE("/:id", requireAuth, h.Book.Delete)
	}

	insights := v1.Group("/insights")
	insights.Use(requireAuth)
	{
		insights.GET("", h.Insight.List)
		insights.GET("/:id", h.Insight.Get)
		insights.POST("", h.Insight.Create)
		insights.PUT("/:id", h.Insight.Update)
		insights.DELETE("/:id", h.Insight.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperrors.ErrRouteNotFound)
	})

	return r
}
