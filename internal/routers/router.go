// Package routers 组装 HTTP 路由与中间件链
package routers

import (
	"time"

	"github.com/haierkeys/smart-note-api/internal/app"
	"github.com/haierkeys/smart-note-api/internal/middleware"
	"github.com/haierkeys/smart-note-api/internal/routers/api_router"
	"github.com/haierkeys/smart-note-api/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/auth",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

// NewRouter 创建路由引擎
// 主体解析模式由配置决定：verify 校验 JWT，static 固定注入测试身份
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version().Version))
		api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header))
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		noteHandler := api_router.NewNoteHandler(appContainer)
		authHandler := api_router.NewAuthHandler(appContainer)
		versionHandler := api_router.NewVersionHandler(appContainer)

		// 公开接口
		api.GET("/version", versionHandler.ServerVersion)
		api.POST("/auth/token", authHandler.TokenMint)

		// 认证接口
		auth := api.Group("")
		auth.Use(userAuth(cfg))
		{
			auth.POST("/notes", noteHandler.Create)
			auth.GET("/notes", noteHandler.List)
			auth.GET("/notes/:id", noteHandler.Get)
			auth.PUT("/notes/:id", noteHandler.Update)
			auth.DELETE("/notes/:id", noteHandler.Delete)
			auth.GET("/stats", noteHandler.Stats)
		}
	}

	r.NoRoute(middleware.NoFound())

	return r
}

// userAuth 根据配置选择主体解析中间件
func userAuth(cfg *app.AppConfig) gin.HandlerFunc {
	if cfg.Security.AuthMode == "static" {
		return middleware.UserAuthStatic(cfg.Security.StaticIdentity)
	}
	return middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey, cfg.Security.TokenIssuer)
}
