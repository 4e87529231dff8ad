package router

import (
	"net/http"
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/article_service/config"
	"github.com/Xushengqwer/article_service/constant"
	"github.com/Xushengqwer/article_service/controller"
	"github.com/Xushengqwer/article_service/dependencies"
	"github.com/Xushengqwer/article_service/middleware"
)

// Controllers 汇总需要注册路由的控制器
type Controllers struct {
	Post     *controller.PostController
	HotPost  *controller.HotPostController
	Reaction *controller.ReactionController
	Media    *controller.MediaController
	Taxonomy *controller.TaxonomyController
}

// SetupRouter 仅负责配置 Gin 引擎、中间件和路由注册。
// storage 为本地存储时，额外把存储目录以静态文件形式挂在其公开前缀下。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.ArticleConfig,
	ctrls Controllers,
	storage dependencies.ObjectStorage,
) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	if !cfg.ServerConfig.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// 1. OTel 最先，后续中间件才能拿到 trace 上下文
	router.Use(otelgin.Middleware(constant.ServiceName))
	// 2. Panic Recovery
	router.Use(middleware.ErrorHandlingMiddleware(logger))
	// 3. 访问日志，trace_id 取自 otelgin 写入的 span
	router.Use(commonMiddleware.RequestLoggerMiddleware(logger.Logger()))
	// 4. 超时控制，配置单位为秒
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(middleware.RequestTimeoutMiddleware(logger, requestTimeout))
	logger.Debug("已注册全局中间件")

	v1 := router.Group("/api/v1/article")
	ctrls.Post.RegisterRoutes(v1)
	ctrls.HotPost.RegisterRoutes(v1)
	ctrls.Reaction.RegisterRoutes(v1)
	ctrls.Media.RegisterRoutes(v1)
	ctrls.Taxonomy.RegisterRoutes(v1)
	logger.Info("所有控制器路由已注册到 /api/v1/article 分组")

	if local, ok := storage.(*dependencies.LocalStorage); ok {
		router.Static(local.PublicPrefix(), local.Root())
		logger.Info("本地媒体目录已挂载",
			zap.String("prefix", local.PublicPrefix()),
			zap.String("root", local.Root()),
		)
	}

	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	logger.Info("Gin 路由器设置完成")
	return router
}
