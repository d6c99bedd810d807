package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"community-frontend/config"
	"community-frontend/internal/middleware"
	"community-frontend/internal/repository/rest"
	"community-frontend/internal/router"
	"community-frontend/internal/service"
	"community-frontend/internal/session"
	"community-frontend/internal/telemetry"
	"community-frontend/internal/util"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			util.Logger.Error("程序发生严重错误", zap.Any("error", r))
		}
	}()

	// 初始化配置
	config.Init()
	cfg := config.AppConfig

	// 初始化日志
	util.InitLogger(cfg.LogLevel, cfg.LogFile)
	defer util.Logger.Sync()

	util.Logger.Info("应用程序启动",
		zap.String("api_base_url", cfg.APIBaseURL),
		zap.String("model_api_url", cfg.ModelAPIURL),
		zap.String("sentiment_engine", cfg.SentimentEngine))

	// 初始化追踪
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg.OtelEndpoint, cfg.Debug)
	if err != nil {
		util.Logger.Fatal("初始化追踪失败", zap.Error(err))
	}

	// 注册自定义验证器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		util.RegisterValidations(v)
	}

	// 会话存储：配置了密钥时使用签名令牌
	opts := session.Options{MaxAge: cfg.SessionMaxAge, Secure: cfg.CookieSecure}
	var store session.Store
	if cfg.SessionSecret != "" {
		store = session.NewTokenStore(cfg.SessionSecret, opts)
		util.Logger.Info("使用签名令牌保存会话")
	} else {
		store = session.NewCookieStore(opts)
	}

	// 初始化后端客户端、存储库和服务
	apiClient := rest.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	modelClient := rest.NewClient(cfg.ModelAPIURL, cfg.APITimeout).WithoutSession()

	authRepo := rest.NewAuthRepository(apiClient)
	postRepo := rest.NewPostRepository(apiClient)
	commentRepo := rest.NewCommentRepository(apiClient)
	sentimentRepo := rest.NewSentimentRepository(modelClient, cfg.SentimentEngine)

	authService := service.NewAuthService(authRepo)
	postService := service.NewPostService(postRepo, commentRepo, sentimentRepo, cfg.PageSize)
	commentService := service.NewCommentService(commentRepo)

	// 初始化错误监控
	errorMonitor := middleware.NewErrorMonitor()

	r := router.New(router.Deps{
		Config:         cfg,
		Store:          store,
		AuthService:    authService,
		PostService:    postService,
		CommentService: commentService,
		Monitor:        errorMonitor,
	})

	if cfg.Debug {
		for _, route := range r.Routes() {
			util.Logger.Debug("路由",
				zap.String("method", route.Method),
				zap.String("path", route.Path),
				zap.String("handler", route.Handler))
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(r, telemetry.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 在一个新的 goroutine 中启动服务器
	go func() {
		util.Logger.Info("服务器正在启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			util.Logger.Fatal("启动服务器失败", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅地关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	util.Logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		util.Logger.Error("服务器强制关闭", zap.Error(err))
	}
	if err := shutdownTracer(ctx); err != nil {
		util.Logger.Error("关闭追踪失败", zap.Error(err))
	}

	util.Logger.Info("服务器已优雅关闭")
}
