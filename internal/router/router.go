package router

import (
	"community-frontend/config"
	"community-frontend/internal/api/auth"
	"community-frontend/internal/api/post"
	"community-frontend/internal/api/shell"
	"community-frontend/internal/middleware"
	"community-frontend/internal/service"
	"community-frontend/internal/session"
	"community-frontend/internal/view"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps 是组装路由所需的依赖
type Deps struct {
	Config         config.Config
	Store          session.Store
	AuthService    service.AuthServiceInterface
	PostService    service.PostServiceInterface
	CommentService service.CommentServiceInterface
	Monitor        *middleware.ErrorMonitor
}

// New 创建页面路由
func New(d Deps) *gin.Engine {
	if d.Monitor == nil {
		d.Monitor = middleware.NewErrorMonitor()
	}

	r := gin.New()
	r.SetHTMLTemplate(view.Templates())

	// 添加中间件
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorMonitorMiddleware(d.Monitor))

	// 配置 CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = d.Config.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
	}
	if len(corsConfig.AllowOrigins) > 0 {
		r.Use(cors.New(corsConfig))
	}

	r.Use(middleware.SessionMiddleware(d.Store))

	r.StaticFS("/static", view.StaticFS())

	authHandler := auth.NewAuthHandler(d.AuthService, d.Store, d.Config.MaxUploadBytes)
	postHandler := post.NewPostHandler(d.PostService, d.Config.PageSize, d.Config.MaxUploadBytes)
	commentHandler := post.NewCommentHandler(d.CommentService, postHandler)

	r.GET("/", shell.Root)

	// 认证
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/signup", authHandler.SignupPage)
	r.POST("/signup", authHandler.Signup)
	r.POST("/signup/profile-image", authHandler.UploadProfileImage)
	r.POST("/logout", authHandler.Logout)
	r.GET("/account/delete", authHandler.DeleteAccount)
	r.POST("/account/delete", authHandler.DeleteAccount)

	// 帖子
	posts := r.Group("/posts")
	{
		posts.GET("", postHandler.List)
		posts.GET("/new", postHandler.NewForm)
		posts.POST("/form", postHandler.Submit)
		posts.POST("/form/image", postHandler.UploadImage)
		posts.GET("/:id", postHandler.Detail)
		posts.GET("/:id/sentiment", postHandler.Sentiment)
		posts.GET("/:id/edit", postHandler.EditForm)
		posts.GET("/:id/delete", postHandler.Delete)
		posts.POST("/:id/delete", postHandler.Delete)
		posts.POST("/:id/like", postHandler.Like)

		// 评论
		posts.POST("/:id/comments", commentHandler.Submit)
		posts.GET("/:id/comments/:cid/delete", commentHandler.Delete)
		posts.POST("/:id/comments/:cid/delete", commentHandler.Delete)
	}

	if d.Config.Debug {
		r.GET("/debug/errors", middleware.ErrorCountsHandler(d.Monitor))
	}

	r.NoRoute(shell.NoRoute)
	return r
}
