// Package router 组装gin引擎：全局中间件、运维接口与 /api/v1 业务路由
package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/bookstore-api/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-api/internal/interface/http/middleware"
)

// Options 路由选项
type Options struct {
	Mode           string // debug | release | test
	MetricsEnabled bool
	MetricsPath    string
	SwaggerEnabled bool
}

// Handlers 所有HTTP处理器
type Handlers struct {
	User     *handler.UserHandler
	Book     *handler.BookHandler
	Relation *handler.RelationHandler
}

// New 创建并配置gin引擎
func New(opts Options, h Handlers, auth *middleware.AuthMiddleware, logger *slog.Logger) *gin.Engine {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}

	r := gin.New()
	// 带/不带结尾斜杠的路径都直接注册，不做重定向
	r.RedirectTrailingSlash = false
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(),
	)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	if opts.MetricsEnabled {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(promhttp.Handler()))
	}
	if opts.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")

	// 用户模块
	users := v1.Group("/users")
	handle(users, http.MethodPost, "/register", h.User.Register)
	handle(users, http.MethodPost, "/login", h.User.Login)
	handle(users, http.MethodPost, "/refresh", h.User.Refresh)
	handle(users, http.MethodPost, "/logout", auth.RequireAuth(), h.User.Logout)

	// 图书模块
	// 写操作使用OptionalAuth：图书不存在时先返回404，再由用例判断401/403
	books := v1.Group("/book", auth.OptionalAuth())
	handle(books, http.MethodGet, "", h.Book.ListBooks)
	handle(books, http.MethodPost, "", h.Book.CreateBook)
	handle(books, http.MethodGet, "/:id", h.Book.GetBook)
	handle(books, http.MethodPut, "/:id", h.Book.UpdateBook)
	handle(books, http.MethodPatch, "/:id", h.Book.PartialUpdateBook)
	handle(books, http.MethodDelete, "/:id", h.Book.DeleteBook)

	// 用户-图书关系
	relations := v1.Group("/book_relation", auth.OptionalAuth())
	handle(relations, http.MethodPut, "/:book", h.Relation.UpdateRelation)
	handle(relations, http.MethodPatch, "/:book", h.Relation.UpdateRelation)

	return r
}

// handle 同时注册 path 与 path+"/"
func handle(g *gin.RouterGroup, method, path string, handlers ...gin.HandlerFunc) {
	g.Handle(method, path, handlers...)
	g.Handle(method, path+"/", handlers...)
}
