package router

import (
	"net/http"
	"time"

	"company-cms/config"
	"company-cms/handler"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New 组装 gin 引擎: 中间件链 + 全部路由
func New(conn *gorm.DB, cfg *config.Config, log *zap.Logger) *gin.Engine {
	h := handler.New(conn, cfg, log)

	r := gin.New()
	r.Use(recovery(log))
	r.Use(requestLog(log))
	r.Use(cors())

	setupRoutes(r, h, cfg)
	return r
}

// setupRoutes 配置路由
func setupRoutes(r *gin.Engine, h *handler.Handler, cfg *config.Config) {
	// 静态文件: 上传目录与后台管理页面
	r.Static("/uploads", cfg.UploadDir)
	r.Static("/admin", cfg.AdminDir)

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "ok",
		})
	})

	// 根路径重定向到后台管理页面
	r.GET("/", func(c *gin.Context) {
		c.Redirect(302, "/admin/")
	})

	// API 路由组
	api := r.Group("/api")
	{
		// 公开接口 (无需认证)
		api.POST("/auth/login", h.Login)
		api.GET("/company", h.GetCompany)
		api.GET("/founders", h.ListFounders)

		// 写接口统一挂认证中间件
		authorized := api.Group("/")
		authorized.Use(h.AuthRequired())
		{
			authorized.PUT("/company", h.UpdateCompany)
			authorized.POST("/founders", h.CreateFounder)
			authorized.PUT("/founders/:id", h.UpdateFounder)
			authorized.DELETE("/founders/:id", h.DeleteFounder)
			authorized.POST("/upload", h.Upload)
		}
	}
}

// cors CORS 跨域中间件
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// requestLog 为每个请求生成 request id 并输出访问日志
func requestLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// recovery 把 panic 统一转成 500 错误信封, 避免裸 500 响应
func recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err interface{}) {
		log.Error("panic recovered", zap.Any("error", err))
		handler.Fail(c, http.StatusInternalServerError, "Internal server error")
		c.Abort()
	})
}
