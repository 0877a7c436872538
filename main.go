package main

import (
	"fmt"
	"os"

	"company-cms/config"
	"company-cms/db"
	"company-cms/router"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	fmt.Println("=== 公司官网 CMS 后端 ===")

	// 1. 加载配置 (环境变量, 可选 .env)
	cfg := config.Load()

	// 2. 初始化日志
	log := newLogger(cfg.LogLevel)
	defer log.Sync()

	// 3. 打开数据库并迁移表结构
	conn, err := db.Open(cfg, log)
	if err != nil {
		log.Fatal("数据库初始化失败", zap.Error(err))
	}

	// 4. 写入种子数据 (幂等, 失败直接退出)
	if err := db.Seed(conn, cfg, log); err != nil {
		log.Fatal("种子数据初始化失败", zap.Error(err))
	}

	// 5. 上传目录不存在时创建
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("创建上传目录失败", zap.String("dir", cfg.UploadDir), zap.Error(err))
	}

	// 6. 组装路由并启动服务器
	gin.SetMode(gin.ReleaseMode)
	r := router.New(conn, cfg, log)

	log.Info("服务器启动", zap.String("addr", cfg.Addr))
	fmt.Printf("访问地址: http://localhost%s\n", cfg.Addr)
	fmt.Println("后台管理: /admin/")
	fmt.Println("API:")
	fmt.Println("  - POST   /api/auth/login    - 管理员登录")
	fmt.Println("  - GET    /api/company       - 公司简介")
	fmt.Println("  - PUT    /api/company       - 更新公司简介 (需认证)")
	fmt.Println("  - GET    /api/founders      - 创始人列表")
	fmt.Println("  - POST   /api/founders      - 新建创始人 (需认证)")
	fmt.Println("  - PUT    /api/founders/:id  - 更新创始人 (需认证)")
	fmt.Println("  - DELETE /api/founders/:id  - 删除创始人 (需认证)")
	fmt.Println("  - POST   /api/upload        - 文件上传 (需认证)")

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("服务器启动失败", zap.Error(err))
	}
}

// newLogger 按配置级别构建 zap 日志
func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	log, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}
