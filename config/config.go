package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config 应用全部配置
// 所有可变项 (签名密钥、数据库、目录) 都在这里集中注入，
// 避免散落在各处的包级全局变量，方便测试时按需替换
type Config struct {
	// HTTP 服务
	Addr string

	// JWT 签名配置
	// TokenTTL 为 0 时签发不过期的 Token (兼容旧客户端)
	JWTSecret string
	TokenTTL  time.Duration

	// SQLite 数据库文件路径 (默认存储后端)
	DBPath string

	// PostgreSQL 配置, 设置 DB_HOST 后启用, 替代 SQLite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// 上传文件目录与后台管理页面目录
	UploadDir string
	AdminDir  string

	// 初始化时保证存在的管理员账号
	AdminUser     string
	AdminPassword string

	// 日志级别: debug / info / warn / error
	LogLevel string
}

// Load 从环境变量读取配置 (为了 Docker 部署方便)
// 如果工作目录下有 .env 文件会先加载它
func Load() *Config {
	// .env 不存在时忽略错误, 环境变量照常生效
	_ = godotenv.Load()

	return &Config{
		Addr:      getEnv("HTTP_ADDR", ":1337"),
		JWTSecret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		TokenTTL:  parseDuration(getEnv("JWT_TTL", "24h"), 24*time.Hour),

		DBPath:     getEnv("DB_PATH", "cms.db"),
		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "cmsuser"),
		DBPassword: getEnv("DB_PASSWORD", "cmspassword"),
		DBName:     getEnv("DB_NAME", "cms"),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		AdminDir:  getEnv("ADMIN_DIR", "public/admin"),

		AdminUser:     getEnv("ADMIN_USER", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseDuration(s string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return defaultVal
	}
	return d
}
