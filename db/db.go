package db

import (
	"fmt"
	"time"

	"company-cms/config"
	"company-cms/model"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open 打开数据库并自动迁移表结构
// 默认使用本地 SQLite 文件; 配置了 DB_HOST 时切换到 PostgreSQL
func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var (
		conn *gorm.DB
		err  error
	)

	if cfg.DBHost != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Shanghai",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)

		// 带重试的数据库连接 (Docker 启动时数据库可能还没准备好)
		maxRetries := 30
		for i := 0; i < maxRetries; i++ {
			conn, err = gorm.Open(postgres.Open(dsn), gormCfg)
			if err == nil {
				break
			}
			log.Warn("等待数据库就绪...",
				zap.Int("attempt", i+1),
				zap.Int("max", maxRetries),
				zap.Error(err))
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			return nil, fmt.Errorf("无法连接 PostgreSQL: %w", err)
		}
	} else {
		conn, err = gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("无法打开数据库文件 %s: %w", cfg.DBPath, err)
		}
	}

	// 自动迁移模式 (自动创建表结构)
	if err := conn.AutoMigrate(&model.Company{}, &model.Founder{}, &model.User{}); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return conn, nil
}
