package db

import (
	"errors"
	"fmt"

	"company-cms/config"
	"company-cms/model"
	"company-cms/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seed 初始化种子数据, 重复启动是幂等的:
// 公司单例行和创始人列表只在不存在时插入,
// 管理员账号保证恰好是配置指定的那一个 (旧的默认账号会被替换)
func Seed(conn *gorm.DB, cfg *config.Config, log *zap.Logger) error {
	if err := seedCompany(conn, log); err != nil {
		return fmt.Errorf("初始化公司数据失败: %w", err)
	}
	if err := seedFounders(conn, log); err != nil {
		return fmt.Errorf("初始化创始人数据失败: %w", err)
	}
	if err := seedAdmin(conn, cfg, log); err != nil {
		return fmt.Errorf("初始化管理员账号失败: %w", err)
	}
	return nil
}

func seedCompany(conn *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := conn.Model(&model.Company{}).Where("id = ?", model.CompanyID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	company := model.Company{
		ID:     model.CompanyID,
		Name:   "理昂生态能源股份有限公司",
		Slogan: "国内农林生物质发电行业骨干企业",
		Description: `<p>理昂生态能源股份有限公司（曾用名：理昂新能源股份有限公司），成立于2014年12月12日，前身可追溯至2008年。注册资本1.82亿元人民币。</p>` +
			`<p>公司主要从事农林废弃物发电、生物质能发电、热力生产供应，是国内农林生物质发电行业骨干企业。</p>`,
		FoundedDate:       "2014-12-12",
		RegisteredCapital: "1.82亿元",
		MainBusiness:      model.StringList{"农林废弃物发电", "生物质能发电", "热力生产供应"},
	}
	if err := conn.Create(&company).Error; err != nil {
		return err
	}
	log.Info("公司数据已写入")
	return nil
}

func seedFounders(conn *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := conn.Model(&model.Founder{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	founders := []model.Founder{
		{
			Name:     "郭振军",
			Position: "董事长兼总经理",
			Bio: "湖南津市人，武汉大学本科，中山大学企业管理硕士、博士。曾任职广日集团多年，" +
				"2008年联合创立理昂生态前身企业，投身生物质能源领域。理昂生态董事长兼总经理、法定代表人，直接持股约23.57%。",
			Education:    "武汉大学本科，中山大学博士",
			Shareholding: "约23.57%",
			OrderIndex:   1,
		},
		{
			Name:     "王焕庆",
			Position: "董事",
			Bio: "理昂生态能源股份有限公司董事，同时是湖南理昂环保能源投资有限公司法定代表人、执行董事。" +
				"深度参与生物质发电、环保能源投资等业务，长期与郭振军等合作。",
			OrderIndex: 2,
		},
	}
	if err := conn.Create(&founders).Error; err != nil {
		return err
	}
	log.Info("创始人数据已写入", zap.Int("count", len(founders)))
	return nil
}

// seedAdmin 保证存在且仅维护一个管理员账号:
// 目标用户名已存在则刷新密码哈希, 否则删除遗留的默认 admin 账号后新建
func seedAdmin(conn *gorm.DB, cfg *config.Config, log *zap.Logger) error {
	hashed, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	var user model.User
	err = conn.Where("username = ?", cfg.AdminUser).First(&user).Error
	switch {
	case err == nil:
		if err := conn.Model(&user).Update("password", hashed).Error; err != nil {
			return err
		}
		log.Info("管理员密码已刷新", zap.String("username", cfg.AdminUser))
	case errors.Is(err, gorm.ErrRecordNotFound):
		if cfg.AdminUser != "admin" {
			// 替换而不是追加: 清掉历史默认账号
			if err := conn.Where("username = ?", "admin").Delete(&model.User{}).Error; err != nil {
				return err
			}
		}
		if err := conn.Create(&model.User{Username: cfg.AdminUser, Password: hashed}).Error; err != nil {
			return err
		}
		log.Info("管理员账号已创建", zap.String("username", cfg.AdminUser))
	default:
		return err
	}
	return nil
}
