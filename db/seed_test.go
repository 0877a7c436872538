package db

import (
	"path/filepath"
	"testing"

	"company-cms/config"
	"company-cms/model"
	"company-cms/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DBPath:        filepath.Join(t.TempDir(), "cms.db"),
		AdminUser:     "admin",
		AdminPassword: "admin123",
	}
}

func openSeeded(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()
	conn, err := Open(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, Seed(conn, cfg, zap.NewNop()))
	return conn
}

func TestSeedCreatesData(t *testing.T) {
	cfg := testConfig(t)
	conn := openSeeded(t, cfg)

	var company model.Company
	require.NoError(t, conn.First(&company, model.CompanyID).Error)
	assert.Equal(t, "理昂生态能源股份有限公司", company.Name)
	assert.Equal(t, "2014-12-12", company.FoundedDate)
	assert.Len(t, company.MainBusiness, 3)

	var founders []model.Founder
	require.NoError(t, conn.Order("order_index asc").Find(&founders).Error)
	require.Len(t, founders, 2)
	assert.Equal(t, "郭振军", founders[0].Name)
	assert.Equal(t, "王焕庆", founders[1].Name)

	var user model.User
	require.NoError(t, conn.Where("username = ?", "admin").First(&user).Error)
	assert.True(t, utils.CheckPassword(user.Password, "admin123"))
	assert.NotEqual(t, "admin123", user.Password)
}

func TestSeedIsIdempotent(t *testing.T) {
	cfg := testConfig(t)
	conn := openSeeded(t, cfg)

	// 重复执行不追加数据
	require.NoError(t, Seed(conn, cfg, zap.NewNop()))
	require.NoError(t, Seed(conn, cfg, zap.NewNop()))

	var companies, founders, users int64
	conn.Model(&model.Company{}).Count(&companies)
	conn.Model(&model.Founder{}).Count(&founders)
	conn.Model(&model.User{}).Count(&users)
	assert.EqualValues(t, 1, companies)
	assert.EqualValues(t, 2, founders)
	assert.EqualValues(t, 1, users)
}

func TestSeedReplacesDefaultAdmin(t *testing.T) {
	cfg := testConfig(t)
	conn := openSeeded(t, cfg)

	// 切换管理员用户名后重新初始化: 旧默认账号被删除而不是保留两个
	cfg.AdminUser = "ops@example.com"
	cfg.AdminPassword = "new-password"
	require.NoError(t, Seed(conn, cfg, zap.NewNop()))

	var users int64
	conn.Model(&model.User{}).Count(&users)
	assert.EqualValues(t, 1, users)

	var user model.User
	require.NoError(t, conn.Where("username = ?", "ops@example.com").First(&user).Error)
	assert.True(t, utils.CheckPassword(user.Password, "new-password"))
}

func TestSeedRefreshesAdminPassword(t *testing.T) {
	cfg := testConfig(t)
	conn := openSeeded(t, cfg)

	cfg.AdminPassword = "rotated"
	require.NoError(t, Seed(conn, cfg, zap.NewNop()))

	var user model.User
	require.NoError(t, conn.Where("username = ?", "admin").First(&user).Error)
	assert.True(t, utils.CheckPassword(user.Password, "rotated"))
	assert.False(t, utils.CheckPassword(user.Password, "admin123"))
}
