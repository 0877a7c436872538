package handler

import (
	"errors"
	"net/http"

	"company-cms/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// companyColumns PUT 时整行覆盖的列, 显式列出保证零值字段也会被写入
var companyColumns = []string{
	"name", "slogan", "description", "founded_date",
	"registered_capital", "main_business", "address", "phone", "email",
}

// GetCompany 获取公司简介 (公开接口)
func (h *Handler) GetCompany(c *gin.Context) {
	var company model.Company
	if err := h.DB.First(&company, model.CompanyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Fail(c, http.StatusNotFound, "Not found")
			return
		}
		h.Log.Error("查询公司数据失败", zap.Error(err))
		Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	Data(c, model.NewCompanyView(&company))
}

// UpdateCompany 更新公司简介 (需认证)
// 单条 UPDATE 语句整行覆盖, 不做逐字段校验
func (h *Handler) UpdateCompany(c *gin.Context) {
	var in model.CompanyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	row := in.ToRow()
	err := h.DB.Model(&model.Company{}).
		Where("id = ?", model.CompanyID).
		Select(companyColumns).
		Updates(&row).Error
	if err != nil {
		h.Log.Error("更新公司数据失败", zap.Error(err))
		Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	Data(c, gin.H{"success": true})
}
