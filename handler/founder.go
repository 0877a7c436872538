package handler

import (
	"net/http"
	"strconv"

	"company-cms/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// founderColumns PUT 时整行覆盖的列 (含零值)
var founderColumns = []string{
	"name", "position", "bio", "education",
	"shareholding", "avatar_url", "order_index",
}

// ListFounders 获取创始人列表 (公开接口)
// 按 order_index 升序, 相同时按插入顺序
func (h *Handler) ListFounders(c *gin.Context) {
	var founders []model.Founder
	if err := h.DB.Order("order_index asc, id asc").Find(&founders).Error; err != nil {
		h.Log.Error("查询创始人列表失败", zap.Error(err))
		Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	views := make([]model.FounderView, len(founders))
	for i := range founders {
		views[i] = model.NewFounderView(&founders[i])
	}
	Data(c, views)
}

// CreateFounder 新建创始人 (需认证)
func (h *Handler) CreateFounder(c *gin.Context) {
	var in model.FounderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	row := in.ToRow()
	if err := h.DB.Create(&row).Error; err != nil {
		h.Log.Error("新建创始人失败", zap.Error(err))
		Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	Data(c, gin.H{"id": row.ID})
}

// UpdateFounder 按 id 整行更新 (需认证)
// id 不存在时影响 0 行, 静默返回成功
func (h *Handler) UpdateFounder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		Fail(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var in model.FounderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	row := in.ToRow()
	err = h.DB.Model(&model.Founder{}).
		Where("id = ?", id).
		Select(founderColumns).
		Updates(&row).Error
	if err != nil {
		h.Log.Error("更新创始人失败", zap.Uint64("id", id), zap.Error(err))
		Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	Data(c, gin.H{"success": true})
}

// DeleteFounder 按 id 删除 (需认证), 对不存在的 id 幂等
func (h *Handler) DeleteFounder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		Fail(c, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.DB.Delete(&model.Founder{}, id).Error; err != nil {
		h.Log.Error("删除创始人失败", zap.Uint64("id", id), zap.Error(err))
		Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	Data(c, gin.H{"success": true})
}
