package handler

import (
	"fmt"
	"math/rand"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadedFile 上传接口的单个返回项
type UploadedFile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Upload 接收单个文件 (multipart 表单字段 files), 落盘后返回相对 URL
// 注意: 这个接口返回裸数组, 不套 data 信封 (后台管理页面按这个形态消费)
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("files")
	if err != nil {
		Fail(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	// 文件名: 毫秒时间戳-随机数.扩展名, 碰撞概率可忽略
	now := time.Now().UnixMilli()
	name := fmt.Sprintf("%d-%d%s", now, rand.Intn(1_000_000_000), filepath.Ext(file.Filename))
	dst := filepath.Join(h.Cfg.UploadDir, name)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		h.Log.Error("保存上传文件失败", zap.String("dst", dst), zap.Error(err))
		Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, []UploadedFile{{
		ID:   now,
		Name: file.Filename,
		URL:  "/uploads/" + name,
	}})
}
