package handler

import "github.com/gin-gonic/gin"

// 响应包装 (Strapi 风格):
// 成功为 {"data": ...}, 失败为 {"error": {"message": ...}}

// Data 按统一信封返回成功负载
func Data(c *gin.Context, payload interface{}) {
	c.JSON(200, gin.H{"data": payload})
}

// Fail 按统一信封返回错误
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": gin.H{"message": message}})
}
