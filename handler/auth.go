package handler

import (
	"errors"
	"net/http"
	"time"

	"company-cms/config"
	"company-cms/model"
	"company-cms/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler 聚合所有接口依赖: 数据库、配置 (含签名密钥)、日志
// 不使用包级全局变量, 方便测试时注入独立实例
type Handler struct {
	DB  *gorm.DB
	Cfg *config.Config
	Log *zap.Logger
}

// New 创建 Handler
func New(conn *gorm.DB, cfg *config.Config, log *zap.Logger) *Handler {
	return &Handler{DB: conn, Cfg: cfg, Log: log}
}

// Claims JWT 载荷
type Claims struct {
	UserID   uint   `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应 (注意: 这个接口不套 data 信封)
type LoginResponse struct {
	JWT  string    `json:"jwt"`
	User LoginUser `json:"user"`
}

// LoginUser 登录响应里携带的用户信息
type LoginUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// Login 处理用户登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "User not found")
		return
	}

	// 查找用户
	var user model.User
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Fail(c, http.StatusBadRequest, "User not found")
			return
		}
		h.Log.Error("查询用户失败", zap.Error(err))
		Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	// 验证密码
	if !utils.CheckPassword(user.Password, req.Password) {
		Fail(c, http.StatusBadRequest, "Invalid password")
		return
	}

	// 生成 JWT Token, TokenTTL 为 0 时不设置过期时间
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Issuer:   "company-cms",
		},
	}
	if h.Cfg.TokenTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(h.Cfg.TokenTTL))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(h.Cfg.JWTSecret))
	if err != nil {
		h.Log.Error("生成 Token 失败", zap.Error(err))
		Fail(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		JWT:  tokenString,
		User: LoginUser{ID: user.ID, Username: user.Username},
	})
}

// AuthRequired JWT 认证中间件, 挂在所有写接口之前
// 未携带 Token 返回 401, 签名无效或已过期返回 403
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			Fail(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		// 移除 "Bearer " 前缀
		if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
			tokenString = tokenString[7:]
		}

		// 解析 Token
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(h.Cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			Fail(c, http.StatusForbidden, "Forbidden")
			c.Abort()
			return
		}

		// 将用户信息存入上下文
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}
