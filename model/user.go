package model

// User 用户结构体 (用于登录认证)
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"` // 用户名唯一且不为空
	Password string `json:"-" gorm:"not null"`                    // bcrypt 加密后的密码, 不对外输出
}
