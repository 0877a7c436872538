package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Separator 前端展示业务条目时使用的全角分隔符
const Separator = "、"

// StringList 以 JSON 文本形式存库的字符串数组
// SQLite 和 PostgreSQL 的 TEXT 列都能存, 不依赖数据库的数组类型
type StringList []string

// Value 实现 driver.Valuer, 序列化为 JSON 字符串
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner
// 兼容两种存量数据: JSON 数组文本, 或直接用 "、" 连接的字符串
func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return l.scanText(string(v))
	case string:
		return l.scanText(v)
	default:
		return fmt.Errorf("StringList: 不支持的列类型 %T", src)
	}
}

func (l *StringList) scanText(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*l = nil
		return nil
	}
	if strings.HasPrefix(s, "[") {
		return json.Unmarshal([]byte(s), (*[]string)(l))
	}
	*l = strings.Split(s, Separator)
	return nil
}

// Join 拼接为前端展示用的单个字符串
func (l StringList) Join() string {
	return strings.Join(l, Separator)
}

// Company 公司简介 (单例, id 固定为 1)
type Company struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	Name              string     `json:"name"`
	Slogan            string     `json:"slogan"`
	Description       string     `json:"description"` // 富文本 HTML
	FoundedDate       string     `json:"founded_date"`
	RegisteredCapital string     `json:"registered_capital"`
	MainBusiness      StringList `json:"main_business" gorm:"type:text"`
	Address           string     `json:"address"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email"`
}

// TableName 沿用原有数据文件的表名
func (Company) TableName() string {
	return "company"
}

// CompanyID 单例行的固定主键
const CompanyID uint = 1
