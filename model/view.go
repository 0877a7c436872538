package model

import (
	"encoding/json"
	"strings"
)

// 存储行与对外 JSON 视图之间的显式映射层:
// 数据库列是 snake_case, 对外接口是 camelCase, 两边各自独立演进,
// 所有换形都集中在这一个文件的纯函数里

// CompanyView GET /api/company 的响应形态
type CompanyView struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Slogan            string `json:"slogan"`
	Description       string `json:"description"`
	FoundedDate       string `json:"foundedDate"`
	RegisteredCapital string `json:"registeredCapital"`
	MainBusiness      string `json:"mainBusiness"` // 业务条目用 "、" 连接后的单个字符串
	Address           string `json:"address"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
}

// NewCompanyView 存储行 -> 视图
func NewCompanyView(c *Company) CompanyView {
	return CompanyView{
		ID:                c.ID,
		Name:              c.Name,
		Slogan:            c.Slogan,
		Description:       c.Description,
		FoundedDate:       c.FoundedDate,
		RegisteredCapital: c.RegisteredCapital,
		MainBusiness:      c.MainBusiness.Join(),
		Address:           c.Address,
		Phone:             c.Phone,
		Email:             c.Email,
	}
}

// FlexStrings 请求里既可能是数组也可能是 "、" 连接的字符串的字段
type FlexStrings []string

// UnmarshalJSON 兼容 ["A","B"] 和 "A、B" 两种写法
func (f *FlexStrings) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*f = nil
			return nil
		}
		*f = strings.Split(s, Separator)
		return nil
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return err
	}
	*f = arr
	return nil
}

// CompanyInput PUT /api/company 的请求体
// 没有逐字段校验: 缺失的字段按零值整行覆盖
type CompanyInput struct {
	Name              string      `json:"name"`
	Slogan            string      `json:"slogan"`
	Description       string      `json:"description"`
	FoundedDate       string      `json:"foundedDate"`
	RegisteredCapital string      `json:"registeredCapital"`
	MainBusiness      FlexStrings `json:"mainBusiness"`
	Address           string      `json:"address"`
	Phone             string      `json:"phone"`
	Email             string      `json:"email"`
}

// ToRow 视图 -> 存储行
func (in *CompanyInput) ToRow() Company {
	return Company{
		ID:                CompanyID,
		Name:              in.Name,
		Slogan:            in.Slogan,
		Description:       in.Description,
		FoundedDate:       in.FoundedDate,
		RegisteredCapital: in.RegisteredCapital,
		MainBusiness:      StringList(in.MainBusiness),
		Address:           in.Address,
		Phone:             in.Phone,
		Email:             in.Email,
	}
}

// Avatar 头像引用, 只有 url 一个字段
type Avatar struct {
	URL string `json:"url"`
}

// FounderView GET /api/founders 的单条响应形态
// Avatar 为空时输出 null, 前端需要同时处理两种情况
type FounderView struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	Biography    string  `json:"biography"`
	Education    string  `json:"education"`
	Shareholding string  `json:"shareholding"`
	Avatar       *Avatar `json:"avatar"`
}

// NewFounderView 存储行 -> 视图
func NewFounderView(f *Founder) FounderView {
	v := FounderView{
		ID:           f.ID,
		Name:         f.Name,
		Position:     f.Position,
		Biography:    f.Bio,
		Education:    f.Education,
		Shareholding: f.Shareholding,
	}
	if f.AvatarURL != "" {
		v.Avatar = &Avatar{URL: f.AvatarURL}
	}
	return v
}

// FounderInput POST/PUT /api/founders 的请求体
type FounderInput struct {
	Name         string `json:"name"`
	Position     string `json:"position"`
	Biography    string `json:"biography"`
	Education    string `json:"education"`
	Shareholding string `json:"shareholding"`
	AvatarURL    string `json:"avatarUrl"`
	OrderIndex   int    `json:"orderIndex"`
}

// ToRow 视图 -> 存储行 (id 由调用方决定: 新建时留零值)
func (in *FounderInput) ToRow() Founder {
	return Founder{
		Name:         in.Name,
		Position:     in.Position,
		Bio:          in.Biography,
		Education:    in.Education,
		Shareholding: in.Shareholding,
		AvatarURL:    in.AvatarURL,
		OrderIndex:   in.OrderIndex,
	}
}
