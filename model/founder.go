package model

// Founder 创始人/高管条目
// OrderIndex 值越小越靠前, 相同时按插入顺序 (id) 排列
type Founder struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	Bio          string `json:"bio"`
	Education    string `json:"education"`
	Shareholding string `json:"shareholding"`
	AvatarURL    string `json:"avatar_url"`
	OrderIndex   int    `json:"order_index" gorm:"default:0"`
}
