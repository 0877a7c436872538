package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexStringsUnmarshal(t *testing.T) {
	var f FlexStrings
	require.NoError(t, json.Unmarshal([]byte(`["A","B","C"]`), &f))
	assert.Equal(t, FlexStrings{"A", "B", "C"}, f)

	// 字符串写法按分隔符拆开
	require.NoError(t, json.Unmarshal([]byte(`"A、B、C"`), &f))
	assert.Equal(t, FlexStrings{"A", "B", "C"}, f)

	require.NoError(t, json.Unmarshal([]byte(`""`), &f))
	assert.Nil(t, []string(f))

	assert.Error(t, json.Unmarshal([]byte(`123`), &f))
}

func TestCompanyRowViewMapping(t *testing.T) {
	row := Company{
		ID:                CompanyID,
		Name:              "测试公司",
		FoundedDate:       "2014-12-12",
		RegisteredCapital: "1.82亿元",
		MainBusiness:      StringList{"甲", "乙", "丙"},
	}
	view := NewCompanyView(&row)
	assert.Equal(t, "测试公司", view.Name)
	assert.Equal(t, "2014-12-12", view.FoundedDate)
	assert.Equal(t, "甲、乙、丙", view.MainBusiness)

	// 输入 -> 存储行: mainBusiness 归一为列表存储
	in := CompanyInput{Name: "新名字", MainBusiness: FlexStrings{"A", "B"}}
	back := in.ToRow()
	assert.Equal(t, CompanyID, back.ID)
	assert.Equal(t, StringList{"A", "B"}, back.MainBusiness)
}

func TestFounderViewAvatar(t *testing.T) {
	withAvatar := Founder{ID: 3, Name: "郭振军", Bio: "简介", AvatarURL: "/uploads/a.png"}
	v := NewFounderView(&withAvatar)
	require.NotNil(t, v.Avatar)
	assert.Equal(t, "/uploads/a.png", v.Avatar.URL)
	assert.Equal(t, "简介", v.Biography)

	// 没有头像时序列化为 null, 而不是空对象
	noAvatar := Founder{ID: 4, Name: "王焕庆"}
	b, err := json.Marshal(NewFounderView(&noAvatar))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"avatar":null`)
}
