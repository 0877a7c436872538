package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValue(t *testing.T) {
	v, err := StringList{"农林废弃物发电", "生物质能发电"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["农林废弃物发电","生物质能发电"]`, v)

	// nil 也要序列化成合法 JSON, 避免列里出现 NULL 之外的脏值
	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestStringListScan(t *testing.T) {
	var l StringList

	// JSON 数组文本 (标准存储格式)
	require.NoError(t, l.Scan(`["A","B","C"]`))
	assert.Equal(t, StringList{"A", "B", "C"}, l)

	// 兼容直接用分隔符连接的存量数据
	require.NoError(t, l.Scan("甲、乙"))
	assert.Equal(t, StringList{"甲", "乙"}, l)

	// []byte 形式 (SQLite 驱动常见)
	require.NoError(t, l.Scan([]byte(`["X"]`)))
	assert.Equal(t, StringList{"X"}, l)

	// 空串与 NULL
	require.NoError(t, l.Scan(""))
	assert.Nil(t, []string(l))
	require.NoError(t, l.Scan(nil))
	assert.Nil(t, []string(l))

	assert.Error(t, l.Scan(42))
}

func TestStringListJoin(t *testing.T) {
	assert.Equal(t, "A、B、C", StringList{"A", "B", "C"}.Join())
	assert.Equal(t, "", StringList(nil).Join())
}
