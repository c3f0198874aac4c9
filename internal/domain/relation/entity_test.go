package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestValidateRate(t *testing.T) {
	assert.NoError(t, ValidateRate(nil), "未评分是合法的")
	for rate := MinRate; rate <= MaxRate; rate++ {
		assert.NoError(t, ValidateRate(intPtr(rate)))
	}
	for _, rate := range []int{-1, 0, 6, 7} {
		assert.ErrorIs(t, ValidateRate(intPtr(rate)), ErrInvalidRate, "rate=%d", rate)
	}
}

func TestRelation_Apply(t *testing.T) {
	r := NewRelation(1, 2)
	assert.True(t, r.IsNew())

	r.Apply(Patch{Like: boolPtr(true)})
	assert.True(t, r.Like)
	assert.False(t, r.InBookmarks)
	assert.Nil(t, r.Rate)

	rate := 4
	r.Apply(Patch{Rate: &rate, InBookmarks: boolPtr(true)})
	rate = 1 // 修改调用方变量不能影响实体
	assert.Equal(t, 4, *r.Rate)
	assert.True(t, r.Like, "未提供的字段保持不变")
	assert.True(t, r.InBookmarks)
}

func TestPatch_TouchesRate(t *testing.T) {
	assert.False(t, Patch{Like: boolPtr(true)}.TouchesRate())
	assert.True(t, Patch{Rate: intPtr(3)}.TouchesRate())
}

func TestRelation_ApplyClearRate(t *testing.T) {
	r := NewRelation(1, 2)
	r.Apply(Patch{Rate: intPtr(5), Like: boolPtr(true)})
	require.NotNil(t, r.Rate)

	p := Patch{ClearRate: true, Rate: intPtr(9)}
	assert.NoError(t, p.Validate(), "撤销评分时忽略Rate")
	assert.True(t, p.TouchesRate())

	r.Apply(p)
	assert.Nil(t, r.Rate)
	assert.True(t, r.Like)
}
