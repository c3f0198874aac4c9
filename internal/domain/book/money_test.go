package book

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	valid := map[string]Price{
		"25":       2500,
		"25.5":     2550,
		"25.50":    2550,
		"0":        0,
		"0.01":     1,
		"99999.99": 9999999,
		"0055":     5500,
	}
	for in, want := range valid {
		got, err := ParsePrice(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "-1", "+1", "1.234", "abc", "1.", ".5", "100000", "1e3"} {
		_, err := ParsePrice(in)
		assert.ErrorIs(t, err, ErrInvalidPrice, "%q应该被拒绝", in)
	}
}

func TestPrice_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Price Price `json:"price"`
	}{Price: 2500})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price": 25.00}`, string(data))
	assert.Contains(t, string(data), "25.00", "价格保留2位小数")

	var in struct {
		Price *Price `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price": 55}`), &in))
	assert.Equal(t, Price(5500), *in.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price": "12.30"}`), &in))
	assert.Equal(t, Price(1230), *in.Price)

	assert.Error(t, json.Unmarshal([]byte(`{"price": -3}`), &in))
}

func TestRating_String(t *testing.T) {
	assert.Equal(t, "0.00", Rating(0).String())
	assert.Equal(t, "4.67", Rating(467).String())
	assert.Equal(t, "5.00", Rating(500).String())

	data, err := json.Marshal(Rating(467))
	require.NoError(t, err)
	assert.Equal(t, `"4.67"`, string(data))
}
