package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

func TestOperations(t *testing.T) {
	cases := []struct {
		op   string
		want int
	}{
		{"+", 19},
		{"-", -7},
		{"*", 78},
	}

	for _, tc := range cases {
		t.Run(tc.op, func(t *testing.T) {
			got, err := Operations(6, 13, tc.op)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOperations_Float(t *testing.T) {
	got, err := Operations(1.5, 2.0, "*")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-9)
}

func TestOperations_Unsupported(t *testing.T) {
	for _, op := range []string{"/", "%", "", "plus"} {
		_, err := Operations(6, 13, op)
		assert.ErrorIs(t, err, apperrors.ErrUnsupportedOperation, "运算符%q应该被拒绝", op)
	}
}
