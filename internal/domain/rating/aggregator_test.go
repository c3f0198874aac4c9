package rating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/relation"
)

func TestMean(t *testing.T) {
	cases := []struct {
		name  string
		rates []int
		want  string
	}{
		{"无评分", nil, "0.00"},
		{"单个评分", []int{5}, "5.00"},
		{"5,5,4", []int{5, 5, 4}, "4.67"},
		{"4,5 → 4.50", []int{4, 5}, "4.50"},
		{"1,2,2 → 1.67", []int{1, 2, 2}, "1.67"},
		{"1,1,2 → 1.33", []int{1, 1, 2}, "1.33"},
		{"半数进位 1,2,2,2,2,2,2,2 → 1.875 → 1.88", []int{1, 2, 2, 2, 2, 2, 2, 2}, "1.88"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Mean(tc.rates)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

// stubBooks 只实现聚合器用到的方法
type stubBooks struct {
	book.Repository
	locked  []uint
	ratings map[uint]book.Rating
}

func (s *stubBooks) LockByID(_ context.Context, id uint) (*book.Book, error) {
	if id != 1 {
		return nil, book.ErrBookNotFound
	}
	s.locked = append(s.locked, id)
	return &book.Book{ID: id}, nil
}

func (s *stubBooks) UpdateRating(_ context.Context, id uint, r book.Rating) error {
	s.ratings[id] = r
	return nil
}

type stubRelations struct {
	relation.Repository
	rates []int
}

func (s *stubRelations) ListRatesByBook(context.Context, uint) ([]int, error) {
	return s.rates, nil
}

func TestAggregator_SetRating(t *testing.T) {
	books := &stubBooks{ratings: map[uint]book.Rating{}}
	agg := NewAggregator(books, &stubRelations{rates: []int{5, 5, 4}})

	r, err := agg.SetRating(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "4.67", r.String())
	assert.Equal(t, book.Rating(467), books.ratings[1], "评分应该写回图书")
	assert.Equal(t, []uint{1}, books.locked, "重算前必须先锁定图书行")
}

func TestAggregator_SetRating_BookNotFound(t *testing.T) {
	books := &stubBooks{ratings: map[uint]book.Rating{}}
	agg := NewAggregator(books, &stubRelations{})

	_, err := agg.SetRating(context.Background(), 99)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.Empty(t, books.ratings)
}
