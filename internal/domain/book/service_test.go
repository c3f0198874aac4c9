package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// recordingRepo 记录写操作,未实现的方法会panic(测试中不应被调用)
type recordingRepo struct {
	Repository
	created []*Book
	updated []*Book
	list    ListParams
}

func (r *recordingRepo) Create(_ context.Context, b *Book) error {
	b.ID = uint(len(r.created) + 1)
	r.created = append(r.created, b)
	return nil
}

func (r *recordingRepo) Update(_ context.Context, b *Book) error {
	r.updated = append(r.updated, b)
	return nil
}

func (r *recordingRepo) FindViewByID(_ context.Context, id uint) (*BookView, error) {
	for _, b := range r.updated {
		if b.ID == id {
			return &BookView{Book: *b}, nil
		}
	}
	return nil, ErrBookNotFound
}

func (r *recordingRepo) List(_ context.Context, params ListParams) ([]*BookView, error) {
	r.list = params
	return nil, nil
}

func TestService_CreateBook(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)

	view, err := svc.CreateBook(context.Background(), " test book ", 2500, "Author 1", 7)
	require.NoError(t, err)

	assert.Equal(t, uint(1), view.ID)
	assert.Equal(t, "test book", view.Name)
	require.NotNil(t, view.OwnerID)
	assert.Equal(t, uint(7), *view.OwnerID)
	assert.Equal(t, "0.00", view.Rating.String())
	assert.Zero(t, view.AnnotatedLikes)
}

func TestService_CreateBook_ValidationBeforePersist(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)

	_, err := svc.CreateBook(context.Background(), "", 2500, "Author", 1)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "name")

	_, err = svc.CreateBook(context.Background(), "book", -1, "Author", 1)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	assert.Empty(t, repo.created, "校验失败时不能写入")
}

func TestService_UpdateBook_PutRequiresAllFields(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)
	owner := uint(1)
	b := &Book{ID: 3, Name: "old", Price: 100, AuthorName: "A", OwnerID: &owner}

	price := Price(5000)
	_, err := svc.UpdateBook(context.Background(), b, Patch{Price: &price}, true)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "name")
	assert.Contains(t, appErr.Fields, "author_name")
	assert.Empty(t, repo.updated)
	assert.Equal(t, Price(100), b.Price, "校验失败时实体不变")

	view, err := svc.UpdateBook(context.Background(), b, Patch{Price: &price}, false)
	require.NoError(t, err)
	assert.Equal(t, Price(5000), view.Price)
	assert.Equal(t, "old", view.Name, "PATCH未提供的字段保持不变")
}

func TestService_ListBooks_DefaultOrdering(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)

	_, err := svc.ListBooks(context.Background(), ListParams{Search: "  Author 1 "})
	require.NoError(t, err)
	assert.Equal(t, DefaultOrdering, repo.list.Ordering)
	assert.Equal(t, "Author 1", repo.list.Search)

	_, err = svc.ListBooks(context.Background(), ListParams{Ordering: Ordering{Field: "isbn"}})
	assert.ErrorIs(t, err, ErrInvalidOrdering)
}
