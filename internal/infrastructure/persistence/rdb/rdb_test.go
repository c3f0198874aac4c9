package rdb

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/relation"
	"github.com/xiebiao/bookstore-api/internal/domain/user"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// newTestDB 内存SQLite,每个测试独立
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

func createUser(t *testing.T, repo user.Repository, username string) *user.User {
	t.Helper()
	u := user.NewUser(username, "hashed", false)
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func createBook(t *testing.T, repo book.Repository, name string, price book.Price, author string, owner uint) *book.Book {
	t.Helper()
	b := book.NewBook(name, price, author, owner)
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func like(t *testing.T, repo relation.Repository, userID, bookID uint) {
	t.Helper()
	rel := relation.NewRelation(userID, bookID)
	liked := true
	rel.Apply(relation.Patch{Like: &liked})
	require.NoError(t, repo.Save(context.Background(), rel))
}

func names(views []*book.BookView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.Name
	}
	return out
}

func TestUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := createUser(t, repo, "test_username")
	assert.NotZero(t, u.ID)

	found, err := repo.FindByUsername(ctx, "test_username")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	err = repo.Create(ctx, user.NewUser("test_username", "hashed", false))
	assert.ErrorIs(t, err, apperrors.ErrUsernameDuplicate)
}

func TestBookRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewBookRepository(db)
	ctx := context.Background()

	owner := createUser(t, users, "owner")
	b := createBook(t, repo, "Test book 1", 2500, "Author 1", owner.ID)
	assert.NotZero(t, b.ID)

	view, err := repo.FindViewByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test book 1", view.Name)
	assert.Equal(t, book.Price(2500), view.Price)
	assert.Equal(t, int64(0), view.AnnotatedLikes)
	assert.Equal(t, "0.00", view.Rating.String())
	require.NotNil(t, view.OwnerID)
	assert.Equal(t, owner.ID, *view.OwnerID)

	name := "Renamed"
	b.Apply(book.Patch{Name: &name})
	require.NoError(t, repo.Update(ctx, b))
	found, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Name)
	assert.Equal(t, "Author 1", found.AuthorName)

	require.NoError(t, repo.Delete(ctx, b.ID))
	_, err = repo.FindViewByID(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, b.ID), book.ErrBookNotFound)
}

func TestBookRepository_List(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewBookRepository(db)
	relations := NewRelationRepository(db)
	ctx := context.Background()

	u1 := createUser(t, users, "user1")
	u2 := createUser(t, users, "user2")
	b1 := createBook(t, repo, "Test book 1", 2500, "Author 1", u1.ID)
	b2 := createBook(t, repo, "Test book 2", 5500, "Author 5", u1.ID)
	b3 := createBook(t, repo, "Test book Author 1", 5500, "Author 2", u2.ID)

	like(t, relations, u1.ID, b2.ID)
	like(t, relations, u2.ID, b2.ID)
	like(t, relations, u1.ID, b3.ID)

	t.Run("default ordering by id", func(t *testing.T) {
		views, err := repo.List(ctx, book.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Test book 1", "Test book 2", "Test book Author 1"}, names(views))
		assert.Equal(t, int64(0), views[0].AnnotatedLikes)
		assert.Equal(t, int64(2), views[1].AnnotatedLikes)
		assert.Equal(t, int64(1), views[2].AnnotatedLikes)
	})

	t.Run("filter by price", func(t *testing.T) {
		price := book.Price(5500)
		views, err := repo.List(ctx, book.ListParams{Price: &price})
		require.NoError(t, err)
		assert.Equal(t, []string{"Test book 2", "Test book Author 1"}, names(views))
	})

	t.Run("search name or author", func(t *testing.T) {
		views, err := repo.List(ctx, book.ListParams{Search: "author 1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Test book 1", "Test book Author 1"}, names(views))
	})

	t.Run("search folds ASCII case", func(t *testing.T) {
		views, err := repo.List(ctx, book.ListParams{Search: "TEST BOOK 2"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Test book 2"}, names(views))
	})

	t.Run("search escapes wildcards", func(t *testing.T) {
		views, err := repo.List(ctx, book.ListParams{Search: "%"})
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("ordering by price uses id as tie-breaker", func(t *testing.T) {
		views, err := repo.List(ctx, book.ListParams{Ordering: book.Ordering{Field: book.OrderByPrice, Desc: true}})
		require.NoError(t, err)
		assert.Equal(t, []string{"Test book 2", "Test book Author 1", "Test book 1"}, names(views))
	})

	t.Run("ordering by annotated likes", func(t *testing.T) {
		views, err := repo.List(ctx, book.ListParams{Ordering: book.Ordering{Field: book.OrderByAnnotatedLikes, Desc: true}})
		require.NoError(t, err)
		assert.Equal(t, []uint{b2.ID, b3.ID, b1.ID}, []uint{views[0].ID, views[1].ID, views[2].ID})
	})

	t.Run("unknown ordering", func(t *testing.T) {
		_, err := repo.List(ctx, book.ListParams{Ordering: book.Ordering{Field: "secret"}})
		assert.ErrorIs(t, err, book.ErrInvalidOrdering)
	})
}

func TestBookRepository_DeleteRemovesRelations(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewBookRepository(db)
	relations := NewRelationRepository(db)
	ctx := context.Background()

	u := createUser(t, users, "user1")
	b := createBook(t, repo, "Test book 1", 2500, "Author 1", u.ID)
	like(t, relations, u.ID, b.ID)

	require.NoError(t, repo.Delete(ctx, b.ID))

	_, err := relations.FindByUserAndBook(ctx, u.ID, b.ID)
	assert.ErrorIs(t, err, relation.ErrRelationNotFound)
}

func TestRelationRepository(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	books := NewBookRepository(db)
	repo := NewRelationRepository(db)
	ctx := context.Background()

	u1 := createUser(t, users, "user1")
	u2 := createUser(t, users, "user2")
	b := createBook(t, books, "Test book 1", 2500, "Author 1", u1.ID)

	_, err := repo.FindByUserAndBook(ctx, u1.ID, b.ID)
	assert.ErrorIs(t, err, relation.ErrRelationNotFound)

	// 新建
	rel := relation.NewRelation(u1.ID, b.ID)
	rate := 5
	rel.Apply(relation.Patch{Rate: &rate})
	require.NoError(t, repo.Save(ctx, rel))
	assert.NotZero(t, rel.ID)

	// 原地更新
	liked := true
	rel.Apply(relation.Patch{Like: &liked})
	require.NoError(t, repo.Save(ctx, rel))

	found, err := repo.FindByUserAndBook(ctx, u1.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, rel.ID, found.ID)
	assert.True(t, found.Like)
	require.NotNil(t, found.Rate)
	assert.Equal(t, 5, *found.Rate)

	// 同一用户同一本书只能有一条记录
	err = repo.Save(ctx, relation.NewRelation(u1.ID, b.ID))
	assert.Error(t, err)

	// 未评分的关系不参与评分统计
	require.NoError(t, repo.Save(ctx, relation.NewRelation(u2.ID, b.ID)))

	rates, err := repo.ListRatesByBook(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, rates)

	likes, err := repo.CountLikes(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)
}

func TestTxManager_Rollback(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	books := NewBookRepository(db)
	txManager := NewTxManager(db)
	ctx := context.Background()

	u := createUser(t, users, "user1")
	b := createBook(t, books, "Test book 1", 2500, "Author 1", u.ID)

	err := txManager.Transaction(ctx, func(ctx context.Context) error {
		if _, err := books.LockByID(ctx, b.ID); err != nil {
			return err
		}
		if err := books.UpdateRating(ctx, b.ID, 467); err != nil {
			return err
		}
		return apperrors.ErrInternal
	})
	assert.ErrorIs(t, err, apperrors.ErrInternal)

	found, err := books.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, book.Rating(0), found.Rating, "事务回滚后评分不变")

	err = txManager.Transaction(ctx, func(ctx context.Context) error {
		return books.UpdateRating(ctx, b.ID, 467)
	})
	require.NoError(t, err)

	found, err = books.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "4.67", found.Rating.String())
}
