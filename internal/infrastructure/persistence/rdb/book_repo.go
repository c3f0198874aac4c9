package rdb

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookstore-api/internal/domain/book"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// likesSubquery 点赞数子查询(注解字段annotated_likes)
// 用相关子查询而不是JOIN + GROUP BY,避免与其他过滤条件组合时重复计数
const likesSubquery = "(SELECT COUNT(*) FROM user_book_relations r WHERE r.book_id = books.id AND r.liked = ?)"

// orderColumns 排序字段 → SQL列
var orderColumns = map[string]string{
	book.OrderByID:             "books.id",
	book.OrderByName:           "books.name",
	book.OrderByPrice:          "books.price",
	book.OrderByAuthorName:     "books.author_name",
	book.OrderByOwner:          "books.owner_id",
	book.OrderByRating:         "books.rating",
	book.OrderByAnnotatedLikes: "annotated_likes",
}

// bookViewRow 列表/详情查询结果(books.* + annotated_likes)
type bookViewRow struct {
	ID             uint
	Name           string
	Price          int64
	AuthorName     string
	OwnerID        *uint
	Rating         int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	AnnotatedLikes int64
}

// bookRepository 图书仓储实现
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 所有方法都通过getDB(ctx)取DB,以便参与TxManager开启的事务
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	if err := r.getDB(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// FindViewByID 根据ID查找图书及点赞数
func (r *bookRepository) FindViewByID(ctx context.Context, id uint) (*book.BookView, error) {
	var rows []bookViewRow
	err := r.viewQuery(ctx).
		Where("books.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	if len(rows) == 0 {
		return nil, book.ErrBookNotFound
	}
	return toBookView(&rows[0]), nil
}

// List 按过滤、搜索、排序条件查询图书
//
// 1. price: 精确匹配
// 2. search: name或author_name不区分大小写的子串匹配
// 3. ordering: 非id字段追加 books.id ASC 保证结果稳定
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.BookView, error) {
	query := r.viewQuery(ctx)

	if params.Price != nil {
		query = query.Where("books.price = ?", int64(*params.Price))
	}

	// LOWER()的大小写折叠依赖方言:MySQL按列的utf8mb4排序规则处理Unicode,
	// SQLite内置LOWER只折叠ASCII,"пушкин"匹配不到"Пушкин"
	if params.Search != "" {
		pattern := containsPattern(params.Search)
		query = query.Where(
			"LOWER(books.name) LIKE ? ESCAPE '!' OR LOWER(books.author_name) LIKE ? ESCAPE '!'",
			pattern, pattern,
		)
	}

	ordering := params.Ordering
	if ordering.Field == "" {
		ordering = book.DefaultOrdering
	}
	column, ok := orderColumns[ordering.Field]
	if !ok {
		return nil, book.ErrInvalidOrdering
	}
	query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: column, Raw: true}, Desc: ordering.Desc})
	if ordering.Field != book.OrderByID {
		query = query.Order("books.id ASC")
	}

	var rows []bookViewRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	views := make([]*book.BookView, len(rows))
	for i := range rows {
		views[i] = toBookView(&rows[i])
	}
	return views, nil
}

// Update 更新图书基本信息(不包括rating和owner)
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	result := r.getDB(ctx).Model(&BookModel{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"name":        b.Name,
			"price":       int64(b.Price),
			"author_name": b.AuthorName,
			"updated_at":  b.UpdatedAt,
		})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// Delete 删除图书及其所有关系记录
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	return r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&RelationModel{}).Error; err != nil {
			return apperrors.Wrap(err, "删除图书关系失败")
		}

		result := tx.Delete(&BookModel{}, id)
		if result.Error != nil {
			return apperrors.Wrap(result.Error, "删除图书失败")
		}
		if result.RowsAffected == 0 {
			return book.ErrBookNotFound
		}
		return nil
	})
}

// LockByID 悲观锁查询图书(SELECT ... FOR UPDATE)
// 必须在事务中调用,否则锁在语句结束时就释放了
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}
	return toBookEntity(&model), nil
}

// UpdateRating 只更新rating字段
func (r *bookRepository) UpdateRating(ctx context.Context, id uint, rating book.Rating) error {
	result := r.getDB(ctx).Model(&BookModel{}).
		Where("id = ?", id).
		Update("rating", int64(rating))
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新图书评分失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// viewQuery books.* + 点赞数
func (r *bookRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.getDB(ctx).
		Model(&BookModel{}).
		Select("books.*, "+likesSubquery+" AS annotated_likes", true)
}

func (r *bookRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:         b.ID,
		Name:       b.Name,
		Price:      int64(b.Price),
		AuthorName: b.AuthorName,
		OwnerID:    b.OwnerID,
		Rating:     int64(b.Rating),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:         model.ID,
		Name:       model.Name,
		Price:      book.Price(model.Price),
		AuthorName: model.AuthorName,
		OwnerID:    model.OwnerID,
		Rating:     book.Rating(model.Rating),
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func toBookView(row *bookViewRow) *book.BookView {
	return &book.BookView{
		Book: book.Book{
			ID:         row.ID,
			Name:       row.Name,
			Price:      book.Price(row.Price),
			AuthorName: row.AuthorName,
			OwnerID:    row.OwnerID,
			Rating:     book.Rating(row.Rating),
			CreatedAt:  row.CreatedAt,
			UpdatedAt:  row.UpdatedAt,
		},
		AnnotatedLikes: row.AnnotatedLikes,
	}
}
