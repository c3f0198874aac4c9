package rdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/domain/relation"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// relationRepository 用户-图书关系仓储实现
type relationRepository struct {
	db *gorm.DB
}

// NewRelationRepository 创建关系仓储
func NewRelationRepository(db *gorm.DB) relation.Repository {
	return &relationRepository{db: db}
}

// FindByUserAndBook 根据(user_id, book_id)查找关系
func (r *relationRepository) FindByUserAndBook(ctx context.Context, userID, bookID uint) (*relation.Relation, error) {
	var model RelationModel
	err := r.getDB(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, relation.ErrRelationNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户图书关系失败")
	}
	return toRelationEntity(&model), nil
}

// Save 新建或更新关系
// 联合唯一索引冲突说明有并发请求抢先创建了同一条记录
func (r *relationRepository) Save(ctx context.Context, rel *relation.Relation) error {
	model := toRelationModel(rel)

	db := r.getDB(ctx)
	var err error
	if rel.IsNew() {
		err = db.Create(model).Error
	} else {
		err = db.Save(model).Error
	}
	if err != nil {
		if isDuplicateError(err) {
			return apperrors.New(apperrors.ErrCodeDuplicateEntry, "关系记录已存在")
		}
		return apperrors.Wrap(err, "保存用户图书关系失败")
	}

	rel.ID = model.ID
	rel.CreatedAt = model.CreatedAt
	rel.UpdatedAt = model.UpdatedAt
	return nil
}

// ListRatesByBook 返回某本书的所有非空评分
func (r *relationRepository) ListRatesByBook(ctx context.Context, bookID uint) ([]int, error) {
	var rates []int
	err := r.getDB(ctx).Model(&RelationModel{}).
		Where("book_id = ? AND rate IS NOT NULL", bookID).
		Order("id").
		Pluck("rate", &rates).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书评分失败")
	}
	return rates, nil
}

// CountLikes 统计点赞数
func (r *relationRepository) CountLikes(ctx context.Context, bookID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&RelationModel{}).
		Where("book_id = ? AND liked = ?", bookID, true).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计点赞数失败")
	}
	return count, nil
}

func (r *relationRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func toRelationModel(rel *relation.Relation) *RelationModel {
	return &RelationModel{
		ID:          rel.ID,
		UserID:      rel.UserID,
		BookID:      rel.BookID,
		Liked:       rel.Like,
		InBookmarks: rel.InBookmarks,
		Rate:        rel.Rate,
		CreatedAt:   rel.CreatedAt,
		UpdatedAt:   rel.UpdatedAt,
	}
}

func toRelationEntity(model *RelationModel) *relation.Relation {
	return &relation.Relation{
		ID:          model.ID,
		UserID:      model.UserID,
		BookID:      model.BookID,
		Like:        model.Liked,
		InBookmarks: model.InBookmarks,
		Rate:        model.Rate,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
