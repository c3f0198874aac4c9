package relation

import (
	"time"
)

// 评分范围
const (
	MinRate = 1
	MaxRate = 5
)

// Relation 用户与图书的关系(点赞、收藏、评分)
// 设计说明:
// 1. (UserID, BookID)唯一,首次交互时创建,之后原地更新
// 2. Rate为nil表示未评分,不参与平均分计算
// 3. 本服务不删除关系记录
type Relation struct {
	ID          uint
	UserID      uint
	BookID      uint
	Like        bool
	InBookmarks bool
	Rate        *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRelation 创建空关系(未点赞、未收藏、未评分)
func NewRelation(userID, bookID uint) *Relation {
	now := time.Now()
	return &Relation{
		UserID:    userID,
		BookID:    bookID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsNew 是否尚未持久化
func (r *Relation) IsNew() bool {
	return r.ID == 0
}

// Patch 关系更新内容,nil字段保持不变
// ClearRate为true时撤销评分(请求中显式传了 "rate": null),此时忽略Rate
type Patch struct {
	Like        *bool
	InBookmarks *bool
	Rate        *int
	ClearRate   bool
}

// Validate 校验更新内容(必须在持久化之前调用)
func (p Patch) Validate() error {
	if p.ClearRate {
		return nil
	}
	return ValidateRate(p.Rate)
}

// TouchesRate 本次更新是否涉及评分(需要重算图书评分)
func (p Patch) TouchesRate() bool {
	return p.Rate != nil || p.ClearRate
}

// Apply 应用更新
func (r *Relation) Apply(p Patch) {
	if p.Like != nil {
		r.Like = *p.Like
	}
	if p.InBookmarks != nil {
		r.InBookmarks = *p.InBookmarks
	}
	switch {
	case p.ClearRate:
		r.Rate = nil
	case p.Rate != nil:
		rate := *p.Rate
		r.Rate = &rate
	}
	r.UpdatedAt = time.Now()
}

// ValidateRate 评分必须在[1,5]内
func ValidateRate(rate *int) error {
	if rate == nil {
		return nil
	}
	if *rate < MinRate || *rate > MaxRate {
		return ErrInvalidRate
	}
	return nil
}
