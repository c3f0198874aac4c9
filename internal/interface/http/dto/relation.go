package dto

import (
	"encoding/json"

	"github.com/xiebiao/bookstore-api/internal/domain/relation"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// RelationRequest 更新用户-图书关系请求,缺失的字段保持不变
// rate的范围[1,5]由领域层校验;"rate": null 撤销评分
type RelationRequest struct {
	Like        *bool        `json:"like" example:"true"`
	InBookmarks *bool        `json:"in_bookmarks" example:"false"`
	Rate        OptionalRate `json:"rate" swaggertype:"integer" example:"5"`
}

// ToPatch 转换为领域层更新内容
func (r *RelationRequest) ToPatch() relation.Patch {
	return relation.Patch{
		Like:        r.Like,
		InBookmarks: r.InBookmarks,
		Rate:        r.Rate.Value,
		ClearRate:   r.Rate.Set && r.Rate.Value == nil,
	}
}

// errRateType rate不是整数
var errRateType = apperrors.Validation(map[string][]string{"rate": {"A valid integer is required."}})

// OptionalRate 区分"未提供"与"显式null"
//
//	字段缺失        → Set=false
//	"rate": null    → Set=true, Value=nil
//	"rate": 4       → Set=true, Value=4
type OptionalRate struct {
	Set   bool
	Value *int
}

// UnmarshalJSON 只有字段出现在请求体中时才会被调用
func (o *OptionalRate) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return errRateType
	}
	o.Value = &v
	return nil
}

// RelationResponse 关系响应
type RelationResponse struct {
	Book        uint `json:"book" example:"1"`
	Like        bool `json:"like" example:"true"`
	InBookmarks bool `json:"in_bookmarks" example:"false"`
	Rate        *int `json:"rate" example:"5"`
}

// ToRelationResponse 领域实体 → HTTP响应
func ToRelationResponse(r *relation.Relation) *RelationResponse {
	return &RelationResponse{
		Book:        r.BookID,
		Like:        r.Like,
		InBookmarks: r.InBookmarks,
		Rate:        r.Rate,
	}
}
