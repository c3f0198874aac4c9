package dto

import (
	"github.com/xiebiao/bookstore-api/internal/domain/book"
)

// BookRequest 创建/更新图书请求
// 所有字段都是指针:PATCH时nil表示不修改,POST/PUT时缺失由领域层报"This field is required."
// price支持JSON数字或数字字符串("25.5"),最多2位小数
// owner、rating、annotated_likes是只读字段,请求中出现会被忽略
type BookRequest struct {
	Name       *string     `json:"name" binding:"omitempty,max=255" example:"Test book 1"`
	Price      *book.Price `json:"price" swaggertype:"number" example:"25.00"`
	AuthorName *string     `json:"author_name" binding:"omitempty,max=255" example:"Author 1"`
}

// ToPatch 转换为领域层更新内容
func (r *BookRequest) ToPatch() book.Patch {
	return book.Patch{
		Name:       r.Name,
		Price:      r.Price,
		AuthorName: r.AuthorName,
	}
}

// BookResponse 图书响应
type BookResponse struct {
	ID             uint        `json:"id" example:"1"`
	Name           string      `json:"name" example:"Test book 1"`
	Price          book.Price  `json:"price" swaggertype:"number" example:"25.00"`
	AuthorName     string      `json:"author_name" example:"Author 1"`
	Owner          *uint       `json:"owner" example:"1"`
	Rating         book.Rating `json:"rating" swaggertype:"string" example:"4.67"`
	AnnotatedLikes int64       `json:"annotated_likes" example:"0"`
}

// ListBooksQuery 列表查询参数
type ListBooksQuery struct {
	Price    string `form:"price" example:"55.00"`
	Search   string `form:"search" example:"Author 1"`
	Ordering string `form:"ordering" example:"-price"`
}

// ToBookResponse 领域视图 → HTTP响应
func ToBookResponse(v *book.BookView) *BookResponse {
	return &BookResponse{
		ID:             v.ID,
		Name:           v.Name,
		Price:          v.Price,
		AuthorName:     v.AuthorName,
		Owner:          v.OwnerID,
		Rating:         v.Rating,
		AnnotatedLikes: v.AnnotatedLikes,
	}
}

// ToBookResponses 列表转换,空列表返回[]而不是null
func ToBookResponses(views []*book.BookView) []*BookResponse {
	out := make([]*BookResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ToBookResponse(v))
	}
	return out
}
