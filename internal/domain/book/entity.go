package book

import (
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. 价格、评分都以"百分之一"为单位的整数存储(避免浮点数精度问题)
// 2. OwnerID为nil表示无主图书(只有staff可以修改)
// 3. Rating是派生字段,只能由评分聚合器写入,客户端不能直接设置
type Book struct {
	ID         uint
	Name       string
	Price      Price
	AuthorName string
	OwnerID    *uint
	Rating     Rating
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BookView 图书 + 点赞数(列表/详情查询时计算)
type BookView struct {
	Book
	AnnotatedLikes int64
}

// NewBook 创建新图书(工厂方法)
// ownerID是创建者的用户ID,由认证中间件提供,客户端不能指定
func NewBook(name string, price Price, authorName string, ownerID uint) *Book {
	now := time.Now()
	return &Book{
		Name:       name,
		Price:      price,
		AuthorName: authorName,
		OwnerID:    &ownerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Patch 图书更新内容
// 字段为nil表示不修改(PATCH语义);PUT要求三个字段都不为nil
type Patch struct {
	Name       *string
	Price      *Price
	AuthorName *string
}

// Validate 校验更新内容
// full=true时为PUT全量更新,所有字段必填
func (p Patch) Validate(full bool) error {
	fields := map[string][]string{}
	if p.Name != nil && *p.Name == "" {
		fields["name"] = []string{"This field may not be blank."}
	}
	if p.AuthorName != nil && *p.AuthorName == "" {
		fields["author_name"] = []string{"This field may not be blank."}
	}
	if full {
		if p.Name == nil {
			fields["name"] = []string{"This field is required."}
		}
		if p.Price == nil {
			fields["price"] = []string{"This field is required."}
		}
		if p.AuthorName == nil {
			fields["author_name"] = []string{"This field is required."}
		}
	}
	if len(fields) > 0 {
		return newValidationError(fields)
	}
	return nil
}

// Apply 应用更新(领域行为)
func (b *Book) Apply(p Patch) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	if p.AuthorName != nil {
		b.AuthorName = *p.AuthorName
	}
	b.UpdatedAt = time.Now()
}

// IsOwnedBy 检查图书是否属于指定用户
func (b *Book) IsOwnedBy(userID uint) bool {
	return b.OwnerID != nil && *b.OwnerID == userID
}
