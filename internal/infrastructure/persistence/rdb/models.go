package rdb

import (
	"time"
)

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"uniqueIndex;size:150;not null;comment:用户名"`
	Password  string    `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	IsStaff   bool      `gorm:"not null;comment:是否为staff"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格、评分以int64存储"百分之一"为单位(避免浮点数精度问题)
// 2. OwnerID可为空(用户被删除后图书保留)
// 3. 不使用软删除,删除图书时同时删除其关系记录
type BookModel struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"index;size:255;not null;comment:书名"`
	Price      int64     `gorm:"index;not null;comment:价格(分)"`
	AuthorName string    `gorm:"index;size:255;not null;comment:作者"`
	OwnerID    *uint     `gorm:"index;comment:创建者用户ID"`
	Rating     int64     `gorm:"not null;default:0;comment:平均评分(×100)"`
	CreatedAt  time.Time `gorm:"comment:创建时间"`
	UpdatedAt  time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// RelationModel GORM用户-图书关系模型
// 设计说明:
// 1. (user_id, book_id)联合唯一索引,同一用户对同一本书只有一条记录
// 2. like是SQL保留字,列名使用liked
// 3. rate为NULL表示未评分
type RelationModel struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"uniqueIndex:idx_user_book;not null;comment:用户ID"`
	BookID      uint      `gorm:"uniqueIndex:idx_user_book;index;not null;comment:图书ID"`
	Liked       bool      `gorm:"column:liked;not null;comment:是否点赞"`
	InBookmarks bool      `gorm:"not null;comment:是否收藏"`
	Rate        *int      `gorm:"comment:评分(1-5)"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (RelationModel) TableName() string {
	return "user_book_relations"
}
