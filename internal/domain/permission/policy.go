// Package permission 写操作授权策略
//
// 规则(按顺序):
// 1. 读操作(列表、详情)总是允许,无论是否登录
// 2. 图书写操作(PUT/PATCH/DELETE):staff或图书owner
// 3. 关系写操作:只有关系自身的user
//
// 纯函数,不依赖HTTP层,可以直接做单元测试
package permission

import (
	"github.com/xiebiao/bookstore-api/internal/domain/book"
	"github.com/xiebiao/bookstore-api/internal/domain/relation"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// Actor 当前请求的调用者,nil表示未登录
type Actor struct {
	UserID  uint
	IsStaff bool
}

// CanRead 读操作总是允许
func CanRead(*Actor) bool {
	return true
}

// CanMutateBook 是否可以修改/删除图书
func CanMutateBook(actor *Actor, b *book.Book) bool {
	if actor == nil || b == nil {
		return false
	}
	return actor.IsStaff || b.IsOwnedBy(actor.UserID)
}

// CanMutateRelation 是否可以修改关系记录(只能改自己的)
func CanMutateRelation(actor *Actor, r *relation.Relation) bool {
	if actor == nil || r == nil {
		return false
	}
	return r.UserID == actor.UserID
}

// CheckBookWrite 图书写操作授权,返回可区分的错误
// - 未登录 → ErrUnauthenticated(401)
// - 已登录但无权限 → ErrPermissionDenied(403)
func CheckBookWrite(actor *Actor, b *book.Book) error {
	if actor == nil {
		return apperrors.ErrUnauthenticated
	}
	if !CanMutateBook(actor, b) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// CheckRelationWrite 关系写操作授权
func CheckRelationWrite(actor *Actor, r *relation.Relation) error {
	if actor == nil {
		return apperrors.ErrUnauthenticated
	}
	if !CanMutateRelation(actor, r) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
