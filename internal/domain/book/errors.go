package book

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Not found.")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "A valid number with at most 7 digits and 2 decimal places is required.").WithField("price")

	// ErrInvalidOrdering 无效的排序字段
	ErrInvalidOrdering = apperrors.New(apperrors.ErrCodeInvalidParams, "Invalid ordering field.").WithField("ordering")
)

func newValidationError(fields map[string][]string) error {
	return apperrors.Validation(fields)
}
