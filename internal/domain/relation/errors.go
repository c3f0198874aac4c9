package relation

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

var (
	// ErrRelationNotFound 关系不存在
	ErrRelationNotFound = apperrors.New(apperrors.ErrCodeNotFound, "Not found.")

	// ErrInvalidRate 评分超出范围
	ErrInvalidRate = apperrors.New(apperrors.ErrCodeInvalidParams, "\"rate\" must be between 1 and 5.").WithField("rate")
)
