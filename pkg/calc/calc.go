// Package calc 提供基础的二元算术运算
package calc

import (
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// Number 支持的数值类型
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Operations 按运算符计算 a op b
// 支持 "+"、"-"、"*"，其他运算符返回ErrUnsupportedOperation
func Operations[T Number](a, b T, op string) (T, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	default:
		var zero T
		return zero, apperrors.ErrUnsupportedOperation
	}
}
