package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

var registerOnce sync.Once

// registerJSONTagNames 校验错误中使用json字段名(author_name而不是AuthorName)
func registerJSONTagNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
}

// BindJSON 绑定并校验请求体,错误统一转换为AppError
//
//   - 字段校验失败 → {"field": ["msg"]}
//   - 字段类型错误 → {"field": ["A valid ... is required."]}
//   - 领域类型自己的解析错误(如price)原样返回
//   - 其他(JSON格式错误) → {"detail": "..."}
//   - 空请求体等同于{}
func BindJSON(c *gin.Context, obj interface{}) error {
	registerJSONTagNames()
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		// 空请求体按{}处理
		err = binding.Validator.ValidateStruct(obj)
	}
	if err != nil {
		return convertBindError(err)
	}
	return nil
}

func convertBindError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make(map[string][]string, len(validationErrs))
		for _, e := range validationErrs {
			fields[e.Field()] = append(fields[e.Field()], friendlyMessage(e))
		}
		return apperrors.Validation(fields)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.Validation(map[string][]string{
			typeErr.Field: {typeMessage(typeErr.Type)},
		})
	}

	return apperrors.New(apperrors.ErrCodeBindError, "JSON parse error - "+err.Error())
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", e.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", e.Param())
	case "oneof":
		return "Must be one of: " + e.Param() + "."
	default:
		return "This field is invalid."
	}
}

func typeMessage(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "Must be a valid boolean."
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.String:
		return "Not a valid string."
	default:
		return "This field is invalid."
	}
}
