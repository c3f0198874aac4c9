package book

import "strings"

// 可排序字段
const (
	OrderByID             = "id"
	OrderByName           = "name"
	OrderByPrice          = "price"
	OrderByAuthorName     = "author_name"
	OrderByOwner          = "owner"
	OrderByRating         = "rating"
	OrderByAnnotatedLikes = "annotated_likes"
)

var orderableFields = map[string]bool{
	OrderByID:             true,
	OrderByName:           true,
	OrderByPrice:          true,
	OrderByAuthorName:     true,
	OrderByOwner:          true,
	OrderByRating:         true,
	OrderByAnnotatedLikes: true,
}

// Ordering 排序规则
// 非id字段排序时,仓储会追加 id ASC 作为第二排序键,保证结果稳定
type Ordering struct {
	Field string
	Desc  bool
}

// DefaultOrdering 未指定ordering时按主键升序
var DefaultOrdering = Ordering{Field: OrderByID}

// ParseOrdering 解析ordering参数,如 "price"、"-rating"
// 空字符串返回DefaultOrdering;未知字段返回ErrInvalidOrdering
func ParseOrdering(raw string) (Ordering, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultOrdering, nil
	}

	o := Ordering{Field: raw}
	if strings.HasPrefix(raw, "-") {
		o.Field = raw[1:]
		o.Desc = true
	}
	if !orderableFields[o.Field] {
		return Ordering{}, ErrInvalidOrdering
	}
	return o, nil
}

// String 还原为查询参数形式
func (o Ordering) String() string {
	if o.Desc {
		return "-" + o.Field
	}
	return o.Field
}
