package book

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxPrice 价格上限(7位有效数字,2位小数 → 99999.99)
const MaxPrice Price = 9999999

// Price 价格,单位为"分"(1.00 = 100)
type Price int64

// ParsePrice 解析十进制价格字符串
// 支持: "25"、"25.5"、"25.50";拒绝负数、超过2位小数、超过MaxPrice
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, ErrInvalidPrice
	}

	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if intPart == "" || (hasDot && fracPart == "") || len(fracPart) > 2 {
		return 0, ErrInvalidPrice
	}
	if !isDigits(intPart) || !isDigits(fracPart) {
		return 0, ErrInvalidPrice
	}
	// 补齐到2位小数: "5" → "50"
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	if len(intPart) > 5 {
		intPart = strings.TrimLeft(intPart, "0")
		if len(intPart) > 5 {
			return 0, ErrInvalidPrice
		}
	}

	cents, err := strconv.ParseInt(intPart+fracPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	p := Price(cents)
	if p > MaxPrice {
		return 0, ErrInvalidPrice
	}
	return p, nil
}

// String 格式化为2位小数,如 2500 → "25.00"
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", int64(p)/100, int64(p)%100)
}

// MarshalJSON 序列化为JSON数字(保留2位小数,如 25.00)
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalJSON 支持JSON数字或数字字符串
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParsePrice(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Rating 平均评分,单位为0.01(4.67 = 467)
type Rating int64

// String 固定2位小数,如 467 → "4.67",0 → "0.00"
func (r Rating) String() string {
	return fmt.Sprintf("%d.%02d", int64(r)/100, int64(r)%100)
}

// MarshalJSON 评分序列化为字符串 "4.67"
func (r Rating) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
