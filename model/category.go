package model

import (
	"fmt"
	"strings"
)

// Category はイベントの分類です。
type Category int

const (
	Solo Category = iota
	Shared
	Virtual
)

// Categories は全カテゴリを定義順に返します。
func Categories() []Category {
	return []Category{Solo, Shared, Virtual}
}

var categoryNames = [...]string{"solo", "shared", "virtual"}

// categoryByCodeLength はカテゴリコードの文字数からカテゴリを引く表です。
var categoryByCodeLength = map[int]Category{
	1: Solo,
	2: Shared,
	3: Virtual,
}

// CategoryFromCode はトリム済みのカテゴリコードからカテゴリを決定します。
// コードの値ではなく文字数で決まります。
func CategoryFromCode(code string) (Category, bool) {
	c, ok := categoryByCodeLength[len([]rune(code))]
	return c, ok
}

// ParseCategory はカテゴリ名（大文字小文字を区別しない）を解析します。
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(s, name) {
			return Category(i), nil
		}
	}
	return 0, NewValidationError(fmt.Sprintf("unknown category: %q", s))
}

// IsValid はカテゴリが定義済みの値かどうかを返します。
func (c Category) IsValid() bool {
	return c >= Solo && c <= Virtual
}

// String はカテゴリ名を返します。
func (c Category) String() string {
	if !c.IsValid() {
		return "unknown"
	}
	return categoryNames[c]
}

// Title は表示用のカテゴリ名を返します。
func (c Category) Title() string {
	switch c {
	case Solo:
		return "Solo"
	case Shared:
		return "Shared"
	case Virtual:
		return "Virtual"
	}
	return "Unknown"
}

// MarshalText はJSON出力用にカテゴリを文字列化します。
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText はカテゴリ名を読み込みます。
func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
