// Package store は、イベントログの読み込みと保持を提供します。
package store

import (
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/stsysd/eventgrapher/model"
)

// LineParser は1行をEventに変換するインターフェースです。
type LineParser interface {
	// ParseLine は1行を解析します。不正な行の場合は (nil, false) を返します。
	ParseLine(line string) (*model.Event, bool)
}

// EventStore はイベントの参照を行うインターフェースです。
type EventStore interface {
	// All は全イベントを入力順で返します。
	All() []model.Event
	// ByCategory は指定カテゴリのイベントを入力順で返します。
	ByCategory(c model.Category) []model.Event
	// Len は全イベント数を返します。
	Len() int
	// Count は指定カテゴリのイベント数を返します。
	Count(c model.Category) int
}

// Collection はデータセット全体のイベント列を保持します。
// 構築後は不変で、アクセサはコピーを返します。
type Collection struct {
	events     []model.Event
	byCategory map[model.Category][]model.Event
	skipped    int
}

var _ EventStore = (*Collection)(nil)

// Build は各行を順に解析し、受理されたイベントだけを入力順で保持します。
// 並べ替えや重複除去は行いません。
func Build(lines []string, p LineParser) *Collection {
	c := &Collection{byCategory: make(map[model.Category][]model.Event)}
	for _, line := range lines {
		event, ok := p.ParseLine(line)
		if !ok {
			// 空行は数えない
			if strings.TrimSpace(line) != "" {
				c.skipped++
			}
			continue
		}
		c.events = append(c.events, *event)
	}

	// カテゴリ別の部分列を事前に作成
	for _, cat := range model.Categories() {
		c.byCategory[cat] = lo.Filter(c.events, func(e model.Event, _ int) bool {
			return e.Category == cat
		})
	}
	return c
}

// NewCollection は解析済みのイベント列からCollectionを作成します。
func NewCollection(events []model.Event) *Collection {
	c := &Collection{
		events:     slices.Clone(events),
		byCategory: lo.GroupBy(events, func(e model.Event) model.Category { return e.Category }),
	}
	return c
}

// All は全イベントを入力順で返します。
func (c *Collection) All() []model.Event {
	return slices.Clone(c.events)
}

// ByCategory は指定カテゴリのイベントを入力順で返します。
func (c *Collection) ByCategory(cat model.Category) []model.Event {
	return slices.Clone(c.byCategory[cat])
}

// Len は全イベント数を返します。
func (c *Collection) Len() int {
	return len(c.events)
}

// Count は指定カテゴリのイベント数を返します。
func (c *Collection) Count(cat model.Category) int {
	return len(c.byCategory[cat])
}

// Skipped は棄却された空でない行の数を返します。
func (c *Collection) Skipped() int {
	return c.skipped
}
