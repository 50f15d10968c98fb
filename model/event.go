// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"errors"
	"time"
)

// Kind はイベントの付加情報の種類を表します。
// どのDetailsフィールドが埋まっているかを示すだけで、集計には影響しません。
type Kind int

const (
	// KindMinimal は日時とカテゴリのみのイベント（2フィールドの行）
	KindMinimal Kind = iota
	// KindHeadlined はヘッドライナーのみを持つイベント（Sharedまたは独立イベント）
	KindHeadlined
	// KindVirtual はサイトを持たないVirtualイベント
	KindVirtual
	// KindArt はanime/comic/fanartラベルを持つイベント
	KindArt
	// KindLive はその他すべての詳細付きイベント
	KindLive
)

var kindNames = [...]string{"minimal", "headlined", "virtual", "art", "live"}

// String はKindの名前を返します。
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText はJSON出力用にKindを文字列化します。
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Performer は出演者とその任意の所属サイトを表します。
type Performer struct {
	Name string `json:"name"`
	Site string `json:"site,omitempty"`
}

// Details は詳細行にのみ含まれる任意フィールドです。
type Details struct {
	Headliners []string    `json:"headliners,omitempty"` // ヘッドライナー一覧
	Sites      []string    `json:"sites,omitempty"`      // 会場・サイト一覧
	Performers []Performer `json:"performers,omitempty"` // 出演者一覧
	Style      string      `json:"style,omitempty"`      // スタイル
	Platform   string      `json:"platform,omitempty"`   // プラットフォーム
	Format     string      `json:"format,omitempty"`     // フォーマット
	Labels     []string    `json:"labels,omitempty"`     // ラベル（小文字）
	Genre      string      `json:"genre,omitempty"`      // Artイベントのジャンル
}

// Event はログに記録された1件のイベントを表すモデルです。
type Event struct {
	Timestamp   time.Time `json:"timestamp"`   // イベントの日時（分単位）
	Category    Category  `json:"category"`    // カテゴリ
	Kind        Kind      `json:"kind"`        // 付加情報の種類
	Independent bool      `json:"independent"` // 独立イベントフラグ
	Details     Details   `json:"details"`     // 任意の付加情報
}

// NewEvent は日時とカテゴリのみを持つEventを作成します。
func NewEvent(timestamp time.Time, category Category) (*Event, error) {
	e := &Event{
		Timestamp: timestamp,
		Category:  category,
		Kind:      KindMinimal,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate はイベントのデータバリデーションを行います。
func (e *Event) Validate() error {
	if e.Timestamp.IsZero() {
		return errors.New("timestamp is required")
	}
	if !e.Category.IsValid() {
		return errors.New("category is invalid")
	}
	return nil
}

// Day はイベントの日付（時刻を切り捨てたもの）を返します。
func (e *Event) Day() Day {
	return DayOf(e.Timestamp)
}
