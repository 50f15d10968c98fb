// Package parser はイベントログの1行をEventに変換します。
package parser

import (
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/stsysd/eventgrapher/model"
)

// TimestampLayout は行の先頭フィールドの日時フォーマットです（MM.DD.YYYY hh:mmAM/PM）。
// 月・日・時は1桁も受け付けます。
const TimestampLayout = "1.2.2006 3:04PM"

const (
	fieldSeparator = ","
	listSeparator  = "|"
	independentTag = "Independent"
)

// フィールド位置
const (
	fieldTimestamp = iota
	fieldCategory
	fieldHeadliners
	fieldSites
	fieldPerformers
	fieldStyle
	fieldPlatform
	fieldFormat
	fieldLabels
)

// artLabels のいずれかを含むイベントはArtとして扱います。
var artLabels = []string{"anime", "comic", "fanart"}

// Parser は行の解析器です。日時は loc のタイムゾーンで解釈します。
type Parser struct {
	loc *time.Location
}

// New は新しいParserを作成します。locがnilの場合はtime.Localを使用します。
func New(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.Local
	}
	return &Parser{loc: loc}
}

// Location は日時解釈に使うタイムゾーンを返します。
func (p *Parser) Location() *time.Location {
	return p.loc
}

// ParseLine は1行を解析します。不正な行の場合は (nil, false) を返します。
// 任意フィールドの不備は行の棄却理由にならず、ゼロ値のまま残ります。
func (p *Parser) ParseLine(line string) (*model.Event, bool) {
	// カンマ区切りで2項目以上あることを確認
	if line == "" || !strings.Contains(line, fieldSeparator) {
		return nil, false
	}
	fields := strings.Split(line, fieldSeparator)
	if len(fields) < 2 {
		return nil, false
	}

	// 1項目目: 日時
	timestamp, err := time.ParseInLocation(TimestampLayout, strings.ToUpper(strings.TrimSpace(fields[fieldTimestamp])), p.loc)
	if err != nil {
		return nil, false
	}

	// 2項目目: カテゴリコード（文字数で判定）
	category, ok := model.CategoryFromCode(strings.TrimSpace(fields[fieldCategory]))
	if !ok {
		return nil, false
	}

	event := &model.Event{
		Timestamp: timestamp,
		Category:  category,
		Kind:      model.KindMinimal,
	}
	if len(fields) == 2 {
		return event, true
	}

	p.parseDetails(event, fields)
	return event, true
}

// parseDetails は3項目目以降を解析し、種類に応じてDetailsを埋めます。
func (p *Parser) parseDetails(event *model.Event, fields []string) {
	var headliners []string
	switch {
	case event.Category == model.Virtual || event.Category == model.Shared:
		headliners = splitList(field(fields, fieldHeadliners))
	case field(fields, fieldHeadliners) == independentTag:
		event.Independent = true
	}

	sites := splitList(field(fields, fieldSites))
	performers := parsePerformers(field(fields, fieldPerformers))
	style := field(fields, fieldStyle)
	platform := field(fields, fieldPlatform)
	format := field(fields, fieldFormat)
	labels := parseLabels(field(fields, fieldLabels))

	switch {
	case event.Category == model.Shared || event.Independent:
		event.Kind = model.KindHeadlined
		event.Details = model.Details{Headliners: headliners}

	case event.Category == model.Virtual && len(sites) == 0:
		event.Kind = model.KindVirtual
		event.Details = model.Details{Headliners: headliners, Platform: platform}

	case lo.Some(labels, artLabels):
		event.Kind = model.KindArt
		event.Details = model.Details{
			Headliners: headliners,
			Labels:     labels,
			Platform:   platform,
			Genre:      labels[0],
		}

	default:
		event.Kind = model.KindLive
		event.Details = model.Details{
			Headliners: headliners,
			Sites:      sites,
			Performers: performers,
			Style:      style,
			Platform:   platform,
			Format:     format,
			Labels:     labels,
		}
	}
}

// field はi番目のフィールドをトリムして返します。存在しない場合は空文字列です。
func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

// splitList はパイプ区切りのリストを分割します。空要素は除外します。
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	items := lo.Map(strings.Split(s, listSeparator), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
	return lo.Compact(items)
}

// parsePerformers は "Name" または "Name{Site}" のパイプ区切りリストを解析します。
func parsePerformers(s string) []model.Performer {
	var performers []model.Performer
	for _, item := range splitList(s) {
		name, site, found := strings.Cut(item, "{")
		if !found {
			performers = append(performers, model.Performer{Name: item})
			continue
		}
		site = strings.TrimSuffix(strings.TrimSpace(site), "}")
		performers = append(performers, model.Performer{
			Name: strings.TrimSpace(name),
			Site: strings.TrimSpace(site),
		})
	}
	return performers
}

// parseLabels は "[a|b]" 形式のラベルを小文字で返します。括弧がない場合は無視します。
func parseLabels(s string) []string {
	if len(s) < 2 || !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil
	}
	labels := splitList(s[1 : len(s)-1])
	return lo.Map(labels, func(label string, _ int) string {
		return strings.ToLower(label)
	})
}
