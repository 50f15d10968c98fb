// Package stats は、イベント列から派生統計を計算します。
// すべての関数は入力を変更せず、独立した結果を返します。
package stats

import (
	"time"

	"github.com/stsysd/eventgrapher/model"
)

// HoursPerDay は1日の時間数です。
const HoursPerDay = 24

// WeekdayTable は曜日（time.Weekday順、日曜=0）ごとの件数です。
type WeekdayTable [7]int

// Total は全曜日の合計を返します。
func (t WeekdayTable) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Max は最大件数を返します。
func (t WeekdayTable) Max() int {
	m := 0
	for _, n := range t {
		m = max(m, n)
	}
	return m
}

// WeekHourTable は曜日×時間帯ごとの件数です。
type WeekHourTable [7][HoursPerDay]int

// At は指定の曜日・時間の件数を返します。
func (t WeekHourTable) At(weekday time.Weekday, hour int) int {
	return t[weekday][hour]
}

// Total は全バケットの合計を返します。
func (t WeekHourTable) Total() int {
	total := 0
	for _, row := range t {
		for _, n := range row {
			total += n
		}
	}
	return total
}

// Max は最大件数を返します。
func (t WeekHourTable) Max() int {
	m := 0
	for _, row := range t {
		for _, n := range row {
			m = max(m, n)
		}
	}
	return m
}

// DailyCounts は対象年の各日（365/366日すべて）のイベント数を返します。
// 対象年以外のイベントは数えません。
func DailyCounts(events []model.Event, year *model.Year) map[model.Day]int {
	counts := make(map[model.Day]int, year.Len())
	for _, d := range year.Days() {
		counts[d] = 0
	}
	for _, e := range events {
		d := e.Day()
		if year.Contains(d) {
			counts[d]++
		}
	}
	return counts
}

// WeeklyHourCounts は日付を無視し、曜日×時間帯ごとにイベント数を数えます。
func WeeklyHourCounts(events []model.Event) WeekHourTable {
	var table WeekHourTable
	for _, e := range events {
		table[e.Timestamp.Weekday()][e.Timestamp.Hour()]++
	}
	return table
}

// WeekdayCounts は曜日ごとのイベント数を返します。
func WeekdayCounts(events []model.Event) WeekdayTable {
	var table WeekdayTable
	for _, e := range events {
		table[e.Timestamp.Weekday()]++
	}
	return table
}

// WeekdayCategoryCounts はカテゴリごとの曜日別イベント数を返します。
// 全カテゴリのキーが必ず含まれます。
func WeekdayCategoryCounts(events []model.Event) map[model.Category]WeekdayTable {
	result := make(map[model.Category]WeekdayTable, len(model.Categories()))
	for _, c := range model.Categories() {
		result[c] = WeekdayTable{}
	}
	for _, e := range events {
		table := result[e.Category]
		table[e.Timestamp.Weekday()]++
		result[e.Category] = table
	}
	return result
}

// Ratio は part/total を返します。totalが0の場合は0です。
func Ratio(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}
