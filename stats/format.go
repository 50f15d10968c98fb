package stats

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stsysd/eventgrapher/model"
)

// 表示用の日時フォーマット
const (
	DisplayTimestampLayout = "01.02.2006 03:04PM"
	DisplayDayLayout       = "01.02.2006"
)

// NotAvailable は計算できなかった統計の表示です。
const NotAvailable = "n/a"

// FormatTimestamp は日時を "01.08.2020 09:00am" の形式にします。
func FormatTimestamp(t time.Time) string {
	return strings.ToLower(t.Format(DisplayTimestampLayout))
}

// FormatDay は日付を "01.08.2020" の形式にします。
func FormatDay(d model.Day) string {
	return d.Time(time.UTC).Format(DisplayDayLayout)
}

// FormatDuration は間隔を "6d, 19hr, and 0min" の形式にします（端数は切り捨て）。
func FormatDuration(d time.Duration) string {
	days := int64(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int64(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%dd, %dhr, and %dmin", days, hours, minutes)
}

// FormatGap は間隔とその両端を表示用の文字列にします。
func FormatGap(g *Gap) string {
	if g == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%s  (%s - %s)", FormatDuration(g.Duration), FormatTimestamp(g.Start), FormatTimestamp(g.End))
}

// String はピーク日を "2 on 01.01.2020" の形式にします。
func (p *DayPeak) String() string {
	if p == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%d on %s", p.Count, FormatDay(p.Day))
}

// String はピーク週を "3 beginning (01.01.2020 10:00am)" の形式にします。
func (p *WeekPeak) String() string {
	if p == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%d beginning (%s)", p.Count, FormatTimestamp(p.Start))
}

// FormatPercent は割合を小数点以下最大1桁のパーセント表記にします（0.6667 → "66.7"）。
// 丸めはFormatAverageと同じく偶数丸めです（0.0625 → "6.2"）。
func FormatPercent(ratio float64) string {
	s := strconv.FormatFloat(ratio*100, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// FormatAverage は平均値を小数点以下2〜3桁で表記します（1.5 → "1.50", 0.0082 → "0.008"）。
func FormatAverage(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	return strings.TrimSuffix(s, "0")
}
