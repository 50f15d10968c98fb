package stats

import (
	"time"

	"github.com/stsysd/eventgrapher/model"
)

// Gap は連続する2イベント間の間隔です。
type Gap struct {
	Duration time.Duration `json:"duration"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
}

// DayPeak は最もイベントの多かった日です。
type DayPeak struct {
	Count int       `json:"count"`
	Day   model.Day `json:"day"`
}

// WeekPeak は最もイベントの多かった7日間の窓です。
type WeekPeak struct {
	Count int       `json:"count"`
	Start time.Time `json:"start"`
}

// LongestGap は時系列順に並んだイベント列の連続する全ペアを走査し、最長の間隔を返します。
// 同じ長さの場合は先に見つかったものを採用します。2件未満の場合は model.ErrInsufficientData を返します。
func LongestGap(events []model.Event) (Gap, error) {
	return scanGaps(events, func(candidate, best time.Duration) bool {
		return candidate > best
	})
}

// ShortestGap は連続する全ペアのうち最短の間隔を返します。
func ShortestGap(events []model.Event) (Gap, error) {
	return scanGaps(events, func(candidate, best time.Duration) bool {
		return candidate < best
	})
}

// scanGaps は最初のペアを初期値として、better が真になるペアで置き換えながら走査します。
func scanGaps(events []model.Event, better func(candidate, best time.Duration) bool) (Gap, error) {
	if len(events) < 2 {
		return Gap{}, model.ErrInsufficientData
	}

	best := gapBetween(events[0], events[1])
	for i := 1; i < len(events)-1; i++ {
		candidate := gapBetween(events[i], events[i+1])
		if better(candidate.Duration, best.Duration) {
			best = candidate
		}
	}
	return best, nil
}

func gapBetween(a, b model.Event) Gap {
	return Gap{
		Duration: b.Timestamp.Sub(a.Timestamp),
		Start:    a.Timestamp,
		End:      b.Timestamp,
	}
}

// PeakDay は同じ日に最も多くのイベントがあった日を返します。
// 前から走査して最初に見つかった最大値を採用します。
func PeakDay(events []model.Event) (DayPeak, error) {
	if len(events) == 0 {
		return DayPeak{}, model.ErrInsufficientData
	}

	perDay := make(map[model.Day]int)
	for _, e := range events {
		perDay[e.Day()]++
	}

	var peak DayPeak
	for _, e := range events {
		d := e.Day()
		if n := perDay[d]; n > peak.Count {
			peak = DayPeak{Count: n, Day: d}
		}
	}
	return peak, nil
}

// PeakWeek は各イベントを窓の開始点として [start, start+7日) に含まれるイベント数を数え、
// 最大の窓を返します。同数の場合は先に見つかった窓を採用します。
func PeakWeek(events []model.Event) (WeekPeak, error) {
	if len(events) == 0 {
		return WeekPeak{}, model.ErrInsufficientData
	}

	var peak WeekPeak
	for _, start := range events {
		end := start.Timestamp.AddDate(0, 0, 7)
		count := 0
		for _, e := range events {
			if !e.Timestamp.Before(start.Timestamp) && e.Timestamp.Before(end) {
				count++
			}
		}
		if count > peak.Count {
			peak = WeekPeak{Count: count, Start: start.Timestamp}
		}
	}
	return peak, nil
}
