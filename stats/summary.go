package stats

import (
	"errors"
	"time"

	"github.com/stsysd/eventgrapher/model"
	"github.com/stsysd/eventgrapher/store"
)

// CategoryStat はカテゴリごとの件数と全体に対する割合です。
type CategoryStat struct {
	Category model.Category `json:"category"`
	Count    int            `json:"count"`
	Ratio    float64        `json:"ratio"`
}

// Summary はイベント列から一度だけ計算される派生統計の集合です。
// 計算後は読み取り専用として扱います。
type Summary struct {
	Year              int                                  `json:"year"`
	DaysInYear        int                                  `json:"days_in_year"`
	Total             int                                  `json:"total"`
	Categories        []CategoryStat                       `json:"categories"`
	DailyAverage      float64                              `json:"daily_average"`
	WeeklyAverage     float64                              `json:"weekly_average"`
	LongestGap        *Gap                                 `json:"longest_gap"`
	ShortestGap       *Gap                                 `json:"shortest_gap"`
	PeakDay           *DayPeak                             `json:"peak_day"`
	PeakWeek          *WeekPeak                            `json:"peak_week"`
	Daily             map[model.Day]int                    `json:"daily"`
	DailyByCategory   map[model.Category]map[model.Day]int `json:"daily_by_category"`
	WeekHour          WeekHourTable                        `json:"week_hour"`
	Weekday           WeekdayTable                         `json:"weekday"`
	WeekdayByCategory map[model.Category]WeekdayTable      `json:"weekday_by_category"`
}

// Compute はイベントストアから派生統計を計算します。
// 間隔やピークが計算できない場合、該当フィールドはnilになります。
func Compute(s store.EventStore, year *model.Year) *Summary {
	events := s.All()
	total := len(events)

	sum := &Summary{
		Year:              year.Int(),
		DaysInYear:        year.Len(),
		Total:             total,
		DailyAverage:      float64(total) / float64(year.Len()),
		WeeklyAverage:     float64(total) / (float64(year.Len()) / 7),
		Daily:             DailyCounts(events, year),
		DailyByCategory:   make(map[model.Category]map[model.Day]int),
		WeekHour:          WeeklyHourCounts(events),
		Weekday:           WeekdayCounts(events),
		WeekdayByCategory: WeekdayCategoryCounts(events),
	}

	for _, c := range model.Categories() {
		n := s.Count(c)
		sum.Categories = append(sum.Categories, CategoryStat{
			Category: c,
			Count:    n,
			Ratio:    Ratio(n, total),
		})
		sum.DailyByCategory[c] = DailyCounts(s.ByCategory(c), year)
	}

	if g, err := LongestGap(events); err == nil {
		sum.LongestGap = &g
	}
	if g, err := ShortestGap(events); err == nil {
		sum.ShortestGap = &g
	}
	if p, err := PeakDay(events); err == nil {
		sum.PeakDay = &p
	}
	if p, err := PeakWeek(events); err == nil {
		sum.PeakWeek = &p
	}

	return sum
}

// Category は指定カテゴリの統計を返します。
func (s *Summary) Category(c model.Category) CategoryStat {
	for _, stat := range s.Categories {
		if stat.Category == c {
			return stat
		}
	}
	return CategoryStat{Category: c}
}

// DayCount は指定日の件数を返します。
func (s *Summary) DayCount(d model.Day) int {
	return s.Daily[d]
}

// HasCategoryOn は指定日に指定カテゴリのイベントがあるかを返します。
func (s *Summary) HasCategoryOn(c model.Category, d model.Day) bool {
	return s.DailyByCategory[c][d] > 0
}

// ResolveYear は集計対象の年を決定します。
// configuredが正の値ならそれを使い、0なら最初のイベントの年、イベントがなければ now の年を使います。
func ResolveYear(s store.EventStore, configured int, now time.Time) (*model.Year, error) {
	if configured < 0 {
		return nil, errors.New("year must not be negative")
	}
	if configured > 0 {
		return model.NewYear(configured)
	}
	if events := s.All(); len(events) > 0 {
		return model.NewYear(events[0].Timestamp.Year())
	}
	return model.NewYear(now.Year())
}
