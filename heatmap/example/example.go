// Package main demonstrates the use of the heatmap package to render a dashboard from generated events.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/stsysd/eventgrapher/heatmap"
	"github.com/stsysd/eventgrapher/model"
	"github.com/stsysd/eventgrapher/parser"
	"github.com/stsysd/eventgrapher/stats"
	"github.com/stsysd/eventgrapher/store"
)

func main() {
	// Generate sample log lines for one year
	lines := generateYearLines(2020)

	col := store.Build(lines, parser.New(time.UTC))
	year, err := model.NewYear(2020)
	if err != nil {
		log.Fatal(err)
	}

	// Create SVG dashboard
	svg := heatmap.GenerateDashboardSVG(stats.Compute(col, year), nil)

	// Output to stdout
	fmt.Println(svg)
}

// generateYearLines creates random event lines in the input file format
func generateYearLines(year int) []string {
	codes := []string{"1", "12", "123"}
	var lines []string

	current := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for current.Year() == year {
		// Higher probability of activity on weekends
		var count int
		if current.Weekday() == time.Saturday || current.Weekday() == time.Sunday {
			count = rand.Intn(4) // 0-3
		} else {
			count = rand.Intn(2) // 0-1
		}

		// Add occasional spikes of activity
		if rand.Intn(30) == 0 {
			count += rand.Intn(5)
		}

		for range count {
			ts := current.Add(time.Duration(rand.Intn(24*60)) * time.Minute)
			lines = append(lines, fmt.Sprintf("%s,%s", ts.Format(parser.TimestampLayout), codes[rand.Intn(len(codes))]))
		}

		current = current.AddDate(0, 0, 1)
	}

	return lines
}
