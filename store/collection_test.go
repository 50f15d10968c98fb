package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stsysd/eventgrapher/model"
	"github.com/stsysd/eventgrapher/parser"
)

func setupTestCollection(t *testing.T, lines []string) *Collection {
	t.Helper()
	return Build(lines, parser.New(time.UTC))
}

func TestBuild_EndToEnd(t *testing.T) {
	c := setupTestCollection(t, []string{
		"01.01.2020 10:00AM,1",
		"01.01.2020 02:00PM,1",
		"01.08.2020 09:00AM,12",
	})

	if c.Len() != 3 {
		t.Fatalf("Expected 3 events, got %d", c.Len())
	}

	expected := []model.Category{model.Solo, model.Solo, model.Shared}
	for i, e := range c.All() {
		if e.Category != expected[i] {
			t.Errorf("Event %d: expected category %v, got %v", i, expected[i], e.Category)
		}
	}
	if c.Count(model.Solo) != 2 || c.Count(model.Shared) != 1 || c.Count(model.Virtual) != 0 {
		t.Errorf("Unexpected category counts: solo=%d shared=%d virtual=%d",
			c.Count(model.Solo), c.Count(model.Shared), c.Count(model.Virtual))
	}
}

func TestBuild_SkipsInvalidLines(t *testing.T) {
	c := setupTestCollection(t, []string{
		"",
		"header line",
		"01.01.2020 10:00AM,1",
		"01.01.2020,1",
		"   ",
		"01.02.2020 10:00AM,1234",
	})

	if c.Len() != 1 {
		t.Errorf("Expected 1 event, got %d", c.Len())
	}
	if c.Skipped() != 3 {
		t.Errorf("Expected 3 skipped lines, got %d", c.Skipped())
	}
}

func TestBuild_PreservesOrderAndDuplicates(t *testing.T) {
	c := setupTestCollection(t, []string{
		"01.05.2020 10:00AM,1",
		"01.03.2020 10:00AM,123",
		"01.05.2020 10:00AM,1",
		"01.04.2020 10:00AM,1",
	})

	all := c.All()
	days := []int{5, 3, 5, 4}
	for i, e := range all {
		if e.Timestamp.Day() != days[i] {
			t.Errorf("Event %d: expected day %d, got %d", i, days[i], e.Timestamp.Day())
		}
	}

	solo := c.ByCategory(model.Solo)
	if len(solo) != 3 {
		t.Fatalf("Expected 3 solo events, got %d", len(solo))
	}
	soloDays := []int{5, 5, 4}
	for i, e := range solo {
		if e.Timestamp.Day() != soloDays[i] {
			t.Errorf("Solo event %d: expected day %d, got %d", i, soloDays[i], e.Timestamp.Day())
		}
	}
}

func TestCollection_Immutable(t *testing.T) {
	c := setupTestCollection(t, []string{"01.01.2020 10:00AM,1"})

	all := c.All()
	all[0].Category = model.Virtual
	byCat := c.ByCategory(model.Solo)
	byCat[0].Category = model.Shared

	if c.All()[0].Category != model.Solo {
		t.Error("Expected collection to be unaffected by mutation of returned slice")
	}
	if c.ByCategory(model.Solo)[0].Category != model.Solo {
		t.Error("Expected category view to be unaffected by mutation of returned slice")
	}
}

func TestNewCollection(t *testing.T) {
	events := []model.Event{
		{Timestamp: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Category: model.Virtual},
		{Timestamp: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), Category: model.Solo},
	}
	c := NewCollection(events)

	if c.Len() != 2 || c.Count(model.Virtual) != 1 || c.Count(model.Shared) != 0 {
		t.Errorf("Unexpected counts: len=%d virtual=%d shared=%d", c.Len(), c.Count(model.Virtual), c.Count(model.Shared))
	}
	if len(c.ByCategory(model.Shared)) != 0 {
		t.Error("Expected empty shared view")
	}
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("01.01.2020 10:00AM,1\r\n01.02.2020 11:00AM,12\n"), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("Failed to read lines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "01.01.2020 10:00AM,1" {
		t.Errorf("Expected carriage return to be trimmed, got %q", lines[0])
	}

	c, err := Load(path, parser.New(time.UTC))
	if err != nil {
		t.Fatalf("Failed to load collection: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Expected 2 events, got %d", c.Len())
	}
}

func TestLoad_LongLine(t *testing.T) {
	long := "01.02.2020 10:00AM,1,,,,,,,[" + strings.Repeat("x", 70000) + "]"
	junk := strings.Repeat("y", 70000)
	content := strings.Join([]string{"01.01.2020 10:00AM,1", long, junk, "01.03.2020 10:00AM,12"}, "\n") + "\n"

	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	c, err := Load(path, parser.New(time.UTC))
	if err != nil {
		t.Fatalf("Failed to load collection with a long line: %v", err)
	}
	if c.Len() != 3 {
		t.Errorf("Expected 3 events, got %d", c.Len())
	}
	// 長いだけの不正な行は棄却される
	if c.Skipped() != 1 {
		t.Errorf("Expected 1 skipped line, got %d", c.Skipped())
	}
	if labels := c.All()[1].Details.Labels; len(labels) != 1 || len(labels[0]) != 70000 {
		t.Errorf("Expected the long label to be kept")
	}
}

func TestReadLines_Missing(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, model.ErrInputNotFound) {
		t.Errorf("Expected ErrInputNotFound, got %v", err)
	}
}

func TestReadLines_Directory(t *testing.T) {
	_, err := ReadLines(t.TempDir())
	if !errors.Is(err, model.ErrInputUnreadable) {
		t.Errorf("Expected ErrInputUnreadable, got %v", err)
	}
}
