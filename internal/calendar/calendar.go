// Package calendar derives the dated views of a project's todos.
package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nhle/devdesign-studio/internal/model"
)

// DateLayout is the ISO calendar date used by todos.
const DateLayout = "2006-01-02"

// TimeLayout is the 24-hour time of day used by todos.
const TimeLayout = "15:04"

var weekdays = [...]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"}

var months = [...]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"}

// GroupTodosByDate buckets the project's dated todos by date. Within a day,
// todos are ordered by time of day with untimed todos last; ties keep their
// original order. Undated todos appear in no bucket.
func GroupTodosByDate(p model.Project) map[string][]model.Todo {
	byDate := make(map[string][]model.Todo)
	for _, t := range p.Todos {
		if t.Date == "" {
			continue
		}
		byDate[t.Date] = append(byDate[t.Date], t)
	}
	for _, day := range byDate {
		sort.SliceStable(day, func(i, j int) bool {
			return timeLess(day[i].Time, day[j].Time)
		})
	}
	return byDate
}

// TodosOn returns the todos scheduled for date, in display order.
func TodosOn(p model.Project, date string) []model.Todo {
	return GroupTodosByDate(p)[date]
}

func timeLess(a, b string) bool {
	switch {
	case a == "" && b == "":
		return false
	case a == "":
		return false
	case b == "":
		return true
	}
	return NormalizeTime(a) < NormalizeTime(b)
}

// NormalizeTime zero-pads a parseable time of day ("9:00" becomes "09:00").
// Anything else is returned trimmed but otherwise unchanged.
func NormalizeTime(s string) string {
	s = strings.TrimSpace(s)
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return s
	}
	return t.Format(TimeLayout)
}

// MonthDays returns the month grid for year/month: one empty placeholder
// per weekday before the 1st (weeks start on Sunday), then one YYYY-MM-DD
// entry per day.
func MonthDays(year int, month time.Month) []string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := int(first.Weekday())

	days := make([]string, offset, offset+daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		days = append(days, fmt.Sprintf("%04d-%02d-%02d", year, int(month), d))
	}
	return days
}

// ParseYearMonth parses "YYYY-MM".
func ParseYearMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, use YYYY-MM", s)
	}
	return t.Year(), t.Month(), nil
}

// Formatted is a display form of a calendar date.
type Formatted struct {
	Weekday string
	Date    string
}

// FormatDate renders an ISO date as a German weekday name and
// "DD. Mon YYYY". It reports false for an empty or unparseable date.
func FormatDate(date string) (Formatted, bool) {
	if date == "" {
		return Formatted{}, false
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return Formatted{}, false
	}
	return Formatted{
		Weekday: weekdays[t.Weekday()],
		Date:    fmt.Sprintf("%02d. %s %d", t.Day(), months[t.Month()-1], t.Year()),
	}, true
}

// MonthTitle renders "Mai 2024" style headings.
func MonthTitle(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", longMonths[month-1], year)
}

var longMonths = [...]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// Today returns the current local date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}
