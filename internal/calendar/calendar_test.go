package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/devdesign-studio/internal/model"
)

func TestGroupTodosByDate(t *testing.T) {
	p := model.Project{Todos: []model.Todo{
		{ID: "1", Text: "undated"},
		{ID: "2", Text: "late", Date: "2024-05-01", Time: "14:00"},
		{ID: "3", Text: "untimed-a", Date: "2024-05-01"},
		{ID: "4", Text: "early", Date: "2024-05-01", Time: "09:00"},
		{ID: "5", Text: "untimed-b", Date: "2024-05-01"},
		{ID: "6", Text: "other day", Date: "2024-05-02", Time: "08:00"},
	}}

	got := GroupTodosByDate(p)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"early", "late", "untimed-a", "untimed-b"}, texts(got["2024-05-01"]))
	assert.Equal(t, []string{"other day"}, texts(got["2024-05-02"]))

	for _, day := range got {
		for _, td := range day {
			assert.NotEqual(t, model.ID("1"), td.ID, "undated todo must not be bucketed")
		}
	}
}

func TestGroupTodosByDateDoesNotReorderProject(t *testing.T) {
	p := model.Project{Todos: []model.Todo{
		{ID: "a", Date: "2024-05-01", Time: "14:00"},
		{ID: "b", Date: "2024-05-01", Time: "09:00"},
	}}
	_ = GroupTodosByDate(p)
	assert.Equal(t, model.ID("a"), p.Todos[0].ID)
}

func TestGroupTodosByDateUnpaddedTime(t *testing.T) {
	p := model.Project{Todos: []model.Todo{
		{ID: "1", Text: "Launch", Date: "2024-05-01", Time: "14:00"},
		{ID: "2", Text: "Kickoff", Date: "2024-05-01", Time: "9:00"},
	}}
	assert.Equal(t, []string{"Kickoff", "Launch"}, texts(GroupTodosByDate(p)["2024-05-01"]))
}

func TestNormalizeTime(t *testing.T) {
	assert.Equal(t, "09:00", NormalizeTime("9:00"))
	assert.Equal(t, "14:30", NormalizeTime(" 14:30 "))
	assert.Equal(t, "", NormalizeTime(""))
	assert.Equal(t, "abends", NormalizeTime("abends"))
}

func TestTodosOn(t *testing.T) {
	p := model.Project{Todos: []model.Todo{{ID: "a", Text: "x", Date: "2024-05-01"}}}
	assert.Len(t, TodosOn(p, "2024-05-01"), 1)
	assert.Empty(t, TodosOn(p, "2024-05-02"))
}

func TestMonthDays(t *testing.T) {
	// 1 May 2024 is a Wednesday.
	days := MonthDays(2024, time.May)
	require.Len(t, days, 3+31)
	assert.Equal(t, []string{"", "", ""}, days[:3])
	assert.Equal(t, "2024-05-01", days[3])
	assert.Equal(t, "2024-05-31", days[len(days)-1])

	// 1 September 2024 is a Sunday.
	days = MonthDays(2024, time.September)
	assert.Equal(t, "2024-09-01", days[0])
	assert.Len(t, days, 30)

	// Leap year February.
	days = MonthDays(2024, time.February)
	assert.Equal(t, "2024-02-29", days[len(days)-1])
}

func TestFormatDate(t *testing.T) {
	f, ok := FormatDate("2024-05-01")
	require.True(t, ok)
	assert.Equal(t, "Mittwoch", f.Weekday)
	assert.Equal(t, "01. Mai 2024", f.Date)

	f, ok = FormatDate("2024-03-17")
	require.True(t, ok)
	assert.Equal(t, "Sonntag", f.Weekday)
	assert.Equal(t, "17. Mär 2024", f.Date)

	_, ok = FormatDate("")
	assert.False(t, ok)
	_, ok = FormatDate("05/01/2024")
	assert.False(t, ok)
}

func TestParseYearMonth(t *testing.T) {
	y, m, err := ParseYearMonth("2024-05")
	require.NoError(t, err)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.May, m)

	_, _, err = ParseYearMonth("May 2024")
	assert.Error(t, err)
}

func TestMonthTitle(t *testing.T) {
	assert.Equal(t, "März 2025", MonthTitle(2025, time.March))
}

func texts(todos []model.Todo) []string {
	out := make([]string, len(todos))
	for i, td := range todos {
		out[i] = td.Text
	}
	return out
}
