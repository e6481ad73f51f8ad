package todos

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/devdesign-studio/internal/keys"
	"github.com/nhle/devdesign-studio/internal/logging"
	"github.com/nhle/devdesign-studio/internal/model"
	"github.com/nhle/devdesign-studio/internal/nav"
	"github.com/nhle/devdesign-studio/internal/tracker"
	"github.com/nhle/devdesign-studio/internal/ui/todoform"
	"github.com/nhle/devdesign-studio/tests/testutil"
)

func newModel(t *testing.T) (Model, *tracker.Tracker) {
	t.Helper()
	tr := tracker.New(testutil.NewTestStore(t), tracker.WithLogger(logging.Discard()))
	p, ok := tr.CreateProject(context.Background(), "Acme", "", "")
	require.True(t, ok)
	require.True(t, tr.Select(p.ID))
	tr.Navigate(func(s nav.State) nav.State { return s.Section(nav.ScreenTodos).SelectDate("2024-05-01") })

	m := New(tr, keys.DefaultKeyMap(), 120, 60)
	m.today = func() string { return "2024-05-03" }
	return m, tr
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func selected(t *testing.T, tr *tracker.Tracker) model.Project {
	t.Helper()
	p, ok := tr.Selected()
	require.True(t, ok)
	return p
}

func TestToggleTodoUnderCursor(t *testing.T) {
	m, tr := newModel(t)

	m, _ = m.Update(keyPress("j"))
	m.Update(keyPress("x"))

	p := selected(t, tr)
	assert.False(t, p.Todos[0].Checked)
	assert.True(t, p.Todos[1].Checked)
}

func TestRequiredTodoCannotBeDeleted(t *testing.T) {
	m, tr := newModel(t)

	m, _ = m.Update(keyPress("d"))

	assert.Len(t, selected(t, tr).Todos, len(model.SeedTodos()))
	assert.Equal(t, "Required to-dos cannot be deleted", m.statusMsg)
	assert.Contains(t, m.View(), "Required to-dos cannot be deleted")
}

func TestCreatedTodoIsAddedAndDeletable(t *testing.T) {
	m, tr := newModel(t)

	m, _ = m.Update(todoform.TodoCreatedMsg{Text: "Send invoice", Date: "2024-05-01", Time: "10:00"})
	assert.False(t, m.Editing())
	todos := selected(t, tr).Todos
	require.Len(t, todos, 4)
	assert.Equal(t, "Send invoice", todos[3].Text)

	m.cursor = 3
	m, _ = m.Update(keyPress("d"))
	assert.Len(t, selected(t, tr).Todos, 3)
	assert.Equal(t, "To-do deleted", m.statusMsg)
	assert.Equal(t, 2, m.cursor)
}

func TestNewOpensFormWithCalendarDate(t *testing.T) {
	m, tr := newModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, nav.TodoViewCalendar, tr.Nav().TodoView)

	m, _ = m.Update(keyPress("n"))
	assert.True(t, m.Editing())
	assert.Contains(t, m.View(), "New To-Do")

	m, _ = m.Update(todoform.TodoFormCancelMsg{})
	assert.False(t, m.Editing())
}

func TestCalendarDateNavigation(t *testing.T) {
	m, tr := newModel(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

	m, _ = m.Update(keyPress("l"))
	assert.Equal(t, "2024-05-02", tr.Nav().CalendarDate)

	m, _ = m.Update(keyPress("h"))
	m, _ = m.Update(keyPress("h"))
	assert.Equal(t, "2024-04-30", tr.Nav().CalendarDate)

	m, _ = m.Update(keyPress("]"))
	assert.Equal(t, "2024-05-07", tr.Nav().CalendarDate)

	m, _ = m.Update(keyPress("["))
	assert.Equal(t, "2024-04-30", tr.Nav().CalendarDate)

	m.Update(keyPress("t"))
	assert.Equal(t, "2024-05-03", tr.Nav().CalendarDate)
}

func TestDayKeysIgnoredInListView(t *testing.T) {
	m, tr := newModel(t)
	m.Update(keyPress("l"))
	assert.Equal(t, "2024-05-01", tr.Nav().CalendarDate)
}

func TestCalendarListsOnlySelectedDay(t *testing.T) {
	m, tr := newModel(t)
	ctx := context.Background()
	_, ok := tr.AddTodo(ctx, "Kickoff", "2024-05-01", "")
	require.True(t, ok)
	_, ok = tr.AddTodo(ctx, "Launch", "2024-05-02", "09:00")
	require.True(t, ok)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, todos, ok := m.visible()
	require.True(t, ok)
	require.Len(t, todos, 1)
	assert.Equal(t, "Kickoff", todos[0].Text)

	view := m.View()
	assert.Contains(t, view, "Mai 2024")
	assert.Contains(t, view, "Mittwoch, 01. Mai 2024")
	assert.Contains(t, view, "Kickoff")
	assert.NotContains(t, view, "Launch")
}

func TestShiftDate(t *testing.T) {
	assert.Equal(t, "2024-03-01", shiftDate("2024-02-29", 1, "2024-01-01"))
	assert.Equal(t, "2023-12-31", shiftDate("2024-01-01", -1, "2024-01-01"))
	assert.Equal(t, "2024-01-08", shiftDate("", 7, "2024-01-01"))
}
