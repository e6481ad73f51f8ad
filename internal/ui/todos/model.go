// Package todos renders the todo list and month calendar of the selected
// project.
package todos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/devdesign-studio/internal/calendar"
	"github.com/nhle/devdesign-studio/internal/keys"
	"github.com/nhle/devdesign-studio/internal/model"
	"github.com/nhle/devdesign-studio/internal/nav"
	"github.com/nhle/devdesign-studio/internal/theme"
	"github.com/nhle/devdesign-studio/internal/tracker"
	"github.com/nhle/devdesign-studio/internal/ui/todoform"
)

var weekdayHeader = []string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}

// Model is the todos screen with its list and calendar sub-views.
type Model struct {
	tracker   *tracker.Tracker
	keys      *keys.KeyMap
	form      todoform.Model
	creating  bool
	cursor    int
	statusMsg string
	today     func() string
	width     int
	height    int
}

// New creates the todos screen.
func New(t *tracker.Tracker, k *keys.KeyMap, width, height int) Model {
	return Model{
		tracker: t,
		keys:    k,
		form:    todoform.New(width, height),
		today:   calendar.Today,
		width:   width,
		height:  height,
	}
}

// Editing reports whether the new todo form is open.
func (m Model) Editing() bool {
	return m.creating
}

// visible returns the todos the cursor moves over: every todo in the list
// view, or the selected day's todos in the calendar view.
func (m Model) visible() (model.Project, []model.Todo, bool) {
	p, ok := m.tracker.Selected()
	if !ok {
		return model.Project{}, nil, false
	}
	state := m.tracker.Nav()
	if state.TodoView == nav.TodoViewCalendar {
		return p, calendar.TodosOn(p, state.CalendarDate), true
	}
	return p, p.Todos, true
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case todoform.TodoCreatedMsg:
		m.creating = false
		if _, ok := m.tracker.AddTodo(context.Background(), msg.Text, msg.Date, msg.Time); ok {
			m.statusMsg = "To-do added"
		}
		return m, nil

	case todoform.TodoFormCancelMsg:
		m.creating = false
		return m, nil
	}

	if m.creating {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	return m.handleKey(keyMsg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	_, todos, ok := m.visible()
	if !ok {
		return m, nil
	}
	state := m.tracker.Nav()
	inCalendar := state.TodoView == nav.TodoViewCalendar
	m.statusMsg = ""

	switch {
	case key.Matches(msg, m.keys.SwitchView):
		m.tracker.Navigate(func(s nav.State) nav.State { return s.ToggleTodoView() })
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if len(todos) > 0 {
			m.cursor = (m.cursor + 1) % len(todos)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if len(todos) > 0 {
			m.cursor = (m.cursor + len(todos) - 1) % len(todos)
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		date := ""
		if inCalendar {
			date = state.CalendarDate
		}
		m.creating = true
		m.form.SetSize(m.width, m.height)
		return m, m.form.StartCreate(date)

	case key.Matches(msg, m.keys.Toggle):
		if t, ok := at(todos, m.cursor); ok {
			m.tracker.ToggleItem(context.Background(), model.CollectionTodos, t.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		t, ok := at(todos, m.cursor)
		if !ok {
			return m, nil
		}
		if !t.Deletable() {
			m.statusMsg = "Required to-dos cannot be deleted"
			return m, nil
		}
		if m.tracker.DeleteTodo(context.Background(), t.ID) {
			m.statusMsg = "To-do deleted"
			m.cursor = max(min(m.cursor, len(todos)-2), 0)
		}
		return m, nil
	}

	if inCalendar {
		m.moveDate(msg, state.CalendarDate)
	}
	return m, nil
}

func (m *Model) moveDate(msg tea.KeyMsg, current string) {
	days := 0
	switch {
	case key.Matches(msg, m.keys.Left):
		days = -1
	case key.Matches(msg, m.keys.Right):
		days = 1
	case key.Matches(msg, m.keys.PrevWeek):
		days = -7
	case key.Matches(msg, m.keys.NextWeek):
		days = 7
	case key.Matches(msg, m.keys.Today):
		today := m.today()
		m.tracker.Navigate(func(s nav.State) nav.State { return s.SelectDate(today) })
		m.cursor = 0
		return
	default:
		return
	}
	next := shiftDate(current, days, m.today())
	m.tracker.Navigate(func(s nav.State) nav.State { return s.SelectDate(next) })
	m.cursor = 0
}

// shiftDate moves an ISO date by days. An unparseable date starts from
// fallback.
func shiftDate(date string, days int, fallback string) string {
	t, err := time.Parse(calendar.DateLayout, date)
	if err != nil {
		t, err = time.Parse(calendar.DateLayout, fallback)
		if err != nil {
			return fallback
		}
	}
	return t.AddDate(0, 0, days).Format(calendar.DateLayout)
}

func at(todos []model.Todo, i int) (model.Todo, bool) {
	if i < 0 || i >= len(todos) {
		return model.Todo{}, false
	}
	return todos[i], true
}

// View renders the active sub-view.
func (m Model) View() string {
	if m.creating {
		return m.form.View()
	}
	p, todos, ok := m.visible()
	if !ok {
		return ""
	}
	state := m.tracker.Nav()

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d/%d)  %s\n\n",
		theme.HeadingStyle.Render("To-Dos"),
		model.CountTodosChecked(p.Todos), len(p.Todos),
		theme.ProgressBar(model.TodoProgress(p.Todos), 12))

	if state.TodoView == nav.TodoViewCalendar {
		b.WriteString(m.viewMonth(p, state.CalendarDate))
		b.WriteString("\n")
		b.WriteString(dayHeading(state.CalendarDate))
		b.WriteString("\n")
	}

	if len(todos) == 0 {
		b.WriteString(theme.DimmedStyle.Italic(true).Render("No to-dos. Press 'n' to add one."))
		b.WriteString("\n")
	}
	for i, t := range todos {
		line := todoLine(t, state.TodoView == nav.TodoViewCalendar)
		if i == m.cursor {
			b.WriteString(theme.SelectedItemStyle.Render(line))
		} else {
			b.WriteString(theme.ListItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.StatusMsgStyle.Render(m.statusMsg))
	}

	hints := "x check | n new | d delete | tab calendar | esc back"
	if state.TodoView == nav.TodoViewCalendar {
		hints = "←/→ day | [/] week | t today | x check | n new | d delete | tab list"
	}
	b.WriteString("\n\n")
	b.WriteString(theme.HelpStyle.Render(hints))

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height).Render(b.String())
}

func todoLine(t model.Todo, inCalendar bool) string {
	var parts []string
	parts = append(parts, theme.Checkbox(t.Checked), t.Text)
	when := t.Time
	if !inCalendar && t.Date != "" {
		if f, ok := calendar.FormatDate(t.Date); ok {
			when = strings.TrimSpace(f.Date + " " + t.Time)
		}
	}
	if when != "" {
		parts = append(parts, theme.DueDateStyle.Render(when))
	}
	if t.Required {
		parts = append(parts, theme.RequiredBadgeStyle.Render("Pflicht"))
	}
	return strings.Join(parts, "  ")
}

func dayHeading(date string) string {
	f, ok := calendar.FormatDate(date)
	if !ok {
		return ""
	}
	return theme.HeadingStyle.Render(f.Weekday + ", " + f.Date)
}

// viewMonth renders the month grid around the selected date. Days with
// todos carry a dot.
func (m Model) viewMonth(p model.Project, selected string) string {
	t, err := time.Parse(calendar.DateLayout, selected)
	if err != nil {
		return ""
	}
	byDate := calendar.GroupTodosByDate(p)
	today := m.today()

	var b strings.Builder
	b.WriteString(theme.HeadingStyle.Render(calendar.MonthTitle(t.Year(), t.Month())))
	b.WriteString("\n")
	for _, d := range weekdayHeader {
		fmt.Fprintf(&b, "%-5s", d)
	}
	b.WriteString("\n")

	for i, day := range calendar.MonthDays(t.Year(), t.Month()) {
		cell := "     "
		if day != "" {
			mark := " "
			if len(byDate[day]) > 0 {
				mark = "•"
			}
			cell = fmt.Sprintf("%2s%s", strings.TrimLeft(day[8:], "0"), mark)
			switch day {
			case selected:
				cell = theme.CalendarCursorStyle.Render(cell)
			case today:
				cell = theme.DueDateStyle.Render(cell)
			}
			cell += strings.Repeat(" ", 5-lipgloss.Width(cell))
		}
		b.WriteString(cell)
		if i%7 == 6 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.form.SetSize(width, height)
}
