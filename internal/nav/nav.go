// Package nav holds the screen navigation state. A State is a value: every
// transition returns a new State and leaves the receiver untouched.
package nav

import "github.com/nhle/devdesign-studio/internal/model"

// Screen is one level of the navigation hierarchy.
type Screen int

const (
	ScreenProjects Screen = iota
	ScreenSections
	ScreenChecklist
	ScreenTodos
)

func (s Screen) String() string {
	switch s {
	case ScreenProjects:
		return "projects"
	case ScreenSections:
		return "sections"
	case ScreenChecklist:
		return "checklist"
	case ScreenTodos:
		return "todos"
	default:
		return "unknown"
	}
}

// TodoView selects between the plain list and the month calendar.
type TodoView int

const (
	TodoViewList TodoView = iota
	TodoViewCalendar
)

// State is the complete navigation state of a session.
type State struct {
	Screen    Screen
	ProjectID model.ID
	TodoView  TodoView

	GuidelinesOpen bool
	WorkflowOpen   bool

	// CalendarDate is the day whose todos the calendar lists.
	CalendarDate string
}

// Initial returns the start state: the project list with both checklist
// sections expanded.
func Initial(today string) State {
	return State{
		Screen:         ScreenProjects,
		TodoView:       TodoViewList,
		GuidelinesOpen: true,
		WorkflowOpen:   true,
		CalendarDate:   today,
	}
}

// HasSelection reports whether a project is selected.
func (s State) HasSelection() bool {
	return s.ProjectID != ""
}

// Open selects a project and moves to the section chooser.
func (s State) Open(id model.ID) State {
	s.ProjectID = id
	s.Screen = ScreenSections
	return s
}

// Section moves from the section chooser to a detail screen. Any other
// target, or a call without a selection, leaves the state unchanged.
func (s State) Section(target Screen) State {
	if !s.HasSelection() {
		return s
	}
	if target != ScreenChecklist && target != ScreenTodos {
		return s
	}
	s.Screen = target
	return s
}

// Back moves exactly one level up. The project list is the top.
func (s State) Back() State {
	switch s.Screen {
	case ScreenChecklist, ScreenTodos:
		s.Screen = ScreenSections
	case ScreenSections:
		s.Screen = ScreenProjects
	}
	return s
}

// Reset returns to the project list and clears the selection.
func (s State) Reset() State {
	s.Screen = ScreenProjects
	s.ProjectID = ""
	return s
}

// SetTodoView switches the todos sub-view.
func (s State) SetTodoView(v TodoView) State {
	s.TodoView = v
	return s
}

// ToggleTodoView flips between list and calendar.
func (s State) ToggleTodoView() State {
	if s.TodoView == TodoViewList {
		s.TodoView = TodoViewCalendar
	} else {
		s.TodoView = TodoViewList
	}
	return s
}

// ToggleGuidelines collapses or expands the guidelines section.
func (s State) ToggleGuidelines() State {
	s.GuidelinesOpen = !s.GuidelinesOpen
	return s
}

// ToggleWorkflow collapses or expands the workflow section.
func (s State) ToggleWorkflow() State {
	s.WorkflowOpen = !s.WorkflowOpen
	return s
}

// SelectDate picks the calendar day whose todos are listed.
func (s State) SelectDate(date string) State {
	s.CalendarDate = date
	return s
}
