package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nhle/devdesign-studio/internal/keys"
	"github.com/nhle/devdesign-studio/internal/nav"
	"github.com/nhle/devdesign-studio/internal/tracker"
	"github.com/nhle/devdesign-studio/internal/ui"
	"github.com/nhle/devdesign-studio/internal/ui/checklist"
	"github.com/nhle/devdesign-studio/internal/ui/command"
	helpview "github.com/nhle/devdesign-studio/internal/ui/help"
	"github.com/nhle/devdesign-studio/internal/ui/projectmgr"
	"github.com/nhle/devdesign-studio/internal/ui/sections"
	"github.com/nhle/devdesign-studio/internal/ui/todos"
)

// Overlay is a view drawn on top of the current screen.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayHelp
	OverlayCommand
)

// Options configures the root model.
type Options struct {
	// ExportDir is where the export command writes backups.
	ExportDir string
	Logger    *log.Logger
}

// Model is the root Bubble Tea model. The screen comes from the tracker's
// navigation state; the model only owns overlays and the status line.
type Model struct {
	overlay       Overlay
	layout        ui.Layout
	tracker       *tracker.Tracker
	keys          *keys.KeyMap
	exportDir     string
	logger        *log.Logger
	projectView   projectmgr.Model
	sectionView   sections.Model
	checklistView checklist.Model
	todoView      todos.Model
	helpView      helpview.Model
	commandView   command.Model
	status        string
	ready         bool
}

// New creates a new root application model on top of t.
func New(t *tracker.Tracker, opts Options) Model {
	k := keys.DefaultKeyMap()
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		tracker:       t,
		keys:          k,
		exportDir:     opts.ExportDir,
		logger:        logger,
		projectView:   projectmgr.New(t, k, 80, 24),
		sectionView:   sections.New(t, k, 80, 24),
		checklistView: checklist.New(t, k, 80, 24),
		todoView:      todos.New(t, k, 80, 24),
		helpView:      helpview.New(k, 80, 24),
		commandView:   command.New(80, 24),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.projectView.Init()
}

// Screen returns the screen the tracker currently shows.
func (m Model) Screen() nav.Screen {
	return m.tracker.Nav().Screen
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
		m.projectView.SetSize(w, h)
		m.sectionView.SetSize(w, h)
		m.checklistView.SetSize(w, h)
		m.todoView.SetSize(w, h)
		m.helpView.SetSize(w, h)
		m.commandView.SetSize(w, h)
		// Forward to the active screen so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case projectmgr.OpenMsg:
		m.status = ""
		m.sectionView = sections.New(m.tracker, m.keys, m.layout.ContentWidth(), m.layout.ContentHeight())
		return m, nil

	case sections.SectionMsg:
		w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
		switch msg.Screen {
		case nav.ScreenChecklist:
			m.checklistView = checklist.New(m.tracker, m.keys, w, h)
		case nav.ScreenTodos:
			m.todoView = todos.New(m.tracker, m.keys, w, h)
		}
		return m, nil

	case command.CommandMsg:
		m.overlay = OverlayNone
		m.commandView.Blur()
		return m, m.executeCommand(msg)

	case command.CancelMsg:
		m.overlay = OverlayNone
		m.commandView.Blur()
		return m, nil

	case commandResultMsg:
		m.status = msg.status
		if msg.refresh {
			return m.updateActiveView(projectmgr.ProjectChangedMsg{Status: msg.status})
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.editing() {
			break
		}
		if m.overlay == OverlayCommand {
			var cmd tea.Cmd
			m.commandView, cmd = m.commandView.Update(msg)
			return m, cmd
		}
		if m.overlay == OverlayHelp {
			if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) {
				m.overlay = OverlayNone
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.overlay = OverlayHelp
			return m, nil

		case key.Matches(msg, m.keys.Command):
			m.overlay = OverlayCommand
			return m, m.commandView.Focus()

		case key.Matches(msg, m.keys.Back):
			if m.Screen() != nav.ScreenProjects {
				m.status = ""
				m.tracker.Navigate(func(s nav.State) nav.State { return s.Back() })
				return m, nil
			}
		}
	}

	return m.updateActiveView(msg)
}

// editing reports whether a form on the current screen owns the keyboard.
func (m Model) editing() bool {
	switch m.Screen() {
	case nav.ScreenProjects:
		return m.projectView.Editing()
	case nav.ScreenTodos:
		return m.todoView.Editing()
	}
	return false
}

// updateActiveView dispatches the message to the current screen.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.Screen() {
	case nav.ScreenProjects:
		m.projectView, cmd = m.projectView.Update(msg)
	case nav.ScreenSections:
		m.sectionView, cmd = m.sectionView.Update(msg)
	case nav.ScreenChecklist:
		m.checklistView, cmd = m.checklistView.Update(msg)
	case nav.ScreenTodos:
		m.todoView, cmd = m.todoView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader(m.breadcrumb(), m.summary())
	statusBar := m.layout.RenderStatusBar(m.keyHints())
	return m.layout.RenderWithFrame(header, m.renderContent(), statusBar)
}

// renderContent returns the overlay if one is open, else the screen.
func (m Model) renderContent() string {
	switch m.overlay {
	case OverlayHelp:
		return m.helpView.View()
	case OverlayCommand:
		return m.commandView.View()
	}

	switch m.Screen() {
	case nav.ScreenProjects:
		return m.projectView.View()
	case nav.ScreenSections:
		return m.sectionView.View()
	case nav.ScreenChecklist:
		return m.checklistView.View()
	case nav.ScreenTodos:
		return m.todoView.View()
	default:
		return ""
	}
}

func (m Model) breadcrumb() string {
	parts := []string{"DevDesign Studio"}
	state := m.tracker.Nav()
	if state.Screen == nav.ScreenProjects {
		return ui.Breadcrumb(parts...)
	}
	if p, ok := m.tracker.Selected(); ok {
		parts = append(parts, p.Name)
	}
	switch state.Screen {
	case nav.ScreenChecklist:
		parts = append(parts, "Guidelines & Workflow")
	case nav.ScreenTodos:
		if state.TodoView == nav.TodoViewCalendar {
			parts = append(parts, "Kalender")
		} else {
			parts = append(parts, "To-Dos")
		}
	}
	return ui.Breadcrumb(parts...)
}

func (m Model) summary() string {
	return fmt.Sprintf("%d active · %d archived", len(m.tracker.Active()), len(m.tracker.Archived()))
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.status != "" {
		return m.status
	}

	switch m.overlay {
	case OverlayHelp:
		return "? close help | esc back"
	case OverlayCommand:
		return "enter execute | esc cancel"
	}

	if m.editing() {
		return "enter submit | esc cancel"
	}

	switch m.Screen() {
	case nav.ScreenSections:
		return "enter open | esc back | ? help"
	case nav.ScreenChecklist, nav.ScreenTodos:
		return "esc back | : command | ? help"
	default:
		return "q quit | ? help | : command"
	}
}
