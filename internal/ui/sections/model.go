// Package sections renders the chooser between a project's checklists and
// its todos.
package sections

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/devdesign-studio/internal/keys"
	"github.com/nhle/devdesign-studio/internal/model"
	"github.com/nhle/devdesign-studio/internal/nav"
	"github.com/nhle/devdesign-studio/internal/theme"
	"github.com/nhle/devdesign-studio/internal/tracker"
)

// SectionMsg is emitted after the tracker moved to a detail screen.
type SectionMsg struct {
	Screen nav.Screen
}

type entry struct {
	screen nav.Screen
	title  string
}

var entries = []entry{
	{nav.ScreenChecklist, "Guidelines & Workflow"},
	{nav.ScreenTodos, "To-Dos"},
}

// Model is the section chooser.
type Model struct {
	tracker     *tracker.Tracker
	keys        *keys.KeyMap
	selectedIdx int
	width       int
	height      int
}

// New creates a section chooser.
func New(t *tracker.Tracker, k *keys.KeyMap, width, height int) Model {
	return Model{tracker: t, keys: k, width: width, height: height}
}

// Update handles key presses.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		m.selectedIdx = (m.selectedIdx + 1) % len(entries)
	case key.Matches(keyMsg, m.keys.Up):
		m.selectedIdx = (m.selectedIdx + len(entries) - 1) % len(entries)
	case key.Matches(keyMsg, m.keys.Select):
		target := entries[m.selectedIdx].screen
		state := m.tracker.Navigate(func(s nav.State) nav.State { return s.Section(target) })
		if state.Screen != target {
			return m, nil
		}
		return m, func() tea.Msg { return SectionMsg{Screen: target} }
	}
	return m, nil
}

// View renders the chooser with the selected project's summary.
func (m Model) View() string {
	p, ok := m.tracker.Selected()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.ProjectBadge(p.Color) + " " + theme.HeadingStyle.Render(p.Name))
	b.WriteString("\n\n")

	for i, e := range entries {
		label := fmt.Sprintf("%-24s %s", e.title, theme.ProgressBar(progressOf(p, e.screen), 20))
		if i == m.selectedIdx {
			b.WriteString(theme.SelectedItemStyle.Render(label))
		} else {
			b.WriteString(theme.ListItemStyle.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(details(p))

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height).Render(b.String())
}

func progressOf(p model.Project, s nav.Screen) int {
	if s == nav.ScreenTodos {
		return model.TodoProgress(p.Todos)
	}
	items := append(append([]model.ChecklistItem(nil), p.Guidelines...), p.Workflow...)
	return model.Progress(items)
}

func details(p model.Project) string {
	row := func(label, value string) string {
		if value == "" {
			value = theme.DimmedStyle.Render("not set")
		}
		return fmt.Sprintf("%-9s %s\n", label, value)
	}
	image := ""
	if p.HasImage() {
		image = "stored"
	}
	return row("Figma", p.FigmaURL) + row("Website", p.WebsiteURL) + row("Image", image) +
		row("Overall", theme.ProgressBar(p.Progress(), 20))
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
