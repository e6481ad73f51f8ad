// Package checklist renders the guidelines and workflow sections of the
// selected project.
package checklist

import (
	"context"
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

// row is one visible line: either a section header or an item.
type row struct {
	collection model.Collection
	header     bool
	item       model.ChecklistItem
}

// Model is the checklist screen.
type Model struct {
	tracker *tracker.Tracker
	keys    *keys.KeyMap
	cursor  int
	width   int
	height  int
}

// New creates the checklist screen.
func New(t *tracker.Tracker, k *keys.KeyMap, width, height int) Model {
	return Model{tracker: t, keys: k, width: width, height: height}
}

func (m Model) rows() []row {
	p, ok := m.tracker.Selected()
	if !ok {
		return nil
	}
	state := m.tracker.Nav()

	var rows []row
	add := func(c model.Collection, open bool, items []model.ChecklistItem) {
		rows = append(rows, row{collection: c, header: true})
		if !open {
			return
		}
		for _, it := range items {
			rows = append(rows, row{collection: c, item: it})
		}
	}
	add(model.CollectionGuidelines, state.GuidelinesOpen, p.Guidelines)
	add(model.CollectionWorkflow, state.WorkflowOpen, p.Workflow)
	return rows
}

// Update handles key presses.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	rows := m.rows()
	if len(rows) == 0 {
		return m, nil
	}
	m.cursor = min(m.cursor, len(rows)-1)

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(rows)
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = (m.cursor + len(rows) - 1) % len(rows)
	case key.Matches(keyMsg, m.keys.Guidelines):
		m.fold(model.CollectionGuidelines, rows[m.cursor])
	case key.Matches(keyMsg, m.keys.Workflow):
		m.fold(model.CollectionWorkflow, rows[m.cursor])
	case key.Matches(keyMsg, m.keys.Toggle), key.Matches(keyMsg, m.keys.Select):
		r := rows[m.cursor]
		if r.header {
			m.fold(r.collection, r)
			return m, nil
		}
		m.tracker.ToggleItem(context.Background(), r.collection, r.item.ID)
	}
	return m, nil
}

// fold collapses or expands a section. The cursor stays on its row, or
// moves to the section header when the row was hidden.
func (m *Model) fold(c model.Collection, current row) {
	m.tracker.Navigate(func(s nav.State) nav.State {
		if c == model.CollectionWorkflow {
			return s.ToggleWorkflow()
		}
		return s.ToggleGuidelines()
	})

	rows := m.rows()
	for i, r := range rows {
		if r.collection == current.collection && r.header == current.header && r.item.ID == current.item.ID {
			m.cursor = i
			return
		}
	}
	for i, r := range rows {
		if r.header && r.collection == c {
			m.cursor = i
			return
		}
	}
}

// View renders both sections.
func (m Model) View() string {
	p, ok := m.tracker.Selected()
	if !ok {
		return ""
	}
	state := m.tracker.Nav()

	var b strings.Builder
	for i, r := range m.rows() {
		var line string
		if r.header {
			line = m.header(p, r.collection, state)
			if i > 0 {
				b.WriteString("\n")
			}
		} else {
			line = fmt.Sprintf("  %s %s  %s", theme.Checkbox(r.item.Checked), theme.DimmedStyle.Render(r.item.Num), r.item.Text)
		}
		if i == m.cursor {
			b.WriteString(theme.SelectedItemStyle.Render(line))
		} else {
			b.WriteString(theme.ListItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render("x check | g/w fold | esc back"))

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height).Render(b.String())
}

func (m Model) header(p model.Project, c model.Collection, state nav.State) string {
	title, items, open := "Guidelines", p.Guidelines, state.GuidelinesOpen
	if c == model.CollectionWorkflow {
		title, items, open = "Workflow", p.Workflow, state.WorkflowOpen
	}
	arrow := "▾"
	if !open {
		arrow = "▸"
	}
	return fmt.Sprintf("%s %s (%d/%d)  %s",
		arrow, theme.HeadingStyle.Render(title),
		model.CountChecked(items), len(items),
		theme.ProgressBar(model.Progress(items), 12))
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
