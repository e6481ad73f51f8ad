package projectmgr

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/devdesign-studio/internal/keys"
	"github.com/nhle/devdesign-studio/internal/model"
	"github.com/nhle/devdesign-studio/internal/theme"
	"github.com/nhle/devdesign-studio/internal/tracker"
)

// OpenMsg signals the parent that a project was selected and the section
// chooser should be shown.
type OpenMsg struct {
	ID model.ID
}

// ProjectChangedMsg signals that projects were modified (created/updated/deleted).
type ProjectChangedMsg struct {
	Status string
}

type projectMode int

const (
	modeList projectMode = iota
	modeCreate
	modeEditLinks
	modeConfirmDelete
)

// formBindings lives on the heap so huh's Value pointers survive model copies.
type formBindings struct {
	name    string
	figma   string
	website string
	confirm bool
}

// Model is the Bubble Tea model for the project list.
type Model struct {
	mode         projectMode
	tracker      *tracker.Tracker
	keys         *keys.KeyMap
	showArchived bool
	selectedIdx  int
	editingID    model.ID
	form         *huh.Form
	fb           *formBindings
	statusMsg    string
	width        int
	height       int
}

// New creates a new project list model.
func New(t *tracker.Tracker, k *keys.KeyMap, width, height int) Model {
	return Model{
		mode:    modeList,
		tracker: t,
		keys:    k,
		fb:      &formBindings{},
		width:   width, height: height,
	}
}

// Init is a no-op; projects are read from the tracker on every render.
func (m Model) Init() tea.Cmd {
	return nil
}

// Editing reports whether a form is active, so the parent does not steal
// keystrokes.
func (m Model) Editing() bool {
	return m.mode != modeList
}

// ShowingArchived reports whether the archived list is shown.
func (m Model) ShowingArchived() bool {
	return m.showArchived
}

func (m Model) visible() []model.Project {
	if m.showArchived {
		return m.tracker.Archived()
	}
	return m.tracker.Active()
}

func (m Model) current() (model.Project, bool) {
	projects := m.visible()
	if len(projects) == 0 {
		return model.Project{}, false
	}
	idx := min(m.selectedIdx, len(projects)-1)
	return projects[idx], true
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ProjectChangedMsg:
		m.statusMsg = msg.Status
		m.mode = modeList
		m.clampSelection()
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeList {
			return m.handleListKey(msg)
		}
	}

	return m.updateActiveForm(msg)
}

func (m *Model) clampSelection() {
	n := len(m.visible())
	if m.selectedIdx >= n {
		m.selectedIdx = max(n-1, 0)
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	projects := m.visible()

	switch {
	case key.Matches(msg, m.keys.Down):
		if len(projects) > 0 {
			m.selectedIdx = (m.selectedIdx + 1) % len(projects)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if len(projects) > 0 {
			m.selectedIdx--
			if m.selectedIdx < 0 {
				m.selectedIdx = len(projects) - 1
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.ShowArchived):
		m.showArchived = !m.showArchived
		m.selectedIdx = 0
		m.statusMsg = ""
		return m, nil

	case key.Matches(msg, m.keys.Select):
		p, ok := m.current()
		if !ok || !m.tracker.Select(p.ID) {
			return m, nil
		}
		id := p.ID
		return m, func() tea.Msg { return OpenMsg{ID: id} }

	case key.Matches(msg, m.keys.New):
		m.fb.name = ""
		m.fb.figma = ""
		m.fb.website = ""
		m.form = m.buildCreateForm()
		m.mode = modeCreate
		return m, m.form.Init()

	case key.Matches(msg, m.keys.EditLinks):
		p, ok := m.current()
		if !ok {
			return m, nil
		}
		m.editingID = p.ID
		m.fb.figma = p.FigmaURL
		m.fb.website = p.WebsiteURL
		m.form = m.buildLinksForm(p.Name)
		m.mode = modeEditLinks
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Archive):
		p, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.toggleArchive(p)

	case key.Matches(msg, m.keys.Delete):
		p, ok := m.current()
		if !ok {
			return m, nil
		}
		m.editingID = p.ID
		m.fb.confirm = false
		m.form = m.buildConfirmForm(p.Name)
		m.mode = modeConfirmDelete
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) linkFields() []huh.Field {
	return []huh.Field{
		huh.NewInput().
			Title("Figma").
			Placeholder("https://figma.com/... (optional)").
			Value(&m.fb.figma),
		huh.NewInput().
			Title("Website").
			Placeholder("https://... (optional)").
			Value(&m.fb.website),
	}
}

func (m Model) buildCreateForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Name").
			Placeholder("Client name").
			Value(&m.fb.name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("name is required")
				}
				return nil
			}),
	}
	fields = append(fields, m.linkFields()...)
	return huh.NewForm(
		huh.NewGroup(fields...).Title("New Project"),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) buildLinksForm(name string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(m.linkFields()...).Title(fmt.Sprintf("Links for %s", name)),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) buildConfirmForm(name string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete project %q?", name)).
				Description("Checklists and todos are removed with it.").
				Affirmative("Yes, delete").
				Negative("Cancel").
				Value(&m.fb.confirm),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) updateActiveForm(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil || m.mode == modeList {
		return m, nil
	}
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateAborted:
		m.mode = modeList
		return m, nil
	case huh.StateCompleted:
		return m, m.submit()
	}
	return m, cmd
}

func (m Model) submit() tea.Cmd {
	switch m.mode {
	case modeCreate:
		return m.createProject()
	case modeEditLinks:
		return m.updateLinks()
	case modeConfirmDelete:
		if m.fb.confirm {
			return m.deleteProject(m.editingID)
		}
		return func() tea.Msg { return ProjectChangedMsg{} }
	}
	return nil
}

// View renders the project list.
func (m Model) View() string {
	if m.mode != modeList && m.form != nil {
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	}
	return m.viewList()
}

func (m Model) viewList() string {
	var b strings.Builder

	title := "Projects"
	if m.showArchived {
		title = "Archived Projects"
	}
	b.WriteString(theme.TitleStyle.Render(title))
	b.WriteString("\n\n")

	projects := m.visible()
	if len(projects) == 0 {
		empty := "No projects yet. Press 'n' to create one."
		if m.showArchived {
			empty = "No archived projects."
		}
		b.WriteString(theme.DimmedStyle.Italic(true).Render(empty))
	}

	for i, p := range projects {
		label := fmt.Sprintf("%s  %-28s %s", theme.ProjectBadge(p.Color), p.Name, theme.ProgressBar(p.Progress(), 10))
		if links := linkSummary(p); links != "" {
			label += "  " + theme.DimmedStyle.Render(links)
		}
		if i == m.selectedIdx {
			b.WriteString(theme.SelectedItemStyle.Render(label))
		} else {
			b.WriteString(theme.ListItemStyle.Render(label))
		}
		b.WriteString("\n")
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.StatusMsgStyle.Render(m.statusMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.HelpStyle.Render(
		"enter open | n new | e links | a archive/restore | d delete | A archived | : command",
	))

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height).Render(b.String())
}

func linkSummary(p model.Project) string {
	var parts []string
	if p.HasImage() {
		parts = append(parts, "image")
	}
	if p.FigmaURL != "" {
		parts = append(parts, "figma")
	}
	if p.WebsiteURL != "" {
		parts = append(parts, "web")
	}
	return strings.Join(parts, " · ")
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func (m Model) createProject() tea.Cmd {
	t := m.tracker
	name, figma, website := m.fb.name, m.fb.figma, m.fb.website
	return func() tea.Msg {
		p, ok := t.CreateProject(context.Background(), name, figma, website)
		if !ok {
			return ProjectChangedMsg{Status: "Name is required"}
		}
		return ProjectChangedMsg{Status: fmt.Sprintf("Created %s", p.Name)}
	}
}

func (m Model) updateLinks() tea.Cmd {
	t := m.tracker
	id := m.editingID
	figma, website := m.fb.figma, m.fb.website
	return func() tea.Msg {
		if !t.UpdateLinks(context.Background(), id, figma, website) {
			return ProjectChangedMsg{Status: "Project no longer exists"}
		}
		return ProjectChangedMsg{Status: "Links saved"}
	}
}

func (m Model) deleteProject(id model.ID) tea.Cmd {
	t := m.tracker
	return func() tea.Msg {
		if !t.DeleteProject(context.Background(), id) {
			return ProjectChangedMsg{Status: "Project no longer exists"}
		}
		return ProjectChangedMsg{Status: "Project deleted"}
	}
}

func (m Model) toggleArchive(p model.Project) tea.Cmd {
	t := m.tracker
	return func() tea.Msg {
		t.ToggleArchived(context.Background(), p.ID)
		if p.Archived {
			return ProjectChangedMsg{Status: fmt.Sprintf("Restored %s", p.Name)}
		}
		return ProjectChangedMsg{Status: fmt.Sprintf("Archived %s", p.Name)}
	}
}
