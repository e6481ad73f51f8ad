package projectmgr

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/devdesign-studio/internal/keys"
	"github.com/nhle/devdesign-studio/internal/logging"
	"github.com/nhle/devdesign-studio/internal/nav"
	"github.com/nhle/devdesign-studio/internal/tracker"
	"github.com/nhle/devdesign-studio/tests/testutil"
)

func newModel(t *testing.T, names ...string) (Model, *tracker.Tracker) {
	t.Helper()
	tr := tracker.New(testutil.NewTestStore(t), tracker.WithLogger(logging.Discard()))
	for _, n := range names {
		_, ok := tr.CreateProject(context.Background(), n, "", "")
		require.True(t, ok)
	}
	return New(tr, keys.DefaultKeyMap(), 100, 30), tr
}

func press(m Model, s string) (Model, tea.Cmd) {
	switch s {
	case "enter":
		return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	default:
		return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	}
}

// run executes cmd and feeds its message back into the model.
func run(m Model, cmd tea.Cmd) Model {
	if cmd == nil {
		return m
	}
	m, _ = m.Update(cmd())
	return m
}

func TestEnterOpensSelectedProject(t *testing.T) {
	m, tr := newModel(t, "Acme", "Globex")

	m, _ = press(m, "j")
	_, cmd := press(m, "enter")
	require.NotNil(t, cmd)

	msg, ok := cmd().(OpenMsg)
	require.True(t, ok)
	globex := tr.Projects()[1]
	assert.Equal(t, globex.ID, msg.ID)
	assert.Equal(t, nav.ScreenSections, tr.Nav().Screen)
	assert.Equal(t, globex.ID, tr.Nav().ProjectID)
}

func TestSelectionWraps(t *testing.T) {
	m, _ := newModel(t, "A", "B")
	m, _ = press(m, "k")
	assert.Equal(t, 1, m.selectedIdx)
	m, _ = press(m, "j")
	assert.Equal(t, 0, m.selectedIdx)
}

func TestArchiveMovesProjectToArchivedList(t *testing.T) {
	m, tr := newModel(t, "Acme")

	m, cmd := press(m, "a")
	m = run(m, cmd)

	assert.Empty(t, tr.Active())
	assert.Len(t, tr.Archived(), 1)
	assert.Equal(t, "Archived Acme", m.statusMsg)

	m, _ = press(m, "A")
	assert.True(t, m.ShowingArchived())
	assert.Contains(t, m.View(), "Acme")

	m, cmd = press(m, "a")
	m = run(m, cmd)
	assert.Len(t, tr.Active(), 1)
	assert.Equal(t, "Restored Acme", m.statusMsg)
}

func TestFormKeysOpenForms(t *testing.T) {
	m, _ := newModel(t, "Acme")

	created, _ := press(m, "n")
	assert.True(t, created.Editing())
	assert.Equal(t, modeCreate, created.mode)

	links, _ := press(m, "e")
	assert.Equal(t, modeEditLinks, links.mode)

	del, _ := press(m, "d")
	assert.Equal(t, modeConfirmDelete, del.mode)
}

func TestActionsOnEmptyListAreNoOps(t *testing.T) {
	m, _ := newModel(t)
	for _, k := range []string{"e", "a", "d", "enter"} {
		next, cmd := press(m, k)
		assert.Nil(t, cmd, k)
		assert.False(t, next.Editing(), k)
	}
	assert.Contains(t, m.View(), "No projects yet")
}

func TestCreateProjectCommand(t *testing.T) {
	m, tr := newModel(t)
	m.fb.name = "  Initech "
	m.fb.website = "https://initech.example"
	m.mode = modeCreate

	m = run(m, m.submit())

	require.Len(t, tr.Projects(), 1)
	p := tr.Projects()[0]
	assert.Equal(t, "Initech", p.Name)
	assert.Equal(t, "https://initech.example", p.WebsiteURL)
	assert.Equal(t, "Created Initech", m.statusMsg)
	assert.False(t, m.Editing())
}

func TestDeleteConfirmed(t *testing.T) {
	m, tr := newModel(t, "Acme", "Globex")
	m, _ = press(m, "j")
	m, _ = press(m, "d")
	m.fb.confirm = true

	m = run(m, m.submit())

	require.Len(t, tr.Projects(), 1)
	assert.Equal(t, "Acme", tr.Projects()[0].Name)
	assert.Equal(t, 0, m.selectedIdx)
}

func TestDeleteDeclinedKeepsProject(t *testing.T) {
	m, tr := newModel(t, "Acme")
	m, _ = press(m, "d")
	m.fb.confirm = false

	m = run(m, m.submit())

	assert.Len(t, tr.Projects(), 1)
	assert.False(t, m.Editing())
}

func TestUpdateLinksCommand(t *testing.T) {
	m, tr := newModel(t, "Acme")
	m, _ = press(m, "e")
	m.fb.figma = "https://figma.com/file/abc"
	m.fb.website = ""

	run(m, m.submit())

	p := tr.Projects()[0]
	assert.Equal(t, "https://figma.com/file/abc", p.FigmaURL)
	assert.Empty(t, p.WebsiteURL)
}

func TestEditLinksKeepsBareHosts(t *testing.T) {
	m, tr := newModel(t, "Acme")
	m, _ = press(m, "e")
	m.fb.figma = "figma.com/file/abc"
	m.fb.website = " www.acme.de "

	run(m, m.submit())

	p := tr.Projects()[0]
	assert.Equal(t, "figma.com/file/abc", p.FigmaURL)
	assert.Equal(t, "www.acme.de", p.WebsiteURL)
}
