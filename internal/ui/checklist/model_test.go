package checklist

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
	"github.com/nhle/devdesign-studio/tests/testutil"
)

func newModel(t *testing.T) (Model, *tracker.Tracker) {
	t.Helper()
	tr := tracker.New(testutil.NewTestStore(t), tracker.WithLogger(logging.Discard()))
	p, ok := tr.CreateProject(context.Background(), "Acme", "", "")
	require.True(t, ok)
	require.True(t, tr.Select(p.ID))
	tr.Navigate(func(s nav.State) nav.State { return s.Section(nav.ScreenChecklist) })
	return New(tr, keys.DefaultKeyMap(), 120, 60), tr
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRowsFollowFoldState(t *testing.T) {
	m, tr := newModel(t)
	assert.Len(t, m.rows(), 2+len(model.SeedGuidelines())+len(model.SeedWorkflow()))

	m, _ = m.Update(keyPress("g"))
	assert.False(t, tr.Nav().GuidelinesOpen)
	assert.Len(t, m.rows(), 2+len(model.SeedWorkflow()))

	m, _ = m.Update(keyPress("w"))
	assert.False(t, tr.Nav().WorkflowOpen)
	assert.Len(t, m.rows(), 2)
}

func TestToggleChecksItemUnderCursor(t *testing.T) {
	m, tr := newModel(t)

	m, _ = m.Update(keyPress("j"))
	m, _ = m.Update(keyPress("x"))

	p, ok := tr.Selected()
	require.True(t, ok)
	assert.True(t, p.Guidelines[0].Checked)
	assert.Equal(t, 1, model.CountChecked(p.Guidelines))

	m.Update(keyPress("x"))
	p, _ = tr.Selected()
	assert.False(t, p.Guidelines[0].Checked)
}

func TestToggleOnHeaderFolds(t *testing.T) {
	m, tr := newModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, tr.Nav().GuidelinesOpen)
}

func TestFoldKeepsCursorOnHeader(t *testing.T) {
	m, _ := newModel(t)
	m.cursor = len(model.SeedGuidelines()) + 1 // workflow header

	m, _ = m.Update(keyPress("g"))
	assert.Equal(t, 1, m.cursor)
	assert.True(t, m.rows()[m.cursor].header)
}

func TestViewShowsCounts(t *testing.T) {
	m, _ := newModel(t)
	view := m.View()
	assert.Contains(t, view, "Guidelines")
	assert.Contains(t, view, "(0/19)")
	assert.Contains(t, view, "(0/6)")
}
