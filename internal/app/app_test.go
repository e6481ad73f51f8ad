package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/devdesign-studio/internal/logging"
	"github.com/nhle/devdesign-studio/internal/nav"
	"github.com/nhle/devdesign-studio/internal/tracker"
	"github.com/nhle/devdesign-studio/internal/ui/command"
	"github.com/nhle/devdesign-studio/tests/testutil"
)

func newApp(t *testing.T, names ...string) (Model, *tracker.Tracker) {
	t.Helper()
	tr := tracker.New(testutil.NewTestStore(t), tracker.WithLogger(logging.Discard()))
	for _, n := range names {
		_, ok := tr.CreateProject(context.Background(), n, "", "")
		require.True(t, ok)
	}
	m := New(tr, Options{ExportDir: t.TempDir(), Logger: logging.Discard()})
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40}), tr
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

// updateAll feeds msg and then every message its command produces.
func updateAll(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		return m
	}
	out := cmd()
	if _, quit := out.(tea.QuitMsg); quit || out == nil {
		return m
	}
	return updateAll(t, m, out)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNavigateDownAndBack(t *testing.T) {
	m, tr := newApp(t, "Acme")

	m = updateAll(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, nav.ScreenSections, m.Screen())
	assert.Contains(t, m.View(), "DevDesign Studio › Acme")

	m = updateAll(t, m, runes("j"))
	m = updateAll(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, nav.ScreenTodos, m.Screen())
	assert.Contains(t, m.View(), "Acme › To-Dos")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, nav.ScreenSections, m.Screen())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, nav.ScreenProjects, m.Screen())
	assert.True(t, tr.Nav().HasSelection())
}

func TestHelpOverlayTogglesAndSwallowsKeys(t *testing.T) {
	m, tr := newApp(t, "Acme")

	m = update(t, m, runes("?"))
	assert.Equal(t, OverlayHelp, m.overlay)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, nav.ScreenProjects, tr.Nav().Screen)

	m = update(t, m, runes("?"))
	assert.Equal(t, OverlayNone, m.overlay)
}

func TestQuitKey(t *testing.T) {
	m, _ := newApp(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestExportCommandWritesBackup(t *testing.T) {
	m, _ := newApp(t, "Acme")

	m = updateAll(t, m, command.CommandMsg{Name: "export"})

	entries, err := os.ReadDir(m.exportDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, m.status, filepath.Join(m.exportDir, entries[0].Name()))
}

func TestImportCommandReplacesProjects(t *testing.T) {
	m, tr := newApp(t, "Acme")
	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id": 1, "name": "Legacy"}]`), 0o644))

	m = updateAll(t, m, command.CommandMsg{Name: "import", Arg: path})

	require.Len(t, tr.Projects(), 1)
	assert.Equal(t, "Legacy", tr.Projects()[0].Name)
	assert.Equal(t, "Imported 1 projects", m.status)
}

func TestImportCommandRejectsMalformedFile(t *testing.T) {
	m, tr := newApp(t, "Acme")
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "a list"}`), 0o644))

	m = updateAll(t, m, command.CommandMsg{Name: "import", Arg: path})

	assert.Contains(t, m.status, "Import failed")
	require.Len(t, tr.Projects(), 1)
	assert.Equal(t, "Acme", tr.Projects()[0].Name)
}

func TestImageCommandNeedsSelection(t *testing.T) {
	m, _ := newApp(t, "Acme")
	m = updateAll(t, m, command.CommandMsg{Name: "image", Arg: "logo.png"})
	assert.Equal(t, "Open a project first", m.status)
}

func TestImageCommandStoresAndClears(t *testing.T) {
	m, tr := newApp(t, "Acme")
	m = updateAll(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, png, 0o644))

	m = updateAll(t, m, command.CommandMsg{Name: "image", Arg: path})
	p, ok := tr.Selected()
	require.True(t, ok)
	require.True(t, p.HasImage())
	assert.Contains(t, *p.ProfileImage, "data:image/png;base64,")

	updateAll(t, m, command.CommandMsg{Name: "image", Arg: "clear"})
	p, _ = tr.Selected()
	assert.False(t, p.HasImage())
}

func TestUnknownCommand(t *testing.T) {
	m, _ := newApp(t)
	m = updateAll(t, m, command.CommandMsg{Name: "frobnicate"})
	assert.Equal(t, "Unknown command: frobnicate", m.status)
	assert.Contains(t, m.View(), "Unknown command: frobnicate")
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "backups"), expandHome("~/backups"))
	assert.Equal(t, "/tmp/x", expandHome("/tmp/x"))
}
