package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/devdesign-studio/internal/media"
	"github.com/nhle/devdesign-studio/internal/ui/command"
)

// commandResultMsg reports the outcome of a palette command.
type commandResultMsg struct {
	status string
	// refresh asks the project list to re-clamp its selection.
	refresh bool
}

// executeCommand handles a command from the command palette.
func (m *Model) executeCommand(c command.CommandMsg) tea.Cmd {
	switch c.Name {
	case "quit", "q":
		return tea.Quit
	case "export":
		return m.exportProjects(c.Arg)
	case "import":
		return m.importProjects(c.Arg)
	case "image":
		return m.setImage(c.Arg)
	default:
		name := c.Name
		return func() tea.Msg {
			return commandResultMsg{status: fmt.Sprintf("Unknown command: %s", name)}
		}
	}
}

func (m *Model) exportProjects(dir string) tea.Cmd {
	t := m.tracker
	if dir == "" {
		dir = m.exportDir
	}
	dir = expandHome(dir)
	logger := m.logger
	return func() tea.Msg {
		path, err := t.ExportFile(dir)
		if err != nil {
			logger.Error("export failed", "dir", dir, "err", err)
			return commandResultMsg{status: fmt.Sprintf("Export failed: %v", err)}
		}
		return commandResultMsg{status: fmt.Sprintf("Exported to %s", path)}
	}
}

func (m *Model) importProjects(path string) tea.Cmd {
	if path == "" {
		return func() tea.Msg { return commandResultMsg{status: "Usage: import PATH"} }
	}
	t := m.tracker
	path = expandHome(path)
	return func() tea.Msg {
		if err := t.ImportFile(context.Background(), path); err != nil {
			return commandResultMsg{status: fmt.Sprintf("Import failed: %v", err), refresh: true}
		}
		return commandResultMsg{
			status:  fmt.Sprintf("Imported %d projects", len(t.Projects())),
			refresh: true,
		}
	}
}

// setImage stores an image file on the selected project. "clear" removes it.
func (m *Model) setImage(arg string) tea.Cmd {
	t := m.tracker
	p, ok := t.Selected()
	if !ok {
		return func() tea.Msg { return commandResultMsg{status: "Open a project first"} }
	}
	if arg == "" {
		return func() tea.Msg { return commandResultMsg{status: "Usage: image PATH | image clear"} }
	}

	if arg == "clear" {
		return func() tea.Msg {
			t.SetProfileImage(context.Background(), p.ID, "")
			return commandResultMsg{status: "Image removed"}
		}
	}

	path := expandHome(arg)
	return func() tea.Msg {
		data, err := media.EncodeImageFile(path)
		if err != nil {
			return commandResultMsg{status: fmt.Sprintf("Image failed: %v", err)}
		}
		t.SetProfileImage(context.Background(), p.ID, data)
		return commandResultMsg{status: fmt.Sprintf("Image set for %s", p.Name)}
	}
}

// expandHome resolves a leading "~/" against the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
