package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestLayoutContentHeight(t *testing.T) {
	assert.Equal(t, 22, NewLayout(80, 24).ContentHeight())
	assert.Equal(t, 0, NewLayout(80, 1).ContentHeight())
}

func TestBreadcrumb(t *testing.T) {
	assert.Equal(t, "Projects › Acme › To-Dos", Breadcrumb("Projects", "Acme", "To-Dos"))
	assert.Equal(t, "Projects", Breadcrumb("Projects"))
}

func TestRenderHeaderSpansWidth(t *testing.T) {
	l := NewLayout(60, 20)
	assert.Equal(t, 60, lipgloss.Width(l.RenderHeader("Projects", "3 active")))
	assert.Equal(t, 60, lipgloss.Width(l.RenderStatusBar("q quit")))
}
