package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/devdesign-studio/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorPink    = lipgloss.AdaptiveColor{Dark: "#F783AC", Light: "#B83280"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps overlay content such as help and the command palette.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// TitleStyle renders screen titles.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	MarginBottom(1)

// HeadingStyle renders inline section headings.
var HeadingStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite)

// CalendarCursorStyle marks the selected day in the month grid.
var CalendarCursorStyle = lipgloss.NewStyle().
	Bold(true).
	Reverse(true)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// DimmedStyle renders checked items and placeholders.
var DimmedStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// StatusMsgStyle renders transient feedback under a list.
var StatusMsgStyle = lipgloss.NewStyle().
	Foreground(ColorYellow).
	Italic(true)

// RequiredBadgeStyle marks seeded todos that cannot be deleted.
var RequiredBadgeStyle = lipgloss.NewStyle().
	Foreground(ColorOrange).
	Bold(true)

// DueDateStyle renders todo dates.
var DueDateStyle = lipgloss.NewStyle().
	Foreground(ColorBlue)

// ProjectColor maps a project's palette tag to a terminal color.
func ProjectColor(c model.Color) lipgloss.AdaptiveColor {
	switch c {
	case model.ColorBlue:
		return ColorBlue
	case model.ColorPurple:
		return ColorMagenta
	case model.ColorGreen:
		return ColorGreen
	case model.ColorOrange:
		return ColorOrange
	case model.ColorPink:
		return ColorPink
	default:
		return ColorGray
	}
}

// ProjectBadge renders a colored block for a project card.
func ProjectBadge(c model.Color) string {
	return lipgloss.NewStyle().Foreground(ProjectColor(c)).Render("■")
}

// ProgressStyle returns a color-coded style for a completion percentage.
func ProgressStyle(pct int) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch {
	case pct >= 100:
		return base.Foreground(ColorGreen)
	case pct >= 50:
		return base.Foreground(ColorBlue)
	case pct > 0:
		return base.Foreground(ColorYellow)
	default:
		return base.Foreground(ColorGray)
	}
}

// ProgressBar renders a fixed-width bar followed by the percentage.
func ProgressBar(pct, width int) string {
	if width < 1 {
		width = 1
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return ProgressStyle(pct).Render(fmt.Sprintf("%s %3d%%", bar, pct))
}

// Checkbox renders a checked or unchecked box.
func Checkbox(checked bool) string {
	if checked {
		return lipgloss.NewStyle().Foreground(ColorGreen).Render("[x]")
	}
	return "[ ]"
}
