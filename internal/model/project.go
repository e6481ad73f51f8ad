package model

import "math/rand/v2"

// Color is the accent color tag of a project card.
type Color string

// Palette colors. A new project picks one at random.
const (
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
	ColorPink   Color = "pink"
)

// Palette lists every color a project may carry.
var Palette = []Color{ColorBlue, ColorPurple, ColorGreen, ColorOrange, ColorPink}

// RandomColor picks a palette color.
func RandomColor() Color {
	return Palette[rand.IntN(len(Palette))]
}

// Project is one client engagement with its checklists and todos.
type Project struct {
	ID           ID              `json:"id"`
	Name         string          `json:"name"`
	Archived     bool            `json:"archived"`
	ProfileImage *string         `json:"profileImage"`
	FigmaURL     string          `json:"figmaUrl"`
	WebsiteURL   string          `json:"websiteUrl"`
	Color        Color           `json:"color"`
	Guidelines   []ChecklistItem `json:"guidelines"`
	Workflow     []ChecklistItem `json:"workflow"`
	Todos        []Todo          `json:"todos"`
}

// HasImage reports whether a profile image is stored.
func (p Project) HasImage() bool {
	return p.ProfileImage != nil && *p.ProfileImage != ""
}

// Progress returns the combined completion percentage across guidelines,
// workflow steps and todos.
func (p Project) Progress() int {
	total := len(p.Guidelines) + len(p.Workflow) + len(p.Todos)
	checked := CountChecked(p.Guidelines) + CountChecked(p.Workflow) + CountTodosChecked(p.Todos)
	return percent(checked, total)
}

// Clone returns a deep copy so callers cannot mutate tracker state.
func (p Project) Clone() Project {
	c := p
	if p.ProfileImage != nil {
		img := *p.ProfileImage
		c.ProfileImage = &img
	}
	c.Guidelines = append([]ChecklistItem(nil), p.Guidelines...)
	c.Workflow = append([]ChecklistItem(nil), p.Workflow...)
	c.Todos = append([]Todo(nil), p.Todos...)
	return c
}
