package model

import "fmt"

var guidelineTexts = []string{
	"Projektordner in Cursor anlegen mit /images, /videos, /css, /js",
	"CSS-Variablen definieren: Standard-Font, h1-h4, Paragraph-Styles",
	"Custom Properties (--var) für Fonts, Spacing, Colors, Buttons",
	"Semantische HTML5-Tags (header, nav, main, footer)",
	"Smooth Scrolling aktivieren (scroll-behavior: smooth)",
	"Cookie-Banner implementieren",
	"Alle Medien sofort nach Import komprimieren",
	`Lazy Loading für Bilder (loading="lazy")`,
	"Mobile-First: Grid, Flexbox, clamp() nutzen",
	"Font-Größen ausschließlich in rem",
	"CSS bevorzugen, JS nur wenn nötig",
	"Wiederverwendbare Animationsfunktionen",
	"GSAP: Nur benötigte Module laden",
	"JavaScript modular strukturieren",
	"JS nur auf Seiten einbinden wo benötigt",
	"JavaScript vor </body> laden",
	"CSS in einer styles.css zusammenführen",
	"Aussagekräftige Variablen-Namen",
	"Jede Seite einzeln bearbeiten",
}

var workflowTexts = []string{
	"Briefing: Ästhetik klären (modern/klassisch, ernst/spielerisch)",
	"Moodboard: Farbpalette, Vergleichswebsites, Logo",
	"Favicon in Figma definieren",
	"Button-Varianten mit CTAs vorbereiten",
	"Site-Structure via Konkurrenz-Recherche",
	"Figma-Designs als Screenshots exportieren",
}

var requiredTodoTexts = []string{
	"Figma-Datei: Logo, Favicon, Farben, Schriftart",
	"Ästhetik-Richtung & Vergleichswebsites",
	"Grundgerüst auf Basis von Recherche",
}

// SeedGuidelines returns a fresh, unchecked copy of the guideline template.
func SeedGuidelines() []ChecklistItem {
	return seedChecklist(guidelineTexts)
}

// SeedWorkflow returns a fresh, unchecked copy of the workflow template.
func SeedWorkflow() []ChecklistItem {
	return seedChecklist(workflowTexts)
}

// SeedTodos returns the three required todos every project starts with.
func SeedTodos() []Todo {
	todos := make([]Todo, len(requiredTodoTexts))
	for i, text := range requiredTodoTexts {
		todos[i] = Todo{
			ID:       ID(fmt.Sprint(i + 1)),
			Text:     text,
			Required: true,
		}
	}
	return todos
}

// NewProject builds a project with the full default content.
func NewProject(name, figmaURL, websiteURL string) Project {
	return Project{
		ID:         NewID(),
		Name:       name,
		FigmaURL:   figmaURL,
		WebsiteURL: websiteURL,
		Color:      RandomColor(),
		Guidelines: SeedGuidelines(),
		Workflow:   SeedWorkflow(),
		Todos:      SeedTodos(),
	}
}

func seedChecklist(texts []string) []ChecklistItem {
	items := make([]ChecklistItem, len(texts))
	for i, text := range texts {
		items[i] = ChecklistItem{
			ID:   ID(fmt.Sprint(i + 1)),
			Num:  fmt.Sprintf("%02d", i+1),
			Text: text,
		}
	}
	return items
}
