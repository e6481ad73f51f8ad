package model

import (
	"fmt"
	"math"
)

// Collection names a toggleable item list on a project.
type Collection string

const (
	CollectionGuidelines Collection = "guidelines"
	CollectionWorkflow   Collection = "workflow"
	CollectionTodos      Collection = "todos"
)

// ParseCollection maps a user-supplied name to a Collection.
func ParseCollection(s string) (Collection, error) {
	switch c := Collection(s); c {
	case CollectionGuidelines, CollectionWorkflow, CollectionTodos:
		return c, nil
	}
	return "", fmt.Errorf("unknown collection %q", s)
}

// ChecklistItem is a template-seeded guideline or workflow step. Only its
// Checked flag ever changes.
type ChecklistItem struct {
	ID      ID     `json:"id"`
	Num     string `json:"num"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// CountChecked returns how many items are checked.
func CountChecked(items []ChecklistItem) int {
	n := 0
	for _, it := range items {
		if it.Checked {
			n++
		}
	}
	return n
}

// Progress returns round(100 * checked / total), or 0 for an empty list.
func Progress(items []ChecklistItem) int {
	return percent(CountChecked(items), len(items))
}

// ToggleChecklist returns a copy of items with the matching item flipped.
// The second result is false when no item has the given id.
func ToggleChecklist(items []ChecklistItem, id ID) ([]ChecklistItem, bool) {
	out := make([]ChecklistItem, len(items))
	found := false
	for i, it := range items {
		if it.ID == id {
			it.Checked = !it.Checked
			found = true
		}
		out[i] = it
	}
	return out, found
}

func percent(checked, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(checked) / float64(total)))
}
