package tracker

import (
	"context"
	"strings"

	"github.com/nhle/devdesign-studio/internal/calendar"
	"github.com/nhle/devdesign-studio/internal/model"
)

// ToggleItem flips the checked flag of an item in the selected project.
// It is a no-op when nothing is selected or no item has itemID.
func (t *Tracker) ToggleItem(ctx context.Context, collection model.Collection, itemID model.ID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.selectedIndex()
	if i < 0 {
		return false
	}

	p := t.projects[i].Clone()
	found := false
	switch collection {
	case model.CollectionGuidelines:
		p.Guidelines, found = model.ToggleChecklist(p.Guidelines, itemID)
	case model.CollectionWorkflow:
		p.Workflow, found = model.ToggleChecklist(p.Workflow, itemID)
	case model.CollectionTodos:
		p.Todos, found = model.ToggleTodo(p.Todos, itemID)
	}
	if !found {
		return false
	}

	t.replace(i, func(model.Project) model.Project { return p })
	t.persist(ctx)
	return true
}

// AddTodo appends an optional, deletable todo to the selected project.
// Empty text is silently rejected. date is YYYY-MM-DD and tm is HH:MM;
// both may be empty. A parseable time is stored zero-padded.
func (t *Tracker) AddTodo(ctx context.Context, text, date, tm string) (model.Todo, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Todo{}, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.selectedIndex()
	if i < 0 {
		return model.Todo{}, false
	}

	todo := model.Todo{
		ID:   model.NewID(),
		Text: text,
		Date: strings.TrimSpace(date),
		Time: calendar.NormalizeTime(tm),
	}
	t.replace(i, func(p model.Project) model.Project {
		p.Todos = append(p.Todos, todo)
		return p
	})
	t.persist(ctx)
	return todo, true
}

// DeleteTodo removes a todo from the selected project. Required todos are
// never removed.
func (t *Tracker) DeleteTodo(ctx context.Context, todoID model.ID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.selectedIndex()
	if i < 0 {
		return false
	}
	todos, removed := model.RemoveTodo(t.projects[i].Todos, todoID)
	if !removed {
		return false
	}

	t.replace(i, func(p model.Project) model.Project {
		p.Todos = todos
		return p
	})
	t.persist(ctx)
	return true
}
