package model

// Todo is a dated or undated task on a project. Seeded todos are Required
// and can never be deleted.
type Todo struct {
	ID       ID     `json:"id"`
	Text     string `json:"text"`
	Checked  bool   `json:"checked"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	Required bool   `json:"required"`
}

// Deletable reports whether the todo may be removed by the user.
func (t Todo) Deletable() bool {
	return !t.Required
}

// CountTodosChecked returns how many todos are checked.
func CountTodosChecked(todos []Todo) int {
	n := 0
	for _, t := range todos {
		if t.Checked {
			n++
		}
	}
	return n
}

// TodoProgress returns round(100 * checked / total), or 0 for an empty list.
func TodoProgress(todos []Todo) int {
	return percent(CountTodosChecked(todos), len(todos))
}

// ToggleTodo returns a copy of todos with the matching todo flipped.
func ToggleTodo(todos []Todo, id ID) ([]Todo, bool) {
	out := make([]Todo, len(todos))
	found := false
	for i, t := range todos {
		if t.ID == id {
			t.Checked = !t.Checked
			found = true
		}
		out[i] = t
	}
	return out, found
}

// RemoveTodo returns a copy of todos without the todo matching id. Required
// todos are kept. The second result reports whether anything was removed.
func RemoveTodo(todos []Todo, id ID) ([]Todo, bool) {
	out := make([]Todo, 0, len(todos))
	removed := false
	for _, t := range todos {
		if t.ID == id && t.Deletable() {
			removed = true
			continue
		}
		out = append(out, t)
	}
	return out, removed
}
