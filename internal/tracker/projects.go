package tracker

import (
	"context"
	"strings"

	"github.com/nhle/devdesign-studio/internal/model"
)

// CreateProject appends a seeded project and returns to the project list.
// An empty name is silently rejected.
func (t *Tracker) CreateProject(ctx context.Context, name, figmaURL, websiteURL string) (model.Project, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Project{}, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	p := model.NewProject(name, strings.TrimSpace(figmaURL), strings.TrimSpace(websiteURL))
	next := make([]model.Project, len(t.projects), len(t.projects)+1)
	copy(next, t.projects)
	t.projects = append(next, p)
	t.nav = t.nav.Reset()

	t.persist(ctx)
	t.logger.Info("created project", "id", p.ID, "name", p.Name)
	return p.Clone(), true
}

// DeleteProject removes a project. Deleting the selected project clears the
// selection and returns to the project list.
func (t *Tracker) DeleteProject(ctx context.Context, id model.ID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return false
	}

	next := make([]model.Project, 0, len(t.projects)-1)
	next = append(next, t.projects[:i]...)
	next = append(next, t.projects[i+1:]...)
	t.projects = next

	if t.nav.ProjectID == id {
		t.nav = t.nav.Reset()
	}

	t.persist(ctx)
	t.logger.Info("deleted project", "id", id)
	return true
}

// ToggleArchived flips the archived flag. Navigation is unchanged.
func (t *Tracker) ToggleArchived(ctx context.Context, id model.ID) bool {
	return t.mutateProject(ctx, id, func(p model.Project) model.Project {
		p.Archived = !p.Archived
		return p
	})
}

// UpdateLinks overwrites both external links with their trimmed values.
func (t *Tracker) UpdateLinks(ctx context.Context, id model.ID, figmaURL, websiteURL string) bool {
	figmaURL = strings.TrimSpace(figmaURL)
	websiteURL = strings.TrimSpace(websiteURL)
	return t.mutateProject(ctx, id, func(p model.Project) model.Project {
		p.FigmaURL = figmaURL
		p.WebsiteURL = websiteURL
		return p
	})
}

// SetProfileImage stores an encoded image on the project. An empty value
// removes the image.
func (t *Tracker) SetProfileImage(ctx context.Context, id model.ID, imageData string) bool {
	return t.mutateProject(ctx, id, func(p model.Project) model.Project {
		if imageData == "" {
			p.ProfileImage = nil
			return p
		}
		img := imageData
		p.ProfileImage = &img
		return p
	})
}

func (t *Tracker) mutateProject(ctx context.Context, id model.ID, fn func(model.Project) model.Project) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return false
	}
	t.replace(i, fn)
	t.persist(ctx)
	return true
}
