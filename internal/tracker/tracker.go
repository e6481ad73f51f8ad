// Package tracker is the single source of truth for the project list and
// the navigation state. Every mutation re-persists the whole list to the
// configured key-value store.
package tracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nhle/devdesign-studio/internal/calendar"
	"github.com/nhle/devdesign-studio/internal/model"
	"github.com/nhle/devdesign-studio/internal/nav"
	"github.com/nhle/devdesign-studio/internal/snapshot"
	"github.com/nhle/devdesign-studio/internal/store"
)

// Tracker holds the project list and navigation state.
type Tracker struct {
	mu       sync.Mutex
	store    store.Store
	key      string
	logger   *log.Logger
	now      func() time.Time
	projects []model.Project
	nav      nav.State
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(t *Tracker) {
		if key != "" {
			t.key = key
		}
	}
}

// WithLogger sets the logger used for storage and import diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithClock overrides the time source used for export file names.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// New creates an empty tracker backed by s. Call Restore to load saved
// state.
func New(s store.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store:    s,
		key:      model.DefaultStorageKey,
		logger:   log.Default(),
		now:      time.Now,
		projects: []model.Project{},
		nav:      nav.Initial(calendar.Today()),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Restore replaces the in-memory list with the persisted one. A missing
// key, a backend error or corrupt data all leave an empty list.
func (t *Tracker) Restore(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.projects = []model.Project{}
	t.nav = t.nav.Reset()

	data, err := t.store.Get(ctx, t.key)
	if errors.Is(err, store.ErrNotFound) {
		t.logger.Debug("no saved projects", "key", t.key)
		return
	}
	if err != nil {
		t.logger.Warn("reading saved projects failed", "key", t.key, "err", err)
		return
	}

	projects, err := snapshot.Decode(data)
	if err != nil {
		t.logger.Warn("saved projects are corrupt, starting empty", "key", t.key, "err", err)
		return
	}
	t.projects = projects
	t.logger.Info("restored projects", "count", len(projects))
}

// persist writes the whole list. Failures are logged and swallowed.
// Callers hold t.mu.
func (t *Tracker) persist(ctx context.Context) {
	data, err := snapshot.Encode(t.projects)
	if err != nil {
		t.logger.Warn("encoding projects failed", "err", err)
		return
	}
	if err := t.store.Put(ctx, t.key, data); err != nil {
		t.logger.Warn("saving projects failed", "key", t.key, "err", err)
	}
}

// Nav returns the current navigation state.
func (t *Tracker) Nav() nav.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.nav
}

// Navigate applies a navigation transition and returns the new state.
func (t *Tracker) Navigate(fn func(nav.State) nav.State) nav.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nav = fn(t.nav)
	return t.nav
}

// Select records id as the selected project and moves to the section
// chooser. It reports false if no such project exists.
func (t *Tracker) Select(id model.ID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.indexOf(id) < 0 {
		return false
	}
	t.nav = t.nav.Open(id)
	return true
}

// Projects returns a copy of every project in creation order.
func (t *Tracker) Projects() []model.Project {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.filter(func(model.Project) bool { return true })
}

// Active returns the projects that are not archived.
func (t *Tracker) Active() []model.Project {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.filter(func(p model.Project) bool { return !p.Archived })
}

// Archived returns the archived projects.
func (t *Tracker) Archived() []model.Project {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.filter(func(p model.Project) bool { return p.Archived })
}

// Project returns a copy of the project with the given id.
func (t *Tracker) Project(id model.ID) (model.Project, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.indexOf(id)
	if i < 0 {
		return model.Project{}, false
	}
	return t.projects[i].Clone(), true
}

// Selected returns a copy of the selected project. The copy is resolved
// from the list on every call, so it always reflects the latest mutation.
func (t *Tracker) Selected() (model.Project, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.selectedIndex()
	if i < 0 {
		return model.Project{}, false
	}
	return t.projects[i].Clone(), true
}

func (t *Tracker) filter(keep func(model.Project) bool) []model.Project {
	out := make([]model.Project, 0, len(t.projects))
	for _, p := range t.projects {
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (t *Tracker) indexOf(id model.ID) int {
	if id == "" {
		return -1
	}
	for i, p := range t.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (t *Tracker) selectedIndex() int {
	return t.indexOf(t.nav.ProjectID)
}

// replace swaps in a new list with the project at i rewritten by fn.
func (t *Tracker) replace(i int, fn func(p model.Project) model.Project) {
	next := make([]model.Project, len(t.projects))
	copy(next, t.projects)
	next[i] = fn(next[i].Clone())
	t.projects = next
}
