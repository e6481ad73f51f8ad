package tracker

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nhle/devdesign-studio/internal/snapshot"
)

// ExportSnapshot returns the full project list as indented JSON.
func (t *Tracker) ExportSnapshot() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return snapshot.Encode(t.projects)
}

// Export writes the snapshot to w.
func (t *Tracker) Export(w io.Writer) error {
	data, err := t.ExportSnapshot()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ExportFile writes a dated backup into dir and returns its path.
func (t *Tracker) ExportFile(dir string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	path, err := snapshot.WriteFile(dir, t.projects, t.now())
	if err != nil {
		return "", err
	}
	t.logger.Info("exported projects", "path", path, "count", len(t.projects))
	return path, nil
}

// ImportSnapshot replaces the whole project list with the decoded blob.
// On a malformed blob the error wraps snapshot.ErrMalformed and nothing
// changes. If the selected project is gone afterwards, navigation returns
// to the project list.
func (t *Tracker) ImportSnapshot(ctx context.Context, blob []byte) error {
	projects, err := snapshot.Decode(blob)
	if err != nil {
		t.logger.Warn("import rejected", "err", err)
		return fmt.Errorf("importing projects: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.projects = projects
	if t.selectedIndex() < 0 {
		t.nav = t.nav.Reset()
	}
	t.persist(ctx)
	t.logger.Info("imported projects", "count", len(projects))
	return nil
}

// ImportFile reads path and imports it.
func (t *Tracker) ImportFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading import file %s: %w", path, err)
	}
	return t.ImportSnapshot(ctx, data)
}
