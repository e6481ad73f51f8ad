// Package snapshot encodes and decodes the full project list used for
// backups and durable persistence.
package snapshot

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nhle/devdesign-studio/internal/model"
)

// FilePrefix starts every backup file name.
const FilePrefix = "devdesign-studio-backup-"

// ErrMalformed is returned when a blob is not a valid project list.
var ErrMalformed = errors.New("malformed snapshot")

//go:embed schema.json
var schemaJSON string

const schemaURL = "snapshot.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("loading snapshot schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(schemaURL)
	})
	return schema, schemaErr
}

// Encode serializes projects as indented JSON with HTML characters left
// unescaped. A nil list encodes as [].
func Encode(projects []model.Project) ([]byte, error) {
	if projects == nil {
		projects = []model.Project{}
	}
	out := make([]model.Project, len(projects))
	for i, p := range projects {
		out[i] = normalize(p)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode parses and validates a project list. Project IDs must be unique,
// as must item IDs within each collection of a project. Any failure wraps
// ErrMalformed.
func Decode(blob []byte) ([]model.Project, error) {
	dec := json.NewDecoder(bytes.NewReader(blob))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after project list", ErrMalformed)
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	if err := sch.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var projects []model.Project
	if err := json.Unmarshal(blob, &projects); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := checkUniqueIDs(projects); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for i := range projects {
		projects[i] = normalize(projects[i])
	}
	if projects == nil {
		projects = []model.Project{}
	}
	return projects, nil
}

// FileName returns the backup file name for the given day.
func FileName(now time.Time) string {
	return FilePrefix + now.Format("2006-01-02") + ".json"
}

// WriteFile writes projects to a dated backup file in dir and returns its
// path.
func WriteFile(dir string, projects []model.Project, now time.Time) (string, error) {
	data, err := Encode(projects)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, FileName(now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing backup %s: %w", path, err)
	}
	return path, nil
}

// ReadFile reads and decodes a backup file.
func ReadFile(path string) ([]model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading backup %s: %w", path, err)
	}
	return Decode(data)
}

// normalize replaces missing collections with empty ones so every encoded
// project validates against the schema.
func normalize(p model.Project) model.Project {
	if p.Guidelines == nil {
		p.Guidelines = []model.ChecklistItem{}
	}
	if p.Workflow == nil {
		p.Workflow = []model.ChecklistItem{}
	}
	if p.Todos == nil {
		p.Todos = []model.Todo{}
	}
	if p.ProfileImage != nil && *p.ProfileImage == "" {
		p.ProfileImage = nil
	}
	return p
}

func checkUniqueIDs(projects []model.Project) error {
	seen := make(map[model.ID]bool, len(projects))
	for _, p := range projects {
		if seen[p.ID] {
			return fmt.Errorf("duplicate project id %q", p.ID)
		}
		seen[p.ID] = true

		if id, ok := duplicateItemID(p.Guidelines); ok {
			return fmt.Errorf("project %q: duplicate guideline id %q", p.ID, id)
		}
		if id, ok := duplicateItemID(p.Workflow); ok {
			return fmt.Errorf("project %q: duplicate workflow id %q", p.ID, id)
		}
		todoIDs := make(map[model.ID]bool, len(p.Todos))
		for _, t := range p.Todos {
			if todoIDs[t.ID] {
				return fmt.Errorf("project %q: duplicate todo id %q", p.ID, t.ID)
			}
			todoIDs[t.ID] = true
		}
	}
	return nil
}

func duplicateItemID(items []model.ChecklistItem) (model.ID, bool) {
	seen := make(map[model.ID]bool, len(items))
	for _, it := range items {
		if seen[it.ID] {
			return it.ID, true
		}
		seen[it.ID] = true
	}
	return "", false
}
