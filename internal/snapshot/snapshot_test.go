package snapshot

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/devdesign-studio/internal/model"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	img := "data:image/png;base64,iVBORw0KGgo="
	a := model.NewProject("Acme", "https://figma.com/file/acme", "https://acme.example")
	a.ProfileImage = &img
	a.Guidelines[4].Checked = true
	a.Todos = append(a.Todos, model.Todo{ID: model.NewID(), Text: "Kickoff", Date: "2024-05-01", Time: "09:00"})
	b := model.NewProject("Beta", "", "")
	b.Archived = true

	in := []model.Project{a, b}
	data, err := Encode(in)
	require.NoError(t, err)

	out, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncodeNilIsEmptyArray(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDecodeEmptyArray(t *testing.T) {
	out, err := Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestDecodeLegacyNumericIDs(t *testing.T) {
	legacy := `[{
		"id": 1714557600000,
		"name": "Legacy",
		"archived": false,
		"profileImage": null,
		"figmaUrl": "",
		"websiteUrl": "",
		"color": "pink",
		"guidelines": [{"id": 1, "num": "01", "text": "A", "checked": true}],
		"workflow": [],
		"todos": [{"id": 1714557600123, "text": "T", "checked": false, "date": "", "required": false}]
	}]`

	out, err := Decode([]byte(legacy))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, model.ID("1714557600000"), out[0].ID)
	assert.Equal(t, model.ID("1"), out[0].Guidelines[0].ID)
	assert.Equal(t, model.ID("1714557600123"), out[0].Todos[0].ID)
	assert.Equal(t, model.ColorPink, out[0].Color)
}

func TestDecodeAllowsSameItemIDAcrossCollections(t *testing.T) {
	blob := `[{"id": "x", "name": "n",
		"guidelines": [{"id": 1, "num": "01", "text": "g", "checked": false}],
		"workflow": [{"id": 1, "num": "01", "text": "w", "checked": false}]}]`
	_, err := Decode([]byte(blob))
	assert.NoError(t, err)
}

func TestEncodeKeepsMarkupUnescaped(t *testing.T) {
	data, err := Encode([]model.Project{model.NewProject("Acme", "", "")})
	require.NoError(t, err)
	assert.Contains(t, string(data), "JavaScript vor </body> laden")
	assert.NotContains(t, string(data), `\u003c`)
	assert.NotEqual(t, byte('\n'), data[len(data)-1])
}

func TestDecodeFillsMissingCollections(t *testing.T) {
	out, err := Decode([]byte(`[{"id": "p1", "name": "Bare"}]`))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotNil(t, out[0].Guidelines)
	assert.NotNil(t, out[0].Workflow)
	assert.NotNil(t, out[0].Todos)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"not json", `{not json`},
		{"empty", ``},
		{"object instead of list", `{"id": "x"}`},
		{"missing name", `[{"id": "x"}]`},
		{"wrong type", `[{"id": "x", "name": 5}]`},
		{"bad todo", `[{"id": "x", "name": "n", "todos": [{"id": "t"}]}]`},
		{"bool id", `[{"id": true, "name": "n"}]`},
		{"trailing data", `[] []`},
		{"duplicate project id", `[{"id": "x", "name": "a"}, {"id": "x", "name": "b"}]`},
		{"duplicate legacy project id", `[{"id": 7, "name": "a"}, {"id": "7", "name": "b"}]`},
		{"duplicate todo id", `[{"id": "x", "name": "n", "todos": [
			{"id": "t", "text": "a", "checked": false},
			{"id": "t", "text": "b", "checked": false}]}]`},
		{"duplicate guideline id", `[{"id": "x", "name": "n", "guidelines": [
			{"id": 1, "num": "01", "text": "a", "checked": false},
			{"id": 1, "num": "02", "text": "b", "checked": false}]}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.blob))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestFileName(t *testing.T) {
	day := time.Date(2024, 5, 1, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "devdesign-studio-backup-2024-05-01.json", FileName(day))
}

func TestWriteAndReadFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "backups")
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	in := []model.Project{model.NewProject("Acme", "", "")}

	path, err := WriteFile(dir, in, day)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "devdesign-studio-backup-2024-05-01.json"), path)

	out, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformed)
}
