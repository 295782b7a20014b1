package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/driftscope/internal/errors"
)

const jsonSnapshot = `{
  "version": 1,
  "frameworks": ["react"],
  "components": [
    {
      "name": "Button",
      "source": {"kind": "framework-component", "framework": "react", "filePath": "src/Button.tsx", "line": 12},
      "props": [{"name": "size", "type": "string", "required": true}]
    }
  ],
  "tokens": [
    {
      "name": "primary",
      "category": "color",
      "value": {"category": "color", "hex": "#3B82F6"},
      "source": {"kind": "token-file", "filePath": "tokens.json"}
    }
  ]
}`

const yamlSnapshot = `version: 1
components:
  - name: Card
    source:
      kind: framework-component
      framework: vue
      filePath: src/Card.vue
usage:
  componentRefs:
    Card: 3
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSONSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "impl.json", jsonSnapshot)

	snap, err := NewLoader(0).Load(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, snap.Components, 1)
	assert.Equal(t, "Button", snap.Components[0].Name)
	assert.NotEmpty(t, snap.Components[0].ID, "ids are filled in on load")

	require.Len(t, snap.Tokens, 1)
	assert.Equal(t, "#3b82f6", snap.Tokens[0].Value.Hex, "hex values are normalized")
	assert.Equal(t, []string{"react"}, snap.Frameworks)
}

func TestLoadMergesGlobMatches(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "impl.json", jsonSnapshot)
	writeFile(t, dir, "design.yaml", yamlSnapshot)

	snap, err := NewLoader(0).Load(context.Background(), filepath.Join(dir, "*"))
	require.NoError(t, err)

	require.Len(t, snap.Components, 2)
	// sorted by file then name, independent of parse order
	assert.Equal(t, "Button", snap.Components[0].Name)
	assert.Equal(t, "Card", snap.Components[1].Name)
	assert.Equal(t, []string{"react", "vue"}, snap.Frameworks)
	assert.Equal(t, 3, snap.Usage.ComponentRefs["Card"])
}

func TestLoadNoMatchesIsAnError(t *testing.T) {
	_, err := NewLoader(0).Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))

	var derr *errors.DriftscopeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, errors.ErrCodeSnapshotNotFound, derr.Code)
}

func TestLoadBrokenFileIsPartial(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.json", jsonSnapshot)
	writeFile(t, dir, "bad.json", "{broken")

	snap, err := NewLoader(0).Load(context.Background(), filepath.Join(dir, "*.json"))
	require.NoError(t, err, "one broken file must not fail the load")

	assert.Len(t, snap.Components, 1)
	require.Len(t, snap.Errors, 1)
	assert.Contains(t, snap.Errors[0].Path, "bad.json")
}

func TestLoadEmptySnapshotIsAnError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.json", `{"version": 1}`)

	_, err := NewLoader(0).Load(context.Background(), filepath.Join(dir, "empty.json"))

	var derr *errors.DriftscopeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, errors.ErrCodeSnapshotEmpty, derr.Code)
}

func TestLoadIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "impl.json", jsonSnapshot)
	writeFile(t, dir, "design.yaml", yamlSnapshot)

	first, err := NewLoader(0).Load(context.Background(), filepath.Join(dir, "*"))
	require.NoError(t, err)
	second, err := NewLoader(1).Load(context.Background(), filepath.Join(dir, "*"))
	require.NoError(t, err)

	require.Equal(t, len(first.Components), len(second.Components))
	for i := range first.Components {
		assert.Equal(t, first.Components[i].ID, second.Components[i].ID)
	}
}
