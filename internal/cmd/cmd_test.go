package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const implSnapshot = `{
  "version": 1,
  "frameworks": ["react"],
  "components": [
    {
      "name": "Button",
      "source": {"kind": "framework-component", "framework": "react", "filePath": "src/Button.tsx"},
      "props": [{"name": "size", "type": "string", "required": true}]
    }
  ]
}`

const designSnapshot = `{
  "version": 1,
  "components": [
    {
      "name": "Button",
      "source": {"kind": "design-tool-node", "filePath": "library.fig", "nodeId": "1:2"},
      "props": [{"name": "size", "type": "string", "required": true}]
    }
  ]
}`

func writeSnapshot(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "driftscope.yaml")
	content := fmt.Sprintf("baselinePath: %s\n", filepath.Join(dir, "baseline.json"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func TestCompareCommandNoDrift(t *testing.T) {
	dir := t.TempDir()
	impl := writeSnapshot(t, dir, "impl.json", implSnapshot)
	design := writeSnapshot(t, dir, "design.json", designSnapshot)
	cfg := writeConfig(t, dir)

	err := execute("compare", "--impl", impl, "--design", design, "--config", cfg, "-f", "json")

	assert.NoError(t, err)
}

func TestCompareCommandInvalidFailOn(t *testing.T) {
	dir := t.TempDir()
	impl := writeSnapshot(t, dir, "impl.json", implSnapshot)
	design := writeSnapshot(t, dir, "design.json", designSnapshot)

	err := execute("compare", "--impl", impl, "--design", design, "--fail-on", "blocker")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fail-on")
}

func TestCompareCommandMissingSnapshot(t *testing.T) {
	dir := t.TempDir()
	impl := writeSnapshot(t, dir, "impl.json", implSnapshot)

	err := execute("compare", "--impl", impl, "--design", filepath.Join(dir, "nope.json"),
		"--config", writeConfig(t, dir), "-f", "json")

	assert.Error(t, err)
}

func TestBaselineAcceptAndShow(t *testing.T) {
	dir := t.TempDir()
	impl := writeSnapshot(t, dir, "impl.json", implSnapshot)
	cfg := writeConfig(t, dir)

	require.NoError(t, execute("baseline", "accept", "--impl", impl, "--analyze", "--config", cfg))

	_, err := os.Stat(filepath.Join(dir, "baseline.json"))
	require.NoError(t, err, "accept writes the baseline file")

	assert.NoError(t, execute("baseline", "show", "--config", cfg))
}

func TestBaselineAcceptRequiresScope(t *testing.T) {
	dir := t.TempDir()
	impl := writeSnapshot(t, dir, "impl.json", implSnapshot)

	// flag variables persist across executions in one process
	err := execute("baseline", "accept", "--impl", impl, "--analyze=false", "--config", writeConfig(t, dir))

	assert.Error(t, err, "needs --design or --analyze")
}

func TestVersionCommand(t *testing.T) {
	assert.NoError(t, execute("version", "--short"))
}
