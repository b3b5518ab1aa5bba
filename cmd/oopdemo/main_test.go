package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/oopconcepts/internal/demo"
)

func TestList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"list"}, &stdout, &stderr))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, len(demo.All()))
	assert.True(t, strings.HasPrefix(lines[0], "object-literal "))
}

func TestRunSelectedWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nheaders = false\n[values]\nassigned = 40\n"), 0o644))

	var stdout, stderr bytes.Buffer
	err := run([]string{"run", "-config", path, "constructor-param"}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "get value\n20\nSetting value to 40\nget value\n40\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demos:\n  only: [super-required]\n"), 0o644))

	var stdout, stderr bytes.Buffer
	err := run([]string{"run", "-config", path, "-no-headers", "-show-failures", "-v"}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Child constructor\n✗ ")
	assert.NotContains(t, stdout.String(), "━━━")
	assert.Contains(t, stderr.String(), "[demo super-required] done")
}

func TestFlagsOverrideConfigBothWays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.toml")
	body := "[output]\nheaders = false\nverbose = true\n[demos]\nshow_failures = true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	var stdout, stderr bytes.Buffer
	err := run([]string{"run", "-config", path, "-show-failures=false", "-v=false", "super-required"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "Child constructor\n", stdout.String())
	assert.Empty(t, stderr.String())

	stdout.Reset()
	err = run([]string{"run", "-config", path, "-no-headers=false", "-show-failures=false", "-v=false", "methods"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "\n━━━ Métodos ━━━\nmethod1\n10\n", stdout.String())

	stdout.Reset()
	err = run([]string{"run", "-config", path, "-v=false", "super-required"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "✗ ", "unset flags leave the file's value alone")
}

func TestRunUnknownDemo(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"run", "-config", writeEmptyTOML(t), "nope"}, &stdout, &stderr)
	assert.ErrorIs(t, err, demo.ErrUnknownDemo)
}

func TestUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"frobnicate"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "usage: oopdemo")
}

func TestHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"help"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "-show-failures")
}

func writeEmptyTOML(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "empty.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	return path
}
