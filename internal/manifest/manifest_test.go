package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuild_ProgramOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	program := writeTestFile(t, dir, "blink.py", "print('hi')")

	m, err := Build(program, nil)
	require.NoError(t, err)

	require.Len(t, m.Files, 1)
	f := m.Files[0]
	assert.Equal(t, ProgramName, f.Name, "program is renamed to the fixed entry name")
	assert.Equal(t, program, f.Path)
	assert.Equal(t, int64(11), f.Size)
	assert.True(t, f.Program)
}

func TestBuild_WithLibraries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	program := writeTestFile(t, dir, "main.py", "pass")

	libDir := filepath.Join(dir, "lib")
	require.NoError(t, os.Mkdir(libDir, 0o755))
	writeTestFile(t, libDir, "b.py", "bb")
	writeTestFile(t, libDir, "a.py", "aaa")

	m, err := Build(program, []string{libDir})
	require.NoError(t, err)

	require.Len(t, m.Files, 3)
	assert.True(t, m.Files[0].Program, "program entry comes first")
	assert.Equal(t, "a.py", m.Files[1].Name, "libraries sorted by name")
	assert.Equal(t, "b.py", m.Files[2].Name)
	assert.Equal(t, int64(3), m.Files[1].Size)
	assert.False(t, m.Files[1].Program)
}

func TestBuild_LibraryScanIsShallow(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	program := writeTestFile(t, dir, "main.py", "pass")

	libDir := filepath.Join(dir, "lib")
	nested := filepath.Join(libDir, "nested")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	writeTestFile(t, libDir, "top.py", "x")
	writeTestFile(t, nested, "deep.py", "y")
	writeTestFile(t, libDir, ".hidden", "z")

	m, err := Build(program, []string{libDir})
	require.NoError(t, err)

	require.Len(t, m.Files, 2)
	assert.Equal(t, "top.py", m.Files[1].Name, "subdirectories and hidden files are skipped")
}

func TestBuild_MissingProgram(t *testing.T) {
	t.Parallel()

	_, err := Build(filepath.Join(t.TempDir(), "missing.py"), nil)
	require.Error(t, err)
}

func TestBuild_ProgramIsDirectory(t *testing.T) {
	t.Parallel()

	_, err := Build(t.TempDir(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestBuild_MissingLibDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	program := writeTestFile(t, dir, "main.py", "pass")

	_, err := Build(program, []string{filepath.Join(dir, "absent")})
	require.Error(t, err)
}
