package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithExplicitRoot(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))

	p, err := New(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, tmpDir, p.RepoRoot())
	assert.False(t, p.UsedFallback())
}

func TestNewWithEnvRoot(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))
	t.Setenv(EnvRepoRoot, tmpDir)

	p, err := New("")
	require.NoError(t, err)

	assert.Equal(t, tmpDir, p.RepoRoot())
	assert.False(t, p.UsedFallback())
}

func TestNewFallsBackToCwd(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))
	t.Setenv(EnvRepoRoot, "")

	// Run from a temp dir with no enclosing git repository.
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(cwd) }()

	p, err := New("")
	require.NoError(t, err)

	assert.True(t, p.UsedFallback())
	// macOS resolves /var to /private/var, so compare resolved paths.
	resolved, err := filepath.EvalSymlinks(tmpDir)
	require.NoError(t, err)
	resolvedRoot, err := filepath.EvalSymlinks(p.RepoRoot())
	require.NoError(t, err)
	assert.Equal(t, resolved, resolvedRoot)
}

func TestTargetDirDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvTargetDir, "")

	p, err := New(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, DefaultTargetDirName), p.TargetDir())
}

func TestTargetDirEnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	custom := filepath.Join(tmpDir, "custom-config")
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))
	t.Setenv(EnvTargetDir, custom)

	p, err := New(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, custom, p.TargetDir())
}

func TestSourceAndTargetPaths(t *testing.T) {
	tmpDir := t.TempDir()
	home := filepath.Join(tmpDir, "home")
	t.Setenv("HOME", home)
	t.Setenv(EnvTargetDir, "")

	p, err := New(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, "agents"), p.SourcePath("agents"))
	assert.Equal(t, filepath.Join(home, ".claude", "skills"), p.TargetPath("skills"))
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare tilde", "~", home},
		{"tilde slash", "~/agents-repo", filepath.Join(home, "agents-repo")},
		{"absolute path untouched", "/opt/agents", "/opt/agents"},
		{"relative path untouched", "agents", "agents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandHome(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetHomeDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := GetHomeDirectory()
	require.NoError(t, err)
	assert.Equal(t, home, got)
}
