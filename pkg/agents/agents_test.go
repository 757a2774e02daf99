package agents

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/agentlink/pkg/errors"
)

const reviewerDoc = `---
name: code-reviewer
description: Reviews pull requests with a focus on correctness.
model: sonnet
tools:
  - read
  - grep
---

# Code Reviewer

You are a meticulous code reviewer.
`

func writeAgent(t *testing.T, repoRoot, filename, content string) {
	t.Helper()
	dir := filepath.Join(repoRoot, DirName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644))
}

func TestLoadParsesFrontMatter(t *testing.T) {
	repoRoot := t.TempDir()
	writeAgent(t, repoRoot, "code-reviewer.md", reviewerDoc)

	def, body, err := Load(filepath.Join(repoRoot, DirName, "code-reviewer.md"))
	require.NoError(t, err)

	assert.Equal(t, "code-reviewer", def.Name)
	assert.Equal(t, "Reviews pull requests with a focus on correctness.", def.Description)
	assert.Equal(t, "sonnet", def.Model)
	assert.Equal(t, []string{"read", "grep"}, def.Tools)
	assert.Contains(t, body, "# Code Reviewer")
	assert.NotContains(t, body, "name: code-reviewer")
}

func TestLoadWithoutFrontMatter(t *testing.T) {
	repoRoot := t.TempDir()
	writeAgent(t, repoRoot, "plain.md", "# Just a document\n")

	def, body, err := Load(filepath.Join(repoRoot, DirName, "plain.md"))
	require.NoError(t, err)

	assert.Equal(t, "plain", def.Name)
	assert.Empty(t, def.Description)
	assert.Equal(t, "# Just a document\n", body)
}

func TestLoadInvalidFrontMatter(t *testing.T) {
	repoRoot := t.TempDir()
	writeAgent(t, repoRoot, "broken.md", "---\nname: [unclosed\n---\nbody\n")

	_, _, err := Load(filepath.Join(repoRoot, DirName, "broken.md"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAgentParse))
}

func TestListSortsAndSkips(t *testing.T) {
	repoRoot := t.TempDir()
	writeAgent(t, repoRoot, "zeta.md", "---\nname: zeta\ndescription: z\n---\nbody\n")
	writeAgent(t, repoRoot, "alpha.md", "---\nname: alpha\ndescription: a\n---\nbody\n")
	writeAgent(t, repoRoot, "README.md", "# About these agents\n")
	writeAgent(t, repoRoot, "notes.txt", "not markdown")

	defs, err := List(repoRoot)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, "alpha", defs[0].Name)
	assert.Equal(t, "zeta", defs[1].Name)
}

func TestListMissingDirectory(t *testing.T) {
	_, err := List(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestFind(t *testing.T) {
	repoRoot := t.TempDir()
	writeAgent(t, repoRoot, "code-reviewer.md", reviewerDoc)

	def, body, err := Find(repoRoot, "code-reviewer")
	require.NoError(t, err)
	assert.Equal(t, "code-reviewer", def.Name)
	assert.Contains(t, body, "meticulous")

	_, _, err = Find(repoRoot, "nonexistent")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAgentNotFound))
}

func TestSplitFrontMatterEdgeCases(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantMatter string
		wantBody   string
	}{
		{"empty document", "", "", ""},
		{"delimiter only", "---\n", "", "---\n"},
		{"unclosed front matter", "---\nname: x\n", "", "---\nname: x\n"},
		{"closing delimiter at EOF", "---\nname: x\n---", "name: x", ""},
		{"body preserved", "---\nname: x\n---\nhello\n", "name: x", "hello\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matter, body := splitFrontMatter(tt.content)
			assert.Equal(t, tt.wantMatter, matter)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
