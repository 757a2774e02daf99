// Package paths provides centralized path handling for agentlink.
// It resolves the agent repository root and the target configuration
// directory, and provides a consistent API for all path operations
// in the codebase.
package paths

import (
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	"github.com/arthur-debert/agentlink/pkg/errors"
)

// Environment variable names
const (
	// EnvRepoRoot overrides repository root discovery
	EnvRepoRoot = "AGENTLINK_ROOT"

	// EnvTargetDir overrides the target configuration directory
	EnvTargetDir = "AGENTLINK_TARGET"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// DefaultTargetDirName is the configuration directory name under the
// operator's home that the assistant reads from.
const DefaultTargetDirName = ".claude"

// Paths provides centralized path management for agentlink
type Paths struct {
	repoRoot     string
	targetDir    string
	usedFallback bool
}

// New creates a new Paths instance with the given repository root.
// If repoRoot is empty, it will be determined from the environment,
// then from git worktree discovery, then from the current directory.
func New(repoRoot string) (*Paths, error) {
	p := &Paths{}

	if repoRoot == "" {
		root, usedFallback, err := findRepoRoot()
		if err != nil {
			return nil, err
		}
		p.repoRoot = root
		p.usedFallback = usedFallback
	} else {
		expanded, err := ExpandHome(repoRoot)
		if err != nil {
			return nil, err
		}
		p.repoRoot = expanded
	}

	absRoot, err := filepath.Abs(p.repoRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRepoAccess, "failed to get absolute path for repository root")
	}
	p.repoRoot = absRoot

	targetDir, err := findTargetDir()
	if err != nil {
		return nil, err
	}
	p.targetDir = targetDir

	return p, nil
}

// RepoRoot returns the agent repository root directory.
func (p *Paths) RepoRoot() string {
	return p.repoRoot
}

// TargetDir returns the target configuration directory.
func (p *Paths) TargetDir() string {
	return p.targetDir
}

// UsedFallback reports whether repository discovery fell back to the
// current working directory.
func (p *Paths) UsedFallback() bool {
	return p.usedFallback
}

// SourcePath returns the repository path backing the given mapping name.
func (p *Paths) SourcePath(name string) string {
	return filepath.Join(p.repoRoot, name)
}

// TargetPath returns the linked location for the given mapping name.
func (p *Paths) TargetPath(name string) string {
	return filepath.Join(p.targetDir, name)
}

// findRepoRoot resolves the repository root. Precedence: AGENTLINK_ROOT,
// git worktree discovery from the working directory, then cwd as a
// fallback (flagged so callers can warn).
func findRepoRoot() (string, bool, error) {
	if root := os.Getenv(EnvRepoRoot); root != "" {
		expanded, err := ExpandHome(root)
		if err != nil {
			return "", false, err
		}
		return expanded, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrRepoAccess, "failed to get current directory")
	}

	if root, err := gitWorktreeRoot(cwd); err == nil {
		return root, false, nil
	}

	return cwd, true, nil
}

// gitWorktreeRoot walks up from path to find the enclosing git worktree root.
func gitWorktreeRoot(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRepoNotFound, "no git repository found from %s", path)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRepoAccess, "failed to get worktree")
	}

	return worktree.Filesystem.Root(), nil
}

// findTargetDir resolves the target configuration directory. Precedence:
// AGENTLINK_TARGET, then <home>/.claude.
func findTargetDir() (string, error) {
	if target := os.Getenv(EnvTargetDir); target != "" {
		return ExpandHome(target)
	}

	home, err := GetHomeDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultTargetDirName), nil
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment
// variable. If both fail, it returns an error rather than using dangerous
// defaults.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv(EnvHome)
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrFileAccess, "unable to determine home directory: neither os.UserHomeDir() nor HOME environment variable are available")
}

// ExpandHome expands the ~ character to the user's home directory.
// Returns an error if home directory cannot be determined.
func ExpandHome(path string) (string, error) {
	if path == "~" {
		return GetHomeDirectory()
	}

	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		homeDir, err := GetHomeDirectory()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "cannot expand ~")
		}
		return filepath.Join(homeDir, path[2:]), nil
	}

	return path, nil
}
