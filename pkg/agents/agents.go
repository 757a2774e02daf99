// Package agents reads the persona documents shipped in the agent
// repository: Markdown files with a YAML front matter block. The tool
// never interprets the persona text itself; it only surfaces metadata
// and the raw body.
package agents

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/agentlink/pkg/errors"
	"github.com/arthur-debert/agentlink/pkg/logging"
)

// DirName is the repository subdirectory holding persona documents.
const DirName = "agents"

const frontMatterDelim = "---"

// Definition is the YAML front matter of a persona document.
type Definition struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Model       string   `yaml:"model,omitempty"`
	Tools       []string `yaml:"tools,omitempty"`

	// Path is where the document lives on disk. Not part of the
	// front matter.
	Path string `yaml:"-"`
}

// List scans <repoRoot>/agents for persona documents and returns their
// definitions sorted by name. Files without front matter are listed
// under their file name with no description.
func List(repoRoot string) ([]Definition, error) {
	logger := logging.GetLogger("agents")
	dir := filepath.Join(repoRoot, DirName)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrNotFound, "repository has no %s directory", DirName)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", dir)
	}

	var defs []Definition
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		if strings.EqualFold(entry.Name(), "README.md") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		def, _, err := Load(path)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable persona document")
			continue
		}
		defs = append(defs, def)
	}

	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, nil
}

// Find returns the definition and body for the named persona.
func Find(repoRoot, name string) (Definition, string, error) {
	path := filepath.Join(repoRoot, DirName, name+".md")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Definition{}, "", errors.Newf(errors.ErrAgentNotFound, "no agent named %q", name)
		}
		return Definition{}, "", errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
	}
	return Load(path)
}

// Load reads one persona document, returning its definition and the
// Markdown body after the front matter block.
func Load(path string) (Definition, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}

	def := Definition{Path: path}
	matter, body := splitFrontMatter(string(data))
	if matter == "" {
		// No front matter: fall back to the file name.
		def.Name = strings.TrimSuffix(filepath.Base(path), ".md")
		return def, body, nil
	}

	if err := yaml.Unmarshal([]byte(matter), &def); err != nil {
		return Definition{}, "", errors.Wrapf(err, errors.ErrAgentParse, "invalid front matter in %s", path)
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), ".md")
	}
	def.Path = path
	return def, body, nil
}

// splitFrontMatter separates a leading "---" delimited YAML block from
// the Markdown body. Returns an empty matter string when the document
// has no front matter.
func splitFrontMatter(content string) (matter, body string) {
	trimmed := strings.TrimPrefix(content, "\ufeff")
	if !strings.HasPrefix(trimmed, frontMatterDelim+"\n") && trimmed != frontMatterDelim {
		return "", content
	}

	rest := strings.TrimPrefix(trimmed, frontMatterDelim+"\n")
	end := strings.Index(rest, "\n"+frontMatterDelim)
	if end < 0 {
		return "", content
	}

	matter = rest[:end]
	body = rest[end+len("\n"+frontMatterDelim):]
	// Drop the delimiter's trailing newline if present.
	body = strings.TrimPrefix(body, "\n")
	return matter, body
}
