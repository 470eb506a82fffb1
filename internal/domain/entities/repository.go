package entities

import (
	"fmt"
	"path/filepath"
)

// GitAttributesFile is the repository-relative metadata file rewritten by `git lfs track`.
const GitAttributesFile = ".gitattributes"

// Repository is a handle to the root of a Git working tree on disk.
// Nothing in this module mutates or persists it; only Path is read.
type Repository struct {
	Path string
}

// NewRepository builds a Repository from any path, making it absolute.
func NewRepository(path string) (Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return Repository{}, fmt.Errorf("invalid repository path %q: %w", path, err)
	}
	return Repository{Path: absPath}, nil
}

// GitAttributesPath returns the absolute path of the repository's .gitattributes file.
func (r Repository) GitAttributesPath() string {
	return filepath.Join(r.Path, GitAttributesFile)
}

// Join resolves a repository-relative path against the repository root.
func (r Repository) Join(relativePath string) string {
	return filepath.Join(r.Path, filepath.FromSlash(relativePath))
}
