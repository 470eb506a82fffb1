package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

// LocatorRepository finds working-tree roots with go-git, without spawning git.
type LocatorRepository struct{}

var _ repositories.LocatorRepository = (*LocatorRepository)(nil)

// NewLocatorRepository creates a new LocatorRepository.
func NewLocatorRepository() *LocatorRepository {
	return &LocatorRepository{}
}

// Locate walks up from path to the enclosing working tree. Bare repositories
// have no working tree and are reported as not found.
func (it *LocatorRepository) Locate(path string) (entities.Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return entities.Repository{}, fmt.Errorf("invalid path %q: %w", path, err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return entities.Repository{}, notFound(absPath, err)
	}
	if err != nil {
		return entities.Repository{}, fmt.Errorf("failed to open repository at %q: %w", absPath, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return entities.Repository{}, notFound(absPath, err)
	}

	return entities.NewRepository(worktree.Filesystem.Root())
}

func notFound(path string, err error) error {
	return &entities.InvocationError{
		Kind:    entities.KindRepositoryNotFound,
		Name:    "locateRepository",
		Message: fmt.Sprintf("no git working tree contains %s", path),
		Err:     err,
	}
}
