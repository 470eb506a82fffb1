//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

// StubLocatorRepository implements repositories.LocatorRepository with a fixed answer.
type StubLocatorRepository struct {
	Repository entities.Repository
	LocateErr  error
	// spy: paths requested
	LocatedPaths []string
}

var _ repositories.LocatorRepository = (*StubLocatorRepository)(nil)

func (s *StubLocatorRepository) Locate(path string) (entities.Repository, error) {
	s.LocatedPaths = append(s.LocatedPaths, path)
	if s.LocateErr != nil {
		return entities.Repository{}, s.LocateErr
	}
	return s.Repository, nil
}
