package repositories

import "github.com/rios0rios0/lfsguard/internal/domain/entities"

// LocatorRepository resolves the working-tree root containing a path.
type LocatorRepository interface {
	Locate(path string) (entities.Repository, error)
}
