package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	domainRepos "github.com/rios0rios0/lfsguard/internal/domain/repositories"
	gitRepo "github.com/rios0rios0/lfsguard/internal/infrastructure/repositories/git"
	prefRepo "github.com/rios0rios0/lfsguard/internal/infrastructure/repositories/preferences"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func(settings *entities.Settings) domainRepos.GitRepository {
		return gitRepo.NewProcessGitRepository(settings.GitBinary)
	}); err != nil {
		return err
	}

	if err := container.Provide(func(settings *entities.Settings) domainRepos.PreferenceRepository {
		return prefRepo.NewYAMLPreferenceRepository(settings.PreferencesFile)
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.LocatorRepository {
		return gitRepo.NewLocatorRepository()
	}); err != nil {
		return err
	}

	return nil
}
