//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/lfsguard/internal/domain/commands"
	"github.com/rios0rios0/lfsguard/internal/domain/entities"
)

// StubInstallCommand is a stub implementation of commands.Install.
type StubInstallCommand struct {
	Installed bool

	Version    string
	VersionErr error

	GlobalCallCount int
	GlobalErr       error
	LastGlobalForce bool

	HooksCallCount int
	HooksErr       error
	LastHooksRepo  entities.Repository
	LastHooksForce bool
}

var _ commands.Install = (*StubInstallCommand)(nil)

func (s *StubInstallCommand) IsToolInstalled(_ context.Context) bool {
	return s.Installed
}

func (s *StubInstallCommand) ToolVersion(_ context.Context) (string, error) {
	return s.Version, s.VersionErr
}

func (s *StubInstallCommand) InstallGlobalFilters(_ context.Context, force bool) error {
	s.GlobalCallCount++
	s.LastGlobalForce = force
	return s.GlobalErr
}

func (s *StubInstallCommand) InstallRepositoryHooks(
	_ context.Context,
	repo entities.Repository,
	force bool,
) error {
	s.HooksCallCount++
	s.LastHooksRepo = repo
	s.LastHooksForce = force
	return s.HooksErr
}
