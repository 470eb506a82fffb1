package commands

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

// Install is the interface for probing and installing Git LFS.
type Install interface {
	IsToolInstalled(ctx context.Context) bool
	ToolVersion(ctx context.Context) (string, error)
	InstallGlobalFilters(ctx context.Context, force bool) error
	InstallRepositoryHooks(ctx context.Context, repo entities.Repository, force bool) error
}

// InstallCommand probes for git-lfs and installs its filters and hooks.
// Both installs are idempotent: git-lfs rewrites the same configuration.
type InstallCommand struct {
	git      repositories.GitRepository
	prefs    repositories.PreferenceRepository
	settings *entities.Settings
}

// NewInstallCommand creates a new InstallCommand.
func NewInstallCommand(
	git repositories.GitRepository,
	prefs repositories.PreferenceRepository,
	settings *entities.Settings,
) *InstallCommand {
	return &InstallCommand{git: git, prefs: prefs, settings: settings}
}

// IsToolInstalled runs `git lfs version` from the neutral directory. Any
// failure means "not installed"; the error is logged, never returned.
func (it *InstallCommand) IsToolInstalled(ctx context.Context) bool {
	_, err := it.version(ctx)
	if err != nil {
		logger.Debugf("[lfs] Git LFS is not available: %v", err)
		return false
	}
	return true
}

// ToolVersion returns the canonical semantic version of the installed
// git-lfs. It fails with ErrToolNotInstalled when the probe fails and rejects
// versions older than the configured minimum.
func (it *InstallCommand) ToolVersion(ctx context.Context) (string, error) {
	stdout, err := it.version(ctx)
	if err != nil {
		return "", &entities.InvocationError{
			Kind:    entities.KindToolNotInstalled,
			Name:    "isGitLFSInstalled",
			Message: err.Error(),
			Err:     err,
		}
	}

	version := entities.ParseLFSVersion(stdout)
	if version == "" {
		return "", fmt.Errorf("unrecognised git lfs version output: %q", stdout)
	}

	minimum := ""
	if it.settings != nil {
		minimum = it.settings.MinimumLFSVersion
	}
	if !entities.MeetsMinimumVersion(version, minimum) {
		return version, fmt.Errorf("git lfs %s is older than the required %s", version, minimum)
	}
	return version, nil
}

// InstallGlobalFilters runs `git lfs install --skip-repo [--force]`.
func (it *InstallCommand) InstallGlobalFilters(ctx context.Context, force bool) error {
	args := []string{"lfs", "install", "--skip-repo"}
	if force {
		args = append(args, "--force")
	}

	const name = "installGlobalLFSFilter"
	if _, err := it.git.Run(ctx, entities.Invocation{
		Name: name,
		Dir:  it.neutralDir(),
		Args: args,
		Env:  AuthEnvironment(it.prefs),
	}); err != nil {
		return entities.ClassifyFailure(name, err)
	}

	logger.Infof("[lfs] Installed global LFS filters (force: %v)", force)
	return nil
}

// InstallRepositoryHooks runs `git lfs install [--force]` inside repo.
func (it *InstallCommand) InstallRepositoryHooks(ctx context.Context, repo entities.Repository, force bool) error {
	args := []string{"lfs", "install"}
	if force {
		args = append(args, "--force")
	}

	const name = "installLFSHooks"
	if _, err := it.git.Run(ctx, entities.Invocation{
		Name: name,
		Dir:  repo.Path,
		Args: args,
		Env:  AuthEnvironment(it.prefs),
	}); err != nil {
		return entities.ClassifyFailure(name, err)
	}

	logger.Infof("[lfs] Installed LFS hooks in %s (force: %v)", repo.Path, force)
	return nil
}

func (it *InstallCommand) version(ctx context.Context) (string, error) {
	result, err := it.git.Run(ctx, entities.Invocation{
		Name: "isGitLFSInstalled",
		Dir:  it.neutralDir(),
		Args: []string{"lfs", "version"},
		Env:  AuthEnvironment(it.prefs),
	})
	if err != nil {
		return "", err
	}
	return result.Stdout, nil
}

func (it *InstallCommand) neutralDir() string {
	if it.settings != nil && it.settings.NeutralDir != "" {
		return it.settings.NeutralDir
	}
	return os.TempDir()
}
