package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/lfsguard/internal/domain/commands"
	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

// InstallController handles the "install" subcommand.
type InstallController struct {
	command commands.Install
	locator repositories.LocatorRepository
}

// NewInstallController creates a new InstallController.
func NewInstallController(command commands.Install, locator repositories.LocatorRepository) *InstallController {
	return &InstallController{command: command, locator: locator}
}

// GetBind returns the Cobra command metadata for the install controller.
func (it *InstallController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "install",
		Short: "Install the Git LFS filters or repository hooks",
		Long: `Install the global Git LFS filters ("git lfs install --skip-repo").
With --hooks, install the hooks of the repository given by --repo instead.

Running it again leaves the same configuration. --force overwrites
existing hooks and filters.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags adds the install flags to the given Cobra command.
func (it *InstallController) AddFlags(cmd *cobra.Command) {
	addRepoFlag(cmd)
	cmd.Flags().Bool("hooks", false, "Install the hooks of the repository instead of the global filters")
	cmd.Flags().BoolP("force", "f", false, "Overwrite existing hooks and filters")
}

// Execute runs the requested installation.
func (it *InstallController) Execute(cmd *cobra.Command, _ []string) error {
	hooks, _ := cmd.Flags().GetBool("hooks")
	force, _ := cmd.Flags().GetBool("force")

	if !hooks {
		if err := it.command.InstallGlobalFilters(cmd.Context(), force); err != nil {
			return reportError("Install", err)
		}
		return nil
	}

	repo, err := resolveRepository(cmd, it.locator)
	if err != nil {
		return reportError("Install", err)
	}
	if err = it.command.InstallRepositoryHooks(cmd.Context(), repo, force); err != nil {
		return reportError("Install", err)
	}
	return nil
}
