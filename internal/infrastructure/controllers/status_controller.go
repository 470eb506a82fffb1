package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/lfsguard/internal/domain/commands"
	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

// StatusController handles the "status" subcommand.
type StatusController struct {
	query   commands.Query
	install commands.Install
	locator repositories.LocatorRepository
}

// NewStatusController creates a new StatusController.
func NewStatusController(
	query commands.Query,
	install commands.Install,
	locator repositories.LocatorRepository,
) *StatusController {
	return &StatusController{query: query, install: install, locator: locator}
}

// GetBind returns the Cobra command metadata for the status controller.
func (it *StatusController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "status [path]...",
		Short: "Show whether Git LFS is installed and in use",
		Long: `Report whether git-lfs is installed and whether the repository tracks
any pattern. With paths, also report which of them the lfs filter applies to.`,
		Args: cobra.ArbitraryArgs,
	}
}

// AddFlags adds the status flags to the given Cobra command.
func (it *StatusController) AddFlags(cmd *cobra.Command) {
	addRepoFlag(cmd)
}

// Execute prints the LFS status of the repository.
func (it *StatusController) Execute(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	installed := it.install.IsToolInstalled(ctx)
	_, _ = fmt.Fprintf(out, "git-lfs installed: %v\n", installed)
	if !installed {
		return nil
	}

	repo, err := resolveRepository(cmd, it.locator)
	if err != nil {
		return reportError("Status", err)
	}

	using, err := it.query.IsAnyPatternTracked(ctx, repo)
	if err != nil {
		return reportError("Status", err)
	}
	_, _ = fmt.Fprintf(out, "using LFS: %v\n", using)

	for _, path := range args {
		tracked, trackedErr := it.query.IsPathTracked(ctx, repo, path)
		if trackedErr != nil {
			return reportError("Status", trackedErr)
		}
		_, _ = fmt.Fprintf(out, "%s: %v\n", path, tracked)
	}
	return nil
}
