package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/lfsguard/internal/domain/commands"
	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

// ListController handles the "ls" subcommand.
type ListController struct {
	command commands.Query
	locator repositories.LocatorRepository
}

// NewListController creates a new ListController.
func NewListController(command commands.Query, locator repositories.LocatorRepository) *ListController {
	return &ListController{command: command, locator: locator}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "ls",
		Short: "List the patterns tracked by Git LFS",
		Long:  `Print every pattern reported by "git lfs track", one per line, in git's order.`,
		Args:  cobra.NoArgs,
	}
}

// AddFlags adds the ls flags to the given Cobra command.
func (it *ListController) AddFlags(cmd *cobra.Command) {
	addRepoFlag(cmd)
}

// Execute prints the tracked patterns.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) error {
	repo, err := resolveRepository(cmd, it.locator)
	if err != nil {
		return reportError("List", err)
	}

	patterns, err := it.command.TrackedPatterns(cmd.Context(), repo)
	if err != nil {
		return reportError("List", err)
	}

	if len(patterns) == 0 {
		logger.Infof("No LFS patterns tracked in %s", repo.Path)
		return nil
	}
	printLines(cmd.OutOrStdout(), patterns)
	return nil
}
