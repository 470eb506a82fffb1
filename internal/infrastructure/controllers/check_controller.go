package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/lfsguard/internal/domain/commands"
	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

// CheckController handles the "check" subcommand.
type CheckController struct {
	command  commands.Query
	locator  repositories.LocatorRepository
	settings *entities.Settings
}

// NewCheckController creates a new CheckController.
func NewCheckController(
	command commands.Query,
	locator repositories.LocatorRepository,
	settings *entities.Settings,
) *CheckController {
	return &CheckController{command: command, locator: locator, settings: settings}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check <path>...",
		Short: "List the paths Git LFS does not cover",
		Long: `Run "git check-attr filter" for each path and print the ones the lfs
filter does not apply to, in the order given.

Queries run one at a time unless --concurrency is above 1.
With --strict the command fails when any path is untracked.`,
		Args: cobra.MinimumNArgs(1),
	}
}

// AddFlags adds the check flags to the given Cobra command.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	addRepoFlag(cmd)
	cmd.Flags().Int("concurrency", 0, "Attribute queries in flight (default from config, 1 = sequential)")
	cmd.Flags().Bool("strict", false, "Exit with an error when any path is not tracked")
}

// Execute prints the untracked paths.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) error {
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	strict, _ := cmd.Flags().GetBool("strict")
	if concurrency == 0 && it.settings != nil {
		concurrency = it.settings.Concurrency
	}

	repo, err := resolveRepository(cmd, it.locator)
	if err != nil {
		return reportError("Check", err)
	}

	untracked, err := it.command.FilterUntracked(cmd.Context(), repo, args, commands.FilterOptions{
		Concurrency: concurrency,
	})
	if err != nil {
		return reportError("Check", err)
	}

	printLines(cmd.OutOrStdout(), untracked)
	if len(untracked) > 0 {
		logger.Infof("%d of %d path(s) are not tracked by LFS", len(untracked), len(args))
		if strict {
			return fmt.Errorf("%d path(s) are not tracked by LFS", len(untracked))
		}
	}
	return nil
}
