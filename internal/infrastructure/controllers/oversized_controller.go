package controllers

import (
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/lfsguard/internal/domain/commands"
	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

// OversizedController handles the "oversized" subcommand.
type OversizedController struct {
	command  commands.Oversized
	locator  repositories.LocatorRepository
	settings *entities.Settings
}

// NewOversizedController creates a new OversizedController.
func NewOversizedController(
	command commands.Oversized,
	locator repositories.LocatorRepository,
	settings *entities.Settings,
) *OversizedController {
	return &OversizedController{command: command, locator: locator, settings: settings}
}

// GetBind returns the Cobra command metadata for the oversized controller.
func (it *OversizedController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "oversized <path>...",
		Short: "Find files too large to commit without Git LFS",
		Long: `Print the given paths that exceed the size limit (100 MiB by default)
and are not yet tracked by Git LFS.

With --track, track them by extension and stage .gitattributes.`,
		Args: cobra.MinimumNArgs(1),
	}
}

// AddFlags adds the oversized flags to the given Cobra command.
func (it *OversizedController) AddFlags(cmd *cobra.Command) {
	addRepoFlag(cmd)
	cmd.Flags().Int64("limit", 0, "Size limit in bytes (default from config)")
	cmd.Flags().Bool("track", false, "Track the oversized files with Git LFS")
	cmd.Flags().Int("concurrency", 0, "Attribute queries in flight (default from config, 1 = sequential)")
}

// Execute lists or tracks the oversized files.
func (it *OversizedController) Execute(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt64("limit")
	track, _ := cmd.Flags().GetBool("track")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if concurrency == 0 && it.settings != nil {
		concurrency = it.settings.Concurrency
	}
	opts := commands.OversizedOptions{Limit: limit, Concurrency: concurrency}

	repo, err := resolveRepository(cmd, it.locator)
	if err != nil {
		return reportError("Oversized check", err)
	}

	if track {
		patterns, trackErr := it.command.TrackOversized(cmd.Context(), repo, args, opts)
		if trackErr != nil {
			return reportError("Oversized tracking", trackErr)
		}
		if len(patterns) > 0 {
			logger.Infof("Now tracking: %s", strings.Join(patterns, ", "))
		}
		printLines(cmd.OutOrStdout(), patterns)
		return nil
	}

	oversized, err := it.command.FindOversized(cmd.Context(), repo, args, opts)
	if err != nil {
		return reportError("Oversized check", err)
	}
	printLines(cmd.OutOrStdout(), oversized)
	return nil
}
