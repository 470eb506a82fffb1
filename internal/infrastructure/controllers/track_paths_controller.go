package controllers

import (
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/lfsguard/internal/domain/commands"
	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

// TrackPathsController handles the "track-paths" subcommand.
type TrackPathsController struct {
	command commands.Track
	locator repositories.LocatorRepository
}

// NewTrackPathsController creates a new TrackPathsController.
func NewTrackPathsController(command commands.Track, locator repositories.LocatorRepository) *TrackPathsController {
	return &TrackPathsController{command: command, locator: locator}
}

// GetBind returns the Cobra command metadata for the track-paths controller.
func (it *TrackPathsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "track-paths <path>...",
		Short: "Track files with Git LFS by their extension",
		Long: `Derive one pattern per distinct extension ("*.psd") from the given
repository-relative paths, falling back to the literal path for files
without an extension, and track them.

Only the last extension counts: archive.tar.gz is tracked as "*.gz".`,
		Args: cobra.MinimumNArgs(1),
	}
}

// AddFlags adds the track-paths flags to the given Cobra command.
func (it *TrackPathsController) AddFlags(cmd *cobra.Command) {
	addRepoFlag(cmd)
}

// Execute tracks the given paths and prints the derived patterns.
func (it *TrackPathsController) Execute(cmd *cobra.Command, args []string) error {
	repo, err := resolveRepository(cmd, it.locator)
	if err != nil {
		return reportError("Track", err)
	}

	patterns, err := it.command.TrackByPath(cmd.Context(), repo, args)
	if err != nil {
		return reportError("Track", err)
	}

	logger.Infof("Now tracking: %s", strings.Join(patterns, ", "))
	printLines(cmd.OutOrStdout(), patterns)
	return nil
}
