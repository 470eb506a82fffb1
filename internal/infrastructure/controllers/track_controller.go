package controllers

import (
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/lfsguard/internal/domain/commands"
	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

// TrackController handles the "track" subcommand.
type TrackController struct {
	command commands.Track
	locator repositories.LocatorRepository
}

// NewTrackController creates a new TrackController.
func NewTrackController(command commands.Track, locator repositories.LocatorRepository) *TrackController {
	return &TrackController{command: command, locator: locator}
}

// GetBind returns the Cobra command metadata for the track controller.
func (it *TrackController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "track <pattern>...",
		Short: "Track patterns with Git LFS",
		Long: `Register each pattern with "git lfs track", in the given order,
then stage .gitattributes so the change lands in the next commit.

Stops at the first pattern git rejects. Patterns registered before
the failure stay registered.`,
		Args: cobra.ArbitraryArgs,
	}
}

// AddFlags adds the track-specific flags to the given Cobra command.
func (it *TrackController) AddFlags(cmd *cobra.Command) {
	addRepoFlag(cmd)
}

// Execute tracks the patterns given as arguments.
func (it *TrackController) Execute(cmd *cobra.Command, args []string) error {
	repo, err := resolveRepository(cmd, it.locator)
	if err != nil {
		return reportError("Track", err)
	}

	if err = it.command.Track(cmd.Context(), repo, args); err != nil {
		return reportError("Track", err)
	}

	if len(args) > 0 {
		logger.Infof("Now tracking: %s", strings.Join(args, ", "))
	}
	return nil
}
