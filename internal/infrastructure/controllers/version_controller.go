package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/lfsguard/internal/domain/commands"
	"github.com/rios0rios0/lfsguard/internal/domain/entities"
)

// VersionController handles the "version" subcommand.
type VersionController struct {
	command commands.Install
}

// NewVersionController creates a new VersionController.
func NewVersionController(command commands.Install) *VersionController {
	return &VersionController{command: command}
}

// GetBind returns the Cobra command metadata for the version controller.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "version",
		Short: "Print the installed git-lfs version",
		Long: `Probe "git lfs version" and print the semantic version found.
Fails when git-lfs is missing or older than minimum_lfs_version.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags is a no-op: version takes no flags.
func (it *VersionController) AddFlags(_ *cobra.Command) {}

// Execute prints the git-lfs version.
func (it *VersionController) Execute(cmd *cobra.Command, _ []string) error {
	version, err := it.command.ToolVersion(cmd.Context())
	if err != nil {
		return reportError("Version check", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
	return nil
}
