package controllers

import (
	"errors"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

const repoFlag = "repo"

// addRepoFlag adds the --repo flag shared by every repository-scoped controller.
func addRepoFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(repoFlag, "C", ".", "Path inside the Git repository to operate on")
}

// resolveRepository maps --repo to the root of its working tree.
func resolveRepository(cmd *cobra.Command, locator repositories.LocatorRepository) (entities.Repository, error) {
	path, _ := cmd.Flags().GetString(repoFlag)
	if path == "" {
		path = "."
	}
	return locator.Locate(path)
}

// reportError prefixes a command failure with the action and logs a hint
// for failures the user can act on. The error itself is logged once, by main.
func reportError(action string, err error) error {
	switch {
	case errors.Is(err, entities.ErrAuthenticationFailed):
		logger.Warn("Git rejected the credentials. Sign in again or refresh your credential helper, then retry.")
	case errors.Is(err, entities.ErrToolNotInstalled):
		logger.Warn("Git LFS is not installed, see https://git-lfs.com")
	}
	return fmt.Errorf("%s failed: %w", action, err)
}

func printLines(out io.Writer, lines []string) {
	for _, line := range lines {
		_, _ = fmt.Fprintln(out, line)
	}
}
