package commands

import (
	"context"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

// Track is the interface for registering LFS patterns.
type Track interface {
	Track(ctx context.Context, repo entities.Repository, patterns []entities.TrackPattern) error
	TrackByPath(ctx context.Context, repo entities.Repository, filePaths []string) ([]entities.TrackPattern, error)
}

// TrackCommand registers patterns with `git lfs track` and stages .gitattributes.
//
// Each `git lfs track` rewrites the same .gitattributes file, so invocations
// are issued one at a time. TrackCommand holds no lock: callers that may run
// Track concurrently against the same repository must serialise those calls.
type TrackCommand struct {
	git   repositories.GitRepository
	prefs repositories.PreferenceRepository
}

// NewTrackCommand creates a new TrackCommand.
func NewTrackCommand(
	git repositories.GitRepository,
	prefs repositories.PreferenceRepository,
) *TrackCommand {
	return &TrackCommand{git: git, prefs: prefs}
}

// Track runs `git lfs track <pattern>` for each pattern in order and then
// stages .gitattributes. It stops at the first failure; patterns registered
// before it stay registered. With no patterns it still stages the file.
func (it *TrackCommand) Track(
	ctx context.Context,
	repo entities.Repository,
	patterns []entities.TrackPattern,
) error {
	env := AuthEnvironment(it.prefs)

	for _, pattern := range patterns {
		logger.Debugf("[lfs] Tracking %q in %s", pattern, repo.Path)

		const name = "trackFilesWithLFS"
		_, err := it.git.Run(ctx, entities.Invocation{
			Name: name,
			Dir:  repo.Path,
			Args: []string{"lfs", "track", "--", pattern},
			Env:  env,
		})
		if err != nil {
			return entities.ClassifyFailure(name, err)
		}
	}

	const stageName = "stageLFSAttributes"
	_, err := it.git.Run(ctx, entities.Invocation{
		Name: stageName,
		Dir:  repo.Path,
		Args: []string{"add", repo.GitAttributesPath()},
		Env:  env,
	})
	if err != nil {
		return entities.ClassifyFailure(stageName, err)
	}

	logger.Infof("[lfs] Tracking %d pattern(s) in %s", len(patterns), repo.Path)
	return nil
}

// TrackByPath derives patterns from file paths, tracks them, and returns the
// patterns so the caller can confirm them to the user.
func (it *TrackCommand) TrackByPath(
	ctx context.Context,
	repo entities.Repository,
	filePaths []string,
) ([]entities.TrackPattern, error) {
	patterns := entities.DerivePatterns(filePaths)
	logger.Debugf("[lfs] Derived patterns from %d path(s): %s", len(filePaths), strings.Join(patterns, ", "))

	if err := it.Track(ctx, repo, patterns); err != nil {
		return nil, err
	}
	return patterns, nil
}
