package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

// Query is the interface for the read-side LFS queries.
type Query interface {
	TrackedPatterns(ctx context.Context, repo entities.Repository) ([]entities.TrackPattern, error)
	IsAnyPatternTracked(ctx context.Context, repo entities.Repository) (bool, error)
	IsPathTracked(ctx context.Context, repo entities.Repository, path string) (bool, error)
	FilterUntracked(
		ctx context.Context, repo entities.Repository, paths []string, opts FilterOptions,
	) ([]string, error)
}

// FilterOptions holds runtime options for FilterUntracked.
type FilterOptions struct {
	// Concurrency is the number of attribute queries allowed in flight.
	// Zero or one keeps the queries strictly sequential.
	Concurrency int
}

// QueryCommand answers questions about a repository's LFS configuration.
// Nothing is cached: every call asks git again.
type QueryCommand struct {
	git   repositories.GitRepository
	prefs repositories.PreferenceRepository
}

// NewQueryCommand creates a new QueryCommand.
func NewQueryCommand(
	git repositories.GitRepository,
	prefs repositories.PreferenceRepository,
) *QueryCommand {
	return &QueryCommand{git: git, prefs: prefs}
}

// TrackedPatterns lists the patterns reported by `git lfs track`, in git's order.
func (it *QueryCommand) TrackedPatterns(
	ctx context.Context,
	repo entities.Repository,
) ([]entities.TrackPattern, error) {
	stdout, err := it.listPatterns(ctx, repo, "getLFSTrackedPatterns")
	if err != nil {
		return nil, err
	}
	return entities.ParseTrackedPatterns(stdout), nil
}

// IsAnyPatternTracked reports whether the repository tracks anything with LFS.
func (it *QueryCommand) IsAnyPatternTracked(ctx context.Context, repo entities.Repository) (bool, error) {
	stdout, err := it.listPatterns(ctx, repo, "isUsingLFS")
	if err != nil {
		return false, err
	}
	return entities.HasTrackedPattern(stdout), nil
}

// IsPathTracked asks `git check-attr` whether the lfs filter applies to path.
func (it *QueryCommand) IsPathTracked(
	ctx context.Context,
	repo entities.Repository,
	path string,
) (bool, error) {
	const name = "checkAttrForLFS"
	result, err := it.git.Run(ctx, entities.Invocation{
		Name: name,
		Dir:  repo.Path,
		Args: []string{"check-attr", "filter", "--", path},
		Env:  AuthEnvironment(it.prefs),
	})
	if err != nil {
		return false, entities.ClassifyFailure(name, err)
	}
	return entities.IsFilteredByLFS(result.Stdout), nil
}

// FilterUntracked returns the paths not covered by the LFS configuration,
// preserving input order. Each path is an independent `git check-attr` run.
func (it *QueryCommand) FilterUntracked(
	ctx context.Context,
	repo entities.Repository,
	paths []string,
	opts FilterOptions,
) ([]string, error) {
	if opts.Concurrency > 1 {
		return it.filterUntrackedConcurrently(ctx, repo, paths, opts.Concurrency)
	}

	untracked := make([]string, 0, len(paths))
	for _, path := range paths {
		tracked, err := it.IsPathTracked(ctx, repo, path)
		if err != nil {
			return nil, err
		}
		if !tracked {
			untracked = append(untracked, path)
		}
	}
	return untracked, nil
}

// filterUntrackedConcurrently is the opt-in bounded pool. Results are written
// by index so the output order matches the sequential variant.
func (it *QueryCommand) filterUntrackedConcurrently(
	ctx context.Context,
	repo entities.Repository,
	paths []string,
	limit int,
) ([]string, error) {
	logger.Debugf("[lfs] Checking %d path(s) with up to %d concurrent queries", len(paths), limit)

	tracked := make([]bool, len(paths))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(limit)

	for i, path := range paths {
		group.Go(func() error {
			isTracked, err := it.IsPathTracked(groupCtx, repo, path)
			if err != nil {
				return err
			}
			tracked[i] = isTracked
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	untracked := make([]string, 0, len(paths))
	for i, path := range paths {
		if !tracked[i] {
			untracked = append(untracked, path)
		}
	}
	return untracked, nil
}

func (it *QueryCommand) listPatterns(ctx context.Context, repo entities.Repository, name string) (string, error) {
	result, err := it.git.Run(ctx, entities.Invocation{
		Name: name,
		Dir:  repo.Path,
		Args: []string{"lfs", "track"},
		Env:  QueryEnvironment(it.prefs),
	})
	if err != nil {
		return "", entities.ClassifyFailure(name, err)
	}
	return result.Stdout, nil
}
