package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/lfsguard/internal/domain/entities"
)

// Oversized is the interface for finding and tracking files too large to commit.
type Oversized interface {
	FindOversized(ctx context.Context, repo entities.Repository, paths []string, opts OversizedOptions) ([]string, error)
	TrackOversized(
		ctx context.Context, repo entities.Repository, paths []string, opts OversizedOptions,
	) ([]entities.TrackPattern, error)
}

// OversizedOptions holds runtime options for the oversized checks.
type OversizedOptions struct {
	Limit       int64 // bytes; zero falls back to the configured maximum
	Concurrency int
}

// OversizedCommand finds files above the size limit that LFS does not cover yet
// and, on request, tracks them by extension.
type OversizedCommand struct {
	query    Query
	track    Track
	install  Install
	settings *entities.Settings
}

// NewOversizedCommand creates a new OversizedCommand.
func NewOversizedCommand(
	query Query,
	track Track,
	install Install,
	settings *entities.Settings,
) *OversizedCommand {
	return &OversizedCommand{query: query, track: track, install: install, settings: settings}
}

// FindOversized returns, in input order, the paths larger than the limit that
// are not tracked by LFS. Paths missing from disk are skipped.
func (it *OversizedCommand) FindOversized(
	ctx context.Context,
	repo entities.Repository,
	paths []string,
	opts OversizedOptions,
) ([]string, error) {
	limit := it.limit(opts)

	large := make([]string, 0)
	for _, path := range paths {
		info, err := os.Stat(repo.Join(path))
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debugf("[lfs] Skipping %s: file does not exist", path)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", path, err)
		}
		if info.IsDir() || info.Size() <= limit {
			continue
		}
		large = append(large, path)
	}

	if len(large) == 0 {
		return large, nil
	}

	logger.Debugf("[lfs] %d file(s) exceed %d bytes, checking LFS coverage", len(large), limit)
	return it.query.FilterUntracked(ctx, repo, large, FilterOptions{Concurrency: opts.Concurrency})
}

// TrackOversized tracks every oversized, untracked path by extension and
// returns the patterns that were registered. It fails with
// ErrToolNotInstalled when git-lfs is unavailable.
func (it *OversizedCommand) TrackOversized(
	ctx context.Context,
	repo entities.Repository,
	paths []string,
	opts OversizedOptions,
) ([]entities.TrackPattern, error) {
	if !it.install.IsToolInstalled(ctx) {
		return nil, &entities.InvocationError{Kind: entities.KindToolNotInstalled, Name: "isGitLFSInstalled"}
	}

	oversized, err := it.FindOversized(ctx, repo, paths, opts)
	if err != nil {
		return nil, err
	}
	if len(oversized) == 0 {
		logger.Info("[lfs] No oversized files need tracking")
		return []entities.TrackPattern{}, nil
	}

	return it.track.TrackByPath(ctx, repo, oversized)
}

func (it *OversizedCommand) limit(opts OversizedOptions) int64 {
	if opts.Limit > 0 {
		return opts.Limit
	}
	if it.settings != nil && it.settings.MaxFileSize > 0 {
		return it.settings.MaxFileSize
	}
	return entities.DefaultMaxFileSize
}
