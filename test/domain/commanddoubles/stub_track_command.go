//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/lfsguard/internal/domain/commands"
	"github.com/rios0rios0/lfsguard/internal/domain/entities"
)

// StubTrackCommand is a stub implementation of commands.Track.
type StubTrackCommand struct {
	TrackCallCount int
	TrackErr       error
	LastPatterns   []entities.TrackPattern

	TrackByPathCallCount int
	TrackByPathResult    []entities.TrackPattern
	TrackByPathErr       error
	LastFilePaths        []string

	LastRepo entities.Repository
}

var _ commands.Track = (*StubTrackCommand)(nil)

func (s *StubTrackCommand) Track(
	_ context.Context,
	repo entities.Repository,
	patterns []entities.TrackPattern,
) error {
	s.TrackCallCount++
	s.LastRepo = repo
	s.LastPatterns = patterns
	return s.TrackErr
}

func (s *StubTrackCommand) TrackByPath(
	_ context.Context,
	repo entities.Repository,
	filePaths []string,
) ([]entities.TrackPattern, error) {
	s.TrackByPathCallCount++
	s.LastRepo = repo
	s.LastFilePaths = filePaths
	return s.TrackByPathResult, s.TrackByPathErr
}
