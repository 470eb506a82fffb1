//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/lfsguard/internal/domain/commands"
	"github.com/rios0rios0/lfsguard/internal/domain/entities"
)

// StubQueryCommand is a stub implementation of commands.Query.
type StubQueryCommand struct {
	Patterns    []entities.TrackPattern
	PatternsErr error

	AnyTracked    bool
	AnyTrackedErr error

	TrackedPaths map[string]bool
	TrackedErr   error

	Untracked       []string
	UntrackedErr    error
	LastFilterPaths []string
	LastFilterOpts  commands.FilterOptions
	FilterCallCount int
}

var _ commands.Query = (*StubQueryCommand)(nil)

func (s *StubQueryCommand) TrackedPatterns(
	_ context.Context,
	_ entities.Repository,
) ([]entities.TrackPattern, error) {
	return s.Patterns, s.PatternsErr
}

func (s *StubQueryCommand) IsAnyPatternTracked(_ context.Context, _ entities.Repository) (bool, error) {
	return s.AnyTracked, s.AnyTrackedErr
}

func (s *StubQueryCommand) IsPathTracked(
	_ context.Context,
	_ entities.Repository,
	path string,
) (bool, error) {
	return s.TrackedPaths[path], s.TrackedErr
}

func (s *StubQueryCommand) FilterUntracked(
	_ context.Context,
	_ entities.Repository,
	paths []string,
	opts commands.FilterOptions,
) ([]string, error) {
	s.FilterCallCount++
	s.LastFilterPaths = paths
	s.LastFilterOpts = opts
	return s.Untracked, s.UntrackedErr
}
