//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/lfsguard/internal/domain/commands"
	"github.com/rios0rios0/lfsguard/internal/domain/entities"
)

// StubOversizedCommand is a stub implementation of commands.Oversized.
type StubOversizedCommand struct {
	Oversized   []string
	FindErr     error
	FindCalls   int
	TrackResult []entities.TrackPattern
	TrackErr    error
	TrackCalls  int
	LastOpts    commands.OversizedOptions
}

var _ commands.Oversized = (*StubOversizedCommand)(nil)

func (s *StubOversizedCommand) FindOversized(
	_ context.Context,
	_ entities.Repository,
	_ []string,
	opts commands.OversizedOptions,
) ([]string, error) {
	s.FindCalls++
	s.LastOpts = opts
	return s.Oversized, s.FindErr
}

func (s *StubOversizedCommand) TrackOversized(
	_ context.Context,
	_ entities.Repository,
	_ []string,
	opts commands.OversizedOptions,
) ([]entities.TrackPattern, error) {
	s.TrackCalls++
	s.LastOpts = opts
	return s.TrackResult, s.TrackErr
}
