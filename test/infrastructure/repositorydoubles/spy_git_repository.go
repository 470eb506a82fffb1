//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"
	"sync"

	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

// SpyGitRepository implements repositories.GitRepository as a configurable spy.
// Responses are keyed by the space-joined argument list ("lfs track *.psd");
// unknown invocations succeed with DefaultResult.
type SpyGitRepository struct {
	mu sync.Mutex

	// --- Run ---
	Results       map[string]*entities.InvocationResult
	Errors        map[string]error
	DefaultResult *entities.InvocationResult
	// spy: invocations received, in order
	Invocations []entities.Invocation
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

// NewSpyGitRepository creates a spy that answers every invocation with empty output.
func NewSpyGitRepository() *SpyGitRepository {
	return &SpyGitRepository{
		Results:       make(map[string]*entities.InvocationResult),
		Errors:        make(map[string]error),
		DefaultResult: &entities.InvocationResult{},
	}
}

// WithResult registers the stdout returned for the given arguments.
func (s *SpyGitRepository) WithResult(stdout string, args ...string) *SpyGitRepository {
	s.Results[strings.Join(args, " ")] = &entities.InvocationResult{Stdout: stdout}
	return s
}

// WithError registers the failure returned for the given arguments.
func (s *SpyGitRepository) WithError(err error, args ...string) *SpyGitRepository {
	s.Errors[strings.Join(args, " ")] = err
	return s
}

func (s *SpyGitRepository) Run(
	_ context.Context,
	invocation entities.Invocation,
) (*entities.InvocationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Invocations = append(s.Invocations, invocation)

	key := strings.Join(invocation.Args, " ")
	if err, ok := s.Errors[key]; ok {
		return nil, err
	}
	if result, ok := s.Results[key]; ok {
		return result, nil
	}
	return s.DefaultResult, nil
}

// Commands returns the argument lists received, joined by spaces.
func (s *SpyGitRepository) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	commands := make([]string, 0, len(s.Invocations))
	for _, invocation := range s.Invocations {
		commands = append(commands, strings.Join(invocation.Args, " "))
	}
	return commands
}
