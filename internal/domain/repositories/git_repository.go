package repositories

import (
	"context"

	"github.com/rios0rios0/lfsguard/internal/domain/entities"
)

// GitRepository runs the git executable. Implementations capture stdout and
// stderr separately and report failures as *entities.ProcessError carrying a
// structured entities.GitErrorCode.
//
// Timeouts and cancellation are the implementation's concern; callers only
// pass the context through.
type GitRepository interface {
	Run(ctx context.Context, invocation entities.Invocation) (*entities.InvocationResult, error)
}
