//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"errors"

	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ProcessErrorBuilder helps create git process failures with a fluent interface.
type ProcessErrorBuilder struct {
	*testkit.BaseBuilder
	args     []string
	exitCode int
	stderr   string
	code     entities.GitErrorCode
}

// NewProcessErrorBuilder creates a new builder for an unrecognised exit-code-1 failure.
func NewProcessErrorBuilder() *ProcessErrorBuilder {
	return &ProcessErrorBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		args:        []string{"lfs", "track"},
		exitCode:    1,
		stderr:      "fatal: something went wrong",
		code:        entities.GitErrorUnknown,
	}
}

// WithArgs sets the failed invocation's arguments.
func (b *ProcessErrorBuilder) WithArgs(args ...string) *ProcessErrorBuilder {
	b.args = args
	return b
}

// WithExitCode sets the exit code.
func (b *ProcessErrorBuilder) WithExitCode(exitCode int) *ProcessErrorBuilder {
	b.exitCode = exitCode
	return b
}

// WithStderr sets the captured standard error.
func (b *ProcessErrorBuilder) WithStderr(stderr string) *ProcessErrorBuilder {
	b.stderr = stderr
	return b
}

// WithCode sets the structured error code.
func (b *ProcessErrorBuilder) WithCode(code entities.GitErrorCode) *ProcessErrorBuilder {
	b.code = code
	return b
}

// Build creates the error (satisfies testkit.Builder interface).
func (b *ProcessErrorBuilder) Build() interface{} {
	return b.BuildProcessError()
}

// BuildProcessError creates the error with a concrete return type.
func (b *ProcessErrorBuilder) BuildProcessError() *entities.ProcessError {
	return &entities.ProcessError{
		Args:     b.args,
		ExitCode: b.exitCode,
		Stderr:   b.stderr,
		Code:     b.code,
		Err:      errors.New("exit status 1"),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ProcessErrorBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.args = []string{"lfs", "track"}
	b.exitCode = 1
	b.stderr = "fatal: something went wrong"
	b.code = entities.GitErrorUnknown
	return b
}

// Clone creates a deep copy of the ProcessErrorBuilder.
func (b *ProcessErrorBuilder) Clone() testkit.Builder {
	args := make([]string, len(b.args))
	copy(args, b.args)
	return &ProcessErrorBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		args:        args,
		exitCode:    b.exitCode,
		stderr:      b.stderr,
		code:        b.code,
	}
}
