package git

import "github.com/rios0rios0/lfsguard/internal/domain/entities"

// DetectErrorCode exports detectErrorCode for testing.
var DetectErrorCode = detectErrorCode //nolint:gochecknoglobals // test export

// MergeEnvironment exports mergeEnvironment for testing.
var MergeEnvironment = mergeEnvironment //nolint:gochecknoglobals // test export

// CommandLine exports commandLine for testing.
func (it *ProcessGitRepository) CommandLine(invocation entities.Invocation) string {
	return it.commandLine(invocation)
}
