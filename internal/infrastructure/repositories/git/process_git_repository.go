package git

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"
	"mvdan.cc/sh/v3/syntax"

	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

// ProcessGitRepository runs the git executable as a subprocess.
type ProcessGitRepository struct {
	binary string
}

var _ repositories.GitRepository = (*ProcessGitRepository)(nil)

// NewProcessGitRepository creates a ProcessGitRepository for the given binary.
// An empty binary means "git" from PATH.
func NewProcessGitRepository(binary string) *ProcessGitRepository {
	if binary == "" {
		binary = "git"
	}
	return &ProcessGitRepository{binary: binary}
}

// Run executes one invocation. Stdout and stderr are captured separately; a
// non-zero exit or a failure to start is returned as *entities.ProcessError.
func (it *ProcessGitRepository) Run(
	ctx context.Context,
	invocation entities.Invocation,
) (*entities.InvocationResult, error) {
	logger.Debugf("[git] %s: %s (in %s)", invocation.Name, it.commandLine(invocation), invocation.Dir)

	// #nosec G204 -- arguments are built by the domain commands, never passed to a shell
	cmd := exec.CommandContext(ctx, it.binary, invocation.Args...)
	cmd.Dir = invocation.Dir
	cmd.Env = mergeEnvironment(os.Environ(), invocation.Env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return &entities.InvocationResult{
			ExitCode: 0,
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}, nil
	}

	processErr := &entities.ProcessError{
		Args:     invocation.Args,
		ExitCode: -1,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Err:      err,
	}

	var exitErr *exec.ExitError
	var lookupErr *exec.Error
	var pathErr *fs.PathError
	switch {
	case errors.As(err, &exitErr):
		processErr.ExitCode = exitErr.ExitCode()
		processErr.Code = detectErrorCode(processErr.Stderr)
	case errors.As(err, &lookupErr):
		processErr.Code = entities.GitErrorToolNotFound
	case errors.As(err, &pathErr) && pathErr.Op == "fork/exec":
		// binary given as a path that does not exist
		processErr.Code = entities.GitErrorToolNotFound
	}

	logger.Debugf("[git] %s failed (exit code %d, code %q)", invocation.Name, processErr.ExitCode, processErr.Code)
	return nil, processErr
}

// commandLine renders the invocation as a copy-pasteable shell line for logs.
func (it *ProcessGitRepository) commandLine(invocation entities.Invocation) string {
	words := make([]string, 0, len(invocation.Env)+len(invocation.Args)+1)
	for _, key := range sortedKeys(invocation.Env) {
		words = append(words, key+"="+quote(invocation.Env[key]))
	}
	words = append(words, quote(it.binary))
	for _, arg := range invocation.Args {
		words = append(words, quote(arg))
	}
	return strings.Join(words, " ")
}

func quote(word string) string {
	quoted, err := syntax.Quote(word, syntax.LangBash)
	if err != nil {
		return word
	}
	return quoted
}

// mergeEnvironment overlays the given variables on base, replacing existing
// entries with the same name.
func mergeEnvironment(base []string, overlay map[string]string) []string {
	if len(overlay) == 0 {
		return base
	}

	merged := make([]string, 0, len(base)+len(overlay))
	for _, entry := range base {
		name, _, _ := strings.Cut(entry, "=")
		if _, replaced := overlay[name]; replaced {
			continue
		}
		merged = append(merged, entry)
	}
	for _, key := range sortedKeys(overlay) {
		merged = append(merged, key+"="+overlay[key])
	}
	return merged
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
