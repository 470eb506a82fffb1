//go:build unit

package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/infrastructure/repositories/git"
)

func TestMergeEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("should replace variables with the same name and keep the rest", func(t *testing.T) {
		t.Parallel()

		// given
		base := []string{"PATH=/usr/bin", "GIT_TRACE=1", "HOME=/home/dev"}
		overlay := map[string]string{"GIT_TRACE": "0", "GIT_TERMINAL_PROMPT": "0"}

		// when
		merged := git.MergeEnvironment(base, overlay)

		// then
		assert.Equal(t, []string{
			"PATH=/usr/bin",
			"HOME=/home/dev",
			"GIT_TERMINAL_PROMPT=0",
			"GIT_TRACE=0",
		}, merged)
	})

	t.Run("should return the base untouched without an overlay", func(t *testing.T) {
		t.Parallel()

		// given
		base := []string{"PATH=/usr/bin"}

		// when
		merged := git.MergeEnvironment(base, nil)

		// then
		assert.Equal(t, base, merged)
	})
}

func TestProcessGitRepositoryCommandLine(t *testing.T) {
	t.Parallel()

	t.Run("should render a quoted command line with the environment first", func(t *testing.T) {
		t.Parallel()

		// given
		repository := git.NewProcessGitRepository("")
		invocation := entities.Invocation{
			Args: []string{"lfs", "track", "*.psd"},
			Env:  map[string]string{"GIT_TRACE": "0", "GIT_TERMINAL_PROMPT": "0"},
		}

		// when
		line := repository.CommandLine(invocation)

		// then
		assert.Equal(t, "GIT_TERMINAL_PROMPT=0 GIT_TRACE=0 git lfs track '*.psd'", line)
	})
}

func TestProcessGitRepositoryRunMissingBinary(t *testing.T) {
	t.Parallel()

	t.Run("should report a binary missing from PATH as tool not found", func(t *testing.T) {
		t.Parallel()

		// given
		repository := git.NewProcessGitRepository("lfsguard-no-such-git-binary")

		// when
		result, err := repository.Run(context.Background(), entities.Invocation{
			Dir:  t.TempDir(),
			Args: []string{"lfs", "version"},
		})

		// then
		assert.Nil(t, result)
		var processErr *entities.ProcessError
		require.ErrorAs(t, err, &processErr)
		assert.Equal(t, entities.GitErrorToolNotFound, processErr.Code)
		assert.Equal(t, -1, processErr.ExitCode)
	})

	t.Run("should report a binary path that does not exist as tool not found", func(t *testing.T) {
		t.Parallel()

		// given
		repository := git.NewProcessGitRepository("/nonexistent/bin/git")

		// when
		_, err := repository.Run(context.Background(), entities.Invocation{
			Dir:  t.TempDir(),
			Args: []string{"lfs", "version"},
		})

		// then
		var processErr *entities.ProcessError
		require.ErrorAs(t, err, &processErr)
		assert.Equal(t, entities.GitErrorToolNotFound, processErr.Code)
	})
}
