//go:build unit

package controllers_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/infrastructure/controllers"
	commanddoubles "github.com/rios0rios0/lfsguard/test/domain/commanddoubles"
	builders "github.com/rios0rios0/lfsguard/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/lfsguard/test/infrastructure/repositorydoubles"
)

// execute runs a controller the way the root command does, returning its output.
func execute(t *testing.T, ctrl entities.Controller, flags []string, args []string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := &cobra.Command{Use: ctrl.GetBind().Use}
	ctrl.AddFlags(cmd)
	cmd.SetContext(context.Background())
	cmd.SetOut(&out)
	require.NoError(t, cmd.Flags().Parse(flags))

	err := ctrl.Execute(cmd, args)
	return out.String(), err
}

func newLocator() *doubles.StubLocatorRepository {
	return &doubles.StubLocatorRepository{
		Repository: builders.NewRepositoryBuilder().WithPath("/work/repo").BuildRepository(),
	}
}

func TestTrackController(t *testing.T) {
	t.Parallel()

	t.Run("should track the arguments in the located repository", func(t *testing.T) {
		t.Parallel()

		// given
		track := &commanddoubles.StubTrackCommand{}
		locator := newLocator()
		ctrl := controllers.NewTrackController(track, locator)

		// when
		_, err := execute(t, ctrl, []string{"-C", "assets"}, []string{"*.psd", "*.zip"})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"*.psd", "*.zip"}, track.LastPatterns)
		assert.Equal(t, "/work/repo", track.LastRepo.Path)
		assert.Equal(t, []string{"assets"}, locator.LocatedPaths)
	})

	t.Run("should return the locator failure without tracking", func(t *testing.T) {
		t.Parallel()

		// given
		track := &commanddoubles.StubTrackCommand{}
		locator := &doubles.StubLocatorRepository{
			LocateErr: &entities.InvocationError{Kind: entities.KindRepositoryNotFound},
		}
		ctrl := controllers.NewTrackController(track, locator)

		// when
		_, err := execute(t, ctrl, nil, []string{"*.psd"})

		// then
		assert.ErrorIs(t, err, entities.ErrRepositoryNotFound)
		assert.Zero(t, track.TrackCallCount)
	})

	t.Run("should return an authentication failure", func(t *testing.T) {
		t.Parallel()

		// given
		track := &commanddoubles.StubTrackCommand{
			TrackErr: &entities.InvocationError{Kind: entities.KindAuthenticationFailed},
		}
		ctrl := controllers.NewTrackController(track, newLocator())

		// when
		_, err := execute(t, ctrl, nil, []string{"*.psd"})

		// then
		assert.ErrorIs(t, err, entities.ErrAuthenticationFailed)
	})
}

func TestTrackPathsController(t *testing.T) {
	t.Parallel()

	t.Run("should print the derived patterns", func(t *testing.T) {
		t.Parallel()

		// given
		track := &commanddoubles.StubTrackCommand{TrackByPathResult: []string{"*.psd", "tools/run"}}
		ctrl := controllers.NewTrackPathsController(track, newLocator())

		// when
		out, err := execute(t, ctrl, nil, []string{"a.psd", "tools/run"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "*.psd\ntools/run\n", out)
		assert.Equal(t, []string{"a.psd", "tools/run"}, track.LastFilePaths)
	})
}

func TestListController(t *testing.T) {
	t.Parallel()

	t.Run("should print one pattern per line", func(t *testing.T) {
		t.Parallel()

		// given
		query := &commanddoubles.StubQueryCommand{Patterns: []string{"*.psd", "*.zip"}}
		ctrl := controllers.NewListController(query, newLocator())

		// when
		out, err := execute(t, ctrl, nil, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, "*.psd\n*.zip\n", out)
	})

	t.Run("should print nothing when no pattern is tracked", func(t *testing.T) {
		t.Parallel()

		// given
		query := &commanddoubles.StubQueryCommand{Patterns: []string{}}
		ctrl := controllers.NewListController(query, newLocator())

		// when
		out, err := execute(t, ctrl, nil, nil)

		// then
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestStatusController(t *testing.T) {
	t.Parallel()

	t.Run("should stop after reporting that git-lfs is missing", func(t *testing.T) {
		t.Parallel()

		// given
		locator := newLocator()
		ctrl := controllers.NewStatusController(
			&commanddoubles.StubQueryCommand{}, &commanddoubles.StubInstallCommand{Installed: false}, locator,
		)

		// when
		out, err := execute(t, ctrl, nil, []string{"a.psd"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "git-lfs installed: false\n", out)
		assert.Empty(t, locator.LocatedPaths)
	})

	t.Run("should report usage and per-path tracking", func(t *testing.T) {
		t.Parallel()

		// given
		query := &commanddoubles.StubQueryCommand{
			AnyTracked:   true,
			TrackedPaths: map[string]bool{"a.psd": true},
		}
		ctrl := controllers.NewStatusController(query, &commanddoubles.StubInstallCommand{Installed: true}, newLocator())

		// when
		out, err := execute(t, ctrl, nil, []string{"a.psd", "b.txt"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "git-lfs installed: true\nusing LFS: true\na.psd: true\nb.txt: false\n", out)
	})
}

func TestCheckController(t *testing.T) {
	t.Parallel()

	t.Run("should print the untracked paths using the configured concurrency", func(t *testing.T) {
		t.Parallel()

		// given
		query := &commanddoubles.StubQueryCommand{Untracked: []string{"b.txt"}}
		settings := &entities.Settings{Concurrency: 4}
		ctrl := controllers.NewCheckController(query, newLocator(), settings)

		// when
		out, err := execute(t, ctrl, nil, []string{"a.psd", "b.txt"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "b.txt\n", out)
		assert.Equal(t, 4, query.LastFilterOpts.Concurrency)
		assert.Equal(t, []string{"a.psd", "b.txt"}, query.LastFilterPaths)
	})

	t.Run("should let the flag override the configured concurrency", func(t *testing.T) {
		t.Parallel()

		// given
		query := &commanddoubles.StubQueryCommand{}
		ctrl := controllers.NewCheckController(query, newLocator(), &entities.Settings{Concurrency: 4})

		// when
		_, err := execute(t, ctrl, []string{"--concurrency", "2"}, []string{"a.psd"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 2, query.LastFilterOpts.Concurrency)
	})

	t.Run("should fail in strict mode when a path is untracked", func(t *testing.T) {
		t.Parallel()

		// given
		query := &commanddoubles.StubQueryCommand{Untracked: []string{"b.txt"}}
		ctrl := controllers.NewCheckController(query, newLocator(), nil)

		// when
		_, err := execute(t, ctrl, []string{"--strict"}, []string{"a.psd", "b.txt"})

		// then
		require.Error(t, err)
	})

	t.Run("should pass in strict mode when everything is tracked", func(t *testing.T) {
		t.Parallel()

		// given
		query := &commanddoubles.StubQueryCommand{Untracked: []string{}}
		ctrl := controllers.NewCheckController(query, newLocator(), nil)

		// when
		_, err := execute(t, ctrl, []string{"--strict"}, []string{"a.psd"})

		// then
		require.NoError(t, err)
	})
}

func TestOversizedController(t *testing.T) {
	t.Parallel()

	t.Run("should list the oversized files", func(t *testing.T) {
		t.Parallel()

		// given
		oversized := &commanddoubles.StubOversizedCommand{Oversized: []string{"big.psd"}}
		ctrl := controllers.NewOversizedController(oversized, newLocator(), nil)

		// when
		out, err := execute(t, ctrl, []string{"--limit", "1024"}, []string{"big.psd", "small.txt"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "big.psd\n", out)
		assert.Equal(t, int64(1024), oversized.LastOpts.Limit)
		assert.Zero(t, oversized.TrackCalls)
	})

	t.Run("should track the oversized files with --track", func(t *testing.T) {
		t.Parallel()

		// given
		oversized := &commanddoubles.StubOversizedCommand{TrackResult: []string{"*.psd"}}
		ctrl := controllers.NewOversizedController(oversized, newLocator(), nil)

		// when
		out, err := execute(t, ctrl, []string{"--track"}, []string{"big.psd"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "*.psd\n", out)
		assert.Equal(t, 1, oversized.TrackCalls)
		assert.Zero(t, oversized.FindCalls)
	})

	t.Run("should return the not-installed failure", func(t *testing.T) {
		t.Parallel()

		// given
		oversized := &commanddoubles.StubOversizedCommand{
			TrackErr: &entities.InvocationError{Kind: entities.KindToolNotInstalled},
		}
		ctrl := controllers.NewOversizedController(oversized, newLocator(), nil)

		// when
		_, err := execute(t, ctrl, []string{"--track"}, []string{"big.psd"})

		// then
		assert.ErrorIs(t, err, entities.ErrToolNotInstalled)
	})
}

func TestInstallController(t *testing.T) {
	t.Parallel()

	t.Run("should install the global filters by default", func(t *testing.T) {
		t.Parallel()

		// given
		install := &commanddoubles.StubInstallCommand{}
		locator := newLocator()
		ctrl := controllers.NewInstallController(install, locator)

		// when
		_, err := execute(t, ctrl, nil, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, install.GlobalCallCount)
		assert.False(t, install.LastGlobalForce)
		assert.Zero(t, install.HooksCallCount)
		assert.Empty(t, locator.LocatedPaths)
	})

	t.Run("should install the repository hooks with --hooks --force", func(t *testing.T) {
		t.Parallel()

		// given
		install := &commanddoubles.StubInstallCommand{}
		ctrl := controllers.NewInstallController(install, newLocator())

		// when
		_, err := execute(t, ctrl, []string{"--hooks", "-f"}, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, install.HooksCallCount)
		assert.True(t, install.LastHooksForce)
		assert.Equal(t, "/work/repo", install.LastHooksRepo.Path)
		assert.Zero(t, install.GlobalCallCount)
	})

	t.Run("should return the install failure", func(t *testing.T) {
		t.Parallel()

		// given
		install := &commanddoubles.StubInstallCommand{GlobalErr: errors.New("boom")}
		ctrl := controllers.NewInstallController(install, newLocator())

		// when
		_, err := execute(t, ctrl, nil, nil)

		// then
		require.Error(t, err)
	})
}

func TestVersionController(t *testing.T) {
	t.Parallel()

	t.Run("should print the version", func(t *testing.T) {
		t.Parallel()

		// given
		ctrl := controllers.NewVersionController(&commanddoubles.StubInstallCommand{Version: "v3.4.1"})

		// when
		out, err := execute(t, ctrl, nil, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, "v3.4.1\n", out)
	})

	t.Run("should fail when git-lfs is missing", func(t *testing.T) {
		t.Parallel()

		// given
		ctrl := controllers.NewVersionController(&commanddoubles.StubInstallCommand{
			VersionErr: &entities.InvocationError{Kind: entities.KindToolNotInstalled},
		})

		// when
		out, err := execute(t, ctrl, nil, nil)

		// then
		assert.ErrorIs(t, err, entities.ErrToolNotInstalled)
		assert.Empty(t, out)
	})
}

// TestTrackControllerWithoutPatterns inspects the global logger, so it does not run in parallel.
func TestTrackControllerWithoutPatterns(t *testing.T) {
	t.Run("should stage without announcing an empty pattern list", func(t *testing.T) {
		// given
		hook := logtest.NewGlobal()
		track := &commanddoubles.StubTrackCommand{}
		ctrl := controllers.NewTrackController(track, newLocator())

		// when
		_, err := execute(t, ctrl, nil, []string{})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, track.TrackCallCount)
		assert.Empty(t, track.LastPatterns)
		for _, entry := range hook.AllEntries() {
			assert.NotContains(t, entry.Message, "Now tracking")
		}
	})
}
