//go:build unit

package main //nolint:testpackage // tests unexported functions

import (
	"bytes"
	"context"
	"testing"

	logger "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/lfsguard/internal"
	"github.com/rios0rios0/lfsguard/internal/domain/entities"
	"github.com/rios0rios0/lfsguard/internal/infrastructure/controllers"
	commanddoubles "github.com/rios0rios0/lfsguard/test/domain/commanddoubles"
	doubles "github.com/rios0rios0/lfsguard/test/infrastructure/repositorydoubles"
)

func TestBuildRootCommand(t *testing.T) {
	t.Parallel()

	t.Run("should silence usage and expose the verbose flag", func(t *testing.T) {
		t.Parallel()

		// when
		cmd := buildRootCommand()

		// then
		assert.Equal(t, "lfsguard", cmd.Use)
		assert.True(t, cmd.SilenceUsage)
		assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
	})
}

func TestAddSubcommands(t *testing.T) {
	t.Parallel()

	t.Run("should mount each controller with its flags and argument rule", func(t *testing.T) {
		t.Parallel()

		// given
		install := &commanddoubles.StubInstallCommand{Version: "v3.4.1"}
		ctrls := []entities.Controller{controllers.NewVersionController(install)}
		root := buildRootCommand()

		// when
		addSubcommands(root, internal.NewAppInternal(&ctrls))

		// then
		sub, _, err := root.Find([]string{"version"})
		require.NoError(t, err)
		assert.Equal(t, "version", sub.Use)
		require.Error(t, sub.Args(sub, []string{"unexpected"}))
	})

	t.Run("should run the controller through the root command", func(t *testing.T) {
		t.Parallel()

		// given
		install := &commanddoubles.StubInstallCommand{}
		ctrls := []entities.Controller{controllers.NewInstallController(install, nil)}
		root := buildRootCommand()
		addSubcommands(root, internal.NewAppInternal(&ctrls))
		root.SetArgs([]string{"install", "--force"})

		// when
		err := root.Execute()

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, install.GlobalCallCount)
		assert.True(t, install.LastGlobalForce)
	})
}

func newTestRoot(install *commanddoubles.StubInstallCommand) *cobra.Command {
	locator := &doubles.StubLocatorRepository{}
	query := &commanddoubles.StubQueryCommand{}
	ctrls := []entities.Controller{
		controllers.NewListController(query, locator),
		controllers.NewCheckController(query, locator, nil),
		controllers.NewVersionController(install),
	}
	root := buildRootCommand()
	addSubcommands(root, internal.NewAppInternal(&ctrls))
	return root
}

// TestRun swaps hooks on the global logger, so it does not run in parallel.
func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "should log missing positional arguments", args: []string{"check"}},
		{name: "should log an unknown flag", args: []string{"ls", "--bogus"}},
		{name: "should log an unknown subcommand", args: []string{"nosuchcmd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// given
			hook := logtest.NewGlobal()
			root := newTestRoot(&commanddoubles.StubInstallCommand{})
			root.SetArgs(tt.args)

			// when
			err := run(context.Background(), root)

			// then
			require.Error(t, err)
			require.NotNil(t, hook.LastEntry())
			assert.Equal(t, logger.ErrorLevel, hook.LastEntry().Level)
			assert.Contains(t, hook.LastEntry().Message, err.Error())
		})
	}

	t.Run("should log a controller failure exactly once", func(t *testing.T) {
		// given
		hook := logtest.NewGlobal()
		root := newTestRoot(&commanddoubles.StubInstallCommand{
			VersionErr: &entities.InvocationError{Kind: entities.KindToolNotInstalled},
		})
		root.SetArgs([]string{"version"})

		// when
		err := run(context.Background(), root)

		// then
		require.ErrorIs(t, err, entities.ErrToolNotInstalled)
		errorEntries := 0
		for _, entry := range hook.AllEntries() {
			if entry.Level == logger.ErrorLevel {
				errorEntries++
			}
		}
		assert.Equal(t, 1, errorEntries)
	})

	t.Run("should log nothing at error level on success", func(t *testing.T) {
		// given
		hook := logtest.NewGlobal()
		root := newTestRoot(&commanddoubles.StubInstallCommand{Version: "v3.4.1"})
		root.SetArgs([]string{"version"})
		root.SetOut(&bytes.Buffer{})

		// when
		err := run(context.Background(), root)

		// then
		require.NoError(t, err)
		for _, entry := range hook.AllEntries() {
			assert.NotEqual(t, logger.ErrorLevel, entry.Level)
		}
	})
}
