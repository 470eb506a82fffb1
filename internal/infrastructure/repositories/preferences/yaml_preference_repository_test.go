//go:build unit

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/lfsguard/internal/infrastructure/repositories/preferences"
)

func TestYAMLPreferenceRepositoryLookup(t *testing.T) {
	t.Parallel()

	t.Run("should return the stored value", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "preferences.yaml")
		require.NoError(t, os.WriteFile(path, []byte("git-trace: \"1\"\n"), 0o600))
		repository := preferences.NewYAMLPreferenceRepository(path)

		// when
		value, err := repository.Lookup("git-trace")

		// then
		require.NoError(t, err)
		assert.Equal(t, "1", value)
	})

	t.Run("should return empty for a missing key", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "preferences.yaml")
		require.NoError(t, os.WriteFile(path, []byte("other: value\n"), 0o600))
		repository := preferences.NewYAMLPreferenceRepository(path)

		// when
		value, err := repository.Lookup("git-trace")

		// then
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("should return empty when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		repository := preferences.NewYAMLPreferenceRepository(filepath.Join(t.TempDir(), "missing.yaml"))

		// when
		value, err := repository.Lookup("git-trace")

		// then
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("should return empty without a configured path", func(t *testing.T) {
		t.Parallel()

		// given
		repository := preferences.NewYAMLPreferenceRepository("")

		// when
		value, err := repository.Lookup("git-trace")

		// then
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("should fail on malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "preferences.yaml")
		require.NoError(t, os.WriteFile(path, []byte("git-trace: [unclosed\n"), 0o600))
		repository := preferences.NewYAMLPreferenceRepository(path)

		// when
		_, err := repository.Lookup("git-trace")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse preferences file")
	})
}
