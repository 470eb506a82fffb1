package preferences

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

// YAMLPreferenceRepository reads preferences from a flat YAML mapping such as
//
//	git-trace: "1"
//
// The file is read on every lookup so edits apply without a restart.
type YAMLPreferenceRepository struct {
	path string
}

var _ repositories.PreferenceRepository = (*YAMLPreferenceRepository)(nil)

// NewYAMLPreferenceRepository creates a repository backed by the file at path.
func NewYAMLPreferenceRepository(path string) *YAMLPreferenceRepository {
	return &YAMLPreferenceRepository{path: path}
}

// Lookup returns the value stored under key. A missing file or key yields "".
func (it *YAMLPreferenceRepository) Lookup(key string) (string, error) {
	if it.path == "" {
		return "", nil
	}

	data, err := os.ReadFile(it.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read preferences file %q: %w", it.path, err)
	}

	var values map[string]string
	if unmarshalErr := yaml.Unmarshal(data, &values); unmarshalErr != nil {
		return "", fmt.Errorf("failed to parse preferences file %q: %w", it.path, unmarshalErr)
	}

	return values[key], nil
}
