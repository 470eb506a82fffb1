//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

// StubPreferenceRepository implements repositories.PreferenceRepository from a map.
type StubPreferenceRepository struct {
	Values    map[string]string
	LookupErr error
}

var _ repositories.PreferenceRepository = (*StubPreferenceRepository)(nil)

func (s *StubPreferenceRepository) Lookup(key string) (string, error) {
	if s.LookupErr != nil {
		return "", s.LookupErr
	}
	return s.Values[key], nil
}
