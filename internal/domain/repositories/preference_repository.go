package repositories

// PreferenceRepository is a read-only key/value store of user preferences.
// Lookup returns "" with a nil error for unset keys.
type PreferenceRepository interface {
	Lookup(key string) (string, error)
}
