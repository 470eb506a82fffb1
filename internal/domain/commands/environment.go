package commands

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/lfsguard/internal/domain/repositories"
)

const (
	// TracePreferenceKey is the preference that feeds GIT_TRACE.
	TracePreferenceKey = "git-trace"

	envTerminalPrompt = "GIT_TERMINAL_PROMPT"
	envTrace          = "GIT_TRACE"
	envNoInstallHooks = "GIT_LFS_TRACK_NO_INSTALL_HOOKS"

	traceOff = "0"
)

// AuthEnvironment returns the environment overlay for any git invocation that
// may need credentials. Interactive prompting is always disabled, even as a
// fallback. GIT_TRACE comes from the preference store and is "0" when the
// store is nil, fails, or has no value.
func AuthEnvironment(prefs repositories.PreferenceRepository) map[string]string {
	return map[string]string{
		envTerminalPrompt: "0",
		envTrace:          tracePreference(prefs),
	}
}

// QueryEnvironment is AuthEnvironment plus the flag that stops `git lfs track`
// from installing hooks as a side effect of listing patterns.
func QueryEnvironment(prefs repositories.PreferenceRepository) map[string]string {
	env := AuthEnvironment(prefs)
	env[envNoInstallHooks] = "1"
	return env
}

func tracePreference(prefs repositories.PreferenceRepository) string {
	if prefs == nil {
		return traceOff
	}

	value, err := prefs.Lookup(TracePreferenceKey)
	if err != nil {
		logger.Debugf("Could not read preference %q, tracing disabled: %v", TracePreferenceKey, err)
		return traceOff
	}
	if value == "" {
		return traceOff
	}
	return value
}
