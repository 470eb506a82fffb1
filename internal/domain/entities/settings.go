package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigEnvVar points at an explicit settings file, skipping discovery.
	ConfigEnvVar = "LFSGUARD_CONFIG"

	// DefaultMaxFileSize is the largest file a hosting provider accepts without LFS (100 MiB).
	DefaultMaxFileSize int64 = 100 * 1024 * 1024

	defaultGitBinary = "git"
)

// Settings is the top-level configuration for lfsguard.
type Settings struct {
	GitBinary         string `yaml:"git_binary"`          // executable name or path
	NeutralDir        string `yaml:"neutral_dir"`         // working dir for probes and global installs
	PreferencesFile   string `yaml:"preferences_file"`    // YAML preference store (git-trace, ...)
	MaxFileSize       int64  `yaml:"max_file_size"`       // oversized threshold in bytes
	Concurrency       int    `yaml:"concurrency"`         // attribute queries in flight, 1 = sequential
	MinimumLFSVersion string `yaml:"minimum_lfs_version"` // e.g. "3.0.0", empty disables the check
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no file is found.
func NewDefaultSettings() *Settings {
	settings := &Settings{}
	settings.applyDefaults()
	return settings
}

// NewSettings reads and parses a configuration file, expanding environment variables.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.GitBinary = expandEnv(settings.GitBinary)
	settings.NeutralDir = expandEnv(settings.NeutralDir)
	settings.PreferencesFile = expandEnv(settings.PreferencesFile)
	settings.applyDefaults()

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// LoadSettings resolves the settings file from ConfigEnvVar or the standard
// locations and falls back to defaults when none exists.
func LoadSettings() (*Settings, error) {
	path := os.Getenv(ConfigEnvVar)
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return NewDefaultSettings(), nil
		}
		path = found
	}

	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a configuration file in standard locations.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".lfsguard.yaml",
		".lfsguard.yml",
		"lfsguard.yaml",
		"lfsguard.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func (s *Settings) applyDefaults() {
	if s.GitBinary == "" {
		s.GitBinary = defaultGitBinary
	}
	if s.NeutralDir == "" {
		s.NeutralDir = os.TempDir()
	}
	if s.PreferencesFile == "" {
		if configDir, err := os.UserConfigDir(); err == nil {
			s.PreferencesFile = filepath.Join(configDir, "lfsguard", "preferences.yaml")
		}
	}
	if s.MaxFileSize == 0 {
		s.MaxFileSize = DefaultMaxFileSize
	}
	if s.Concurrency == 0 {
		s.Concurrency = 1
	}
}

// validate checks for values that cannot be defaulted.
func (s *Settings) validate() error {
	if s.MaxFileSize < 0 {
		return fmt.Errorf("max_file_size must be positive, got %d", s.MaxFileSize)
	}
	if s.Concurrency < 0 {
		return fmt.Errorf("concurrency must be positive, got %d", s.Concurrency)
	}
	if s.MinimumLFSVersion != "" {
		minimum := s.MinimumLFSVersion
		if minimum[0] != 'v' {
			minimum = "v" + minimum
		}
		if !semver.IsValid(minimum) {
			return fmt.Errorf("minimum_lfs_version %q is not a semantic version", s.MinimumLFSVersion)
		}
	}
	return nil
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
