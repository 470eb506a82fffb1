package entities

import (
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

// Line grammar of `git lfs track` (listing mode):
//
//	Listing tracked patterns
//	    *.psd (.gitattributes)
//	    assets/big.bin (assets/.gitattributes)
//
// Only indented lines ending in a parenthesised source file carry a pattern.
var trackedPatternLine = regexp.MustCompile(`^\s+(.+?)\s+\(`)

// `git check-attr filter <path>` prints "<path>: filter: <value>".
var lfsFilterAttribute = regexp.MustCompile(`: filter: lfs`)

// `git lfs version` prints e.g. "git-lfs/3.4.1 (GitHub; linux amd64; go 1.21.5)".
var lfsVersionLine = regexp.MustCompile(`git-lfs/(\d+(?:\.\d+){0,2})`)

// ParseTrackedPatterns extracts the patterns from `git lfs track` output,
// keeping the tool's order. Headers and blank lines are ignored.
func ParseTrackedPatterns(output string) []TrackPattern {
	patterns := make([]TrackPattern, 0)
	for _, line := range splitLines(output) {
		if match := trackedPatternLine.FindStringSubmatch(line); match != nil {
			patterns = append(patterns, match[1])
		}
	}
	return patterns
}

// HasTrackedPattern reports whether `git lfs track` output lists at least one
// pattern. It stops at the first matching line.
func HasTrackedPattern(output string) bool {
	if output == "" {
		return false
	}
	for _, line := range splitLines(output) {
		if trackedPatternLine.MatchString(line) {
			return true
		}
	}
	return false
}

// IsFilteredByLFS reports whether `git check-attr filter` output assigns the
// lfs filter. Any other value, "unspecified" included, means not tracked.
func IsFilteredByLFS(output string) bool {
	return lfsFilterAttribute.MatchString(output)
}

// ParseLFSVersion returns the canonical semantic version ("v3.4.1") found in
// `git lfs version` output, or "" when none is present.
func ParseLFSVersion(output string) string {
	match := lfsVersionLine.FindStringSubmatch(output)
	if match == nil {
		return ""
	}
	return semver.Canonical("v" + match[1])
}

// MeetsMinimumVersion reports whether version is at least minimum. An empty
// minimum accepts everything; an unparsable version never qualifies.
func MeetsMinimumVersion(version, minimum string) bool {
	if minimum == "" {
		return true
	}
	if !semver.IsValid(version) {
		return false
	}
	if !strings.HasPrefix(minimum, "v") {
		minimum = "v" + minimum
	}
	return semver.Compare(version, semver.Canonical(minimum)) >= 0
}

func splitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
