package entities

import "strings"

// TrackPattern is a glob (e.g. "*.psd") or a literal repository-relative path
// understood by `git lfs track`.
type TrackPattern = string

// DerivePatterns turns file paths into the minimal set of patterns needed to
// track them, in first-seen order.
//
// A path with an extension contributes "*" + extension. A path without one
// contributes itself, so extensionless files are tracked individually instead
// of through an overly broad glob. Only the final dot-delimited segment counts
// as the extension: "archive.tar.gz" yields "*.gz". Separators are not
// normalised; callers pass paths already relative to the repository root.
func DerivePatterns(paths []string) []TrackPattern {
	seen := make(map[TrackPattern]struct{}, len(paths))
	patterns := make([]TrackPattern, 0, len(paths))

	for _, path := range paths {
		pattern := path
		if ext := extension(path); ext != "" {
			pattern = "*" + ext
		}

		if _, ok := seen[pattern]; ok {
			continue
		}
		seen[pattern] = struct{}{}
		patterns = append(patterns, pattern)
	}

	return patterns
}

// extension returns the suffix starting at the last "." of the final
// "/"-separated segment, or "" when there is none. A leading dot (".env") is
// part of the name, not an extension.
func extension(path string) string {
	base := path[strings.LastIndex(path, "/")+1:]

	dot := strings.LastIndex(base, ".")
	if dot <= 0 {
		return ""
	}
	return base[dot:]
}
