// Package glob matches walk paths against ignore patterns.
//
// Extends path.Match with ** support for matching any path segments.
// Patterns are matched against slash-separated paths relative to the walk
// root; a pattern without a slash ("node_modules", ".*") also matches the
// last path segment on its own, so plain directory names ignore that name
// at any depth.
package glob

import (
	"path"
	"path/filepath"
	"strings"
)

// Match reports whether rel matches the glob pattern.
// Supports standard glob patterns (*, ?, [...]) plus ** for matching any
// path segments. Returns an error if the pattern is malformed.
func Match(pattern, rel string) (bool, error) {
	pattern = filepath.ToSlash(pattern)
	rel = filepath.ToSlash(rel)

	// Handle ** (match any path segments)
	if strings.Contains(pattern, "**") {
		parts := strings.Split(pattern, "**")
		if len(parts) == 2 {
			prefix := strings.TrimSuffix(parts[0], "/")
			suffix := strings.TrimPrefix(parts[1], "/")

			if prefix != "" && rel != prefix && !strings.HasPrefix(rel, prefix+"/") {
				return false, nil
			}
			if suffix == "" {
				return true, nil
			}
			// Match suffix as a glob pattern against all path segments
			segments := strings.Split(rel, "/")
			for i := range segments {
				tail := strings.Join(segments[i:], "/")
				m, err := path.Match(suffix, tail)
				if err != nil {
					return false, err
				}
				if m {
					return true, nil
				}
			}
			return false, nil
		}
	}

	matched, err := path.Match(pattern, rel)
	if err != nil {
		return false, err
	}
	if matched || strings.Contains(pattern, "/") {
		return matched, nil
	}

	// Slash-free patterns also match the last segment
	return path.Match(pattern, path.Base(rel))
}

// Any reports whether rel matches at least one of patterns.
// Malformed patterns never match.
func Any(patterns []string, rel string) bool {
	for _, p := range patterns {
		if m, err := Match(p, rel); err == nil && m {
			return true
		}
	}
	return false
}

// Check returns the first malformed pattern's error, if any.
func Check(patterns []string) error {
	for _, p := range patterns {
		if _, err := Match(p, ""); err != nil {
			return err
		}
	}
	return nil
}
