package match

import "strings"

// Match reports whether a key matches any configured extension or pattern
// token, and why. Rules are checked in priority order and the first hit
// wins, so a key satisfying several rules reports the highest-priority one.
func Match(key string, extensions, patterns []string) (bool, string) {
	// exact filename match, case sensitive (dotfiles like .DS_Store)
	for _, ext := range extensions {
		if key == ext || strings.HasSuffix(key, "/"+ext) {
			return true, "exact match: " + ext
		}
	}

	// suffix match for dot-prefixed tokens, case insensitive
	lowerKey := strings.ToLower(key)
	for _, ext := range extensions {
		if strings.HasPrefix(ext, ".") && strings.HasSuffix(lowerKey, strings.ToLower(ext)) {
			return true, "extension: " + ext
		}
	}

	// substring match, case insensitive
	for _, pat := range patterns {
		if strings.Contains(lowerKey, strings.ToLower(pat)) {
			return true, "contains: " + pat
		}
	}

	return false, ""
}
