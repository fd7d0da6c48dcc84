package dhcpd

import "strings"

// FilterOut returns a copy of the record with keys removed based on the
// provided patterns. Supports wildcard patterns:
//   - "prefix*" matches keys starting with "prefix"
//   - "*suffix" matches keys ending with "suffix"
//   - "*contains*" matches keys containing "contains"
//   - "exact" matches keys exactly
func (r HostRecord) FilterOut(patterns []string) HostRecord {
	result := make(HostRecord)

	for key, value := range r {
		omit := false
		for _, pattern := range patterns {
			if matchesPattern(key, pattern) {
				omit = true
				break
			}
		}
		if !omit {
			result[key] = value
		}
	}

	return result
}

// matchesPattern checks if a key matches a wildcard pattern.
func matchesPattern(key, pattern string) bool {
	// No wildcard - exact match
	if !strings.Contains(pattern, "*") {
		return key == pattern
	}

	// *contains* match
	if strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") {
		return strings.Contains(key, strings.Trim(pattern, "*"))
	}

	// prefix* match
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(key, strings.TrimSuffix(pattern, "*"))
	}

	// *suffix match
	return strings.HasSuffix(key, strings.TrimPrefix(pattern, "*"))
}
