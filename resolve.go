package localization

import (
	"slices"
	"strings"
)

// Resolve maps a requested language tag to the most specific tag present in
// available. An exact match wins; otherwise the trailing hyphen-delimited
// subtag is stripped and the shorter tag is tried again ("en-US-POSIX" →
// "en-US" → "en"). When no candidate matches at any specificity level,
// fallback is returned.
//
// Tags are matched as-is; underscore-delimited input must be normalized with
// NormalizeTag first.
func Resolve(requested string, available []string, fallback string) string {
	for {
		if slices.Contains(available, requested) {
			return requested
		}
		i := strings.LastIndexByte(requested, '-')
		if i < 0 {
			return fallback
		}
		requested = requested[:i]
	}
}

// NormalizeTag converts an underscore-delimited language tag, as delivered by
// host platforms ("en_US"), to the hyphen-delimited form used everywhere in
// this package. Surrounding whitespace is trimmed.
func NormalizeTag(tag string) string {
	return strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
}
