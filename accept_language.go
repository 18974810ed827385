package localization

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps header parsing to avoid pathological input.
const maxAcceptLanguageLength = 4096

// acceptTag is a parsed Accept-Language entry with its quality value.
type acceptTag struct {
	tag     string
	quality float64
}

// ParseAcceptLanguage parses an Accept-Language header and returns the best
// match from the available language tags. Entries are tried in descending
// quality order, each matched with the same subtag-truncation rule used by
// Resolve, so "en-US,pl;q=0.8" matches an available "en". When no entry
// matches, or the header is empty, the first available tag is returned.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}

	// Accept-Language matching is case-insensitive; map lowered forms back
	// to the registered spelling.
	lowered := make([]string, len(available))
	original := make(map[string]string, len(available))
	for i, tag := range available {
		lowered[i] = strings.ToLower(tag)
		original[lowered[i]] = tag
	}

	for _, entry := range parseAcceptTags(header) {
		if match := Resolve(entry.tag, lowered, ""); match != "" {
			return original[match]
		}
	}

	return available[0]
}

// parseAcceptTags splits an Accept-Language header into tags with quality
// values, sorted by descending quality. Wildcards are dropped.
func parseAcceptTags(header string) []acceptTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []acceptTag

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart, qPart, hasQuality := strings.Cut(part, ";")
		langPart = strings.TrimSpace(langPart)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if langPart != "" && langPart != "*" {
			tags = append(tags, acceptTag{
				tag:     strings.ToLower(langPart),
				quality: quality,
			})
		}
	}

	slices.SortStableFunc(tags, func(a, b acceptTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}
