package localization_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	localization "github.com/LeeroyGroup/ReactNativeLocalization"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requested string
		available []string
		fallback  string
		expected  string
	}{
		{
			name:      "exact match wins",
			requested: "it",
			available: []string{"en", "it"},
			fallback:  "en",
			expected:  "it",
		},
		{
			name:      "exact match wins over truncation",
			requested: "en-US",
			available: []string{"en", "en-US"},
			fallback:  "en",
			expected:  "en-US",
		},
		{
			name:      "first truncation that matches",
			requested: "en-US-POSIX",
			available: []string{"en-US", "en"},
			fallback:  "en",
			expected:  "en-US",
		},
		{
			name:      "truncates all the way to the base language",
			requested: "en-US-POSIX",
			available: []string{"en", "it"},
			fallback:  "en",
			expected:  "en",
		},
		{
			name:      "total fallback when nothing matches",
			requested: "fr-CA",
			available: []string{"en", "it"},
			fallback:  "en",
			expected:  "en",
		},
		{
			name:      "requested equal to fallback",
			requested: "en",
			available: []string{"en", "it"},
			fallback:  "en",
			expected:  "en",
		},
		{
			name:      "empty requested tag falls back",
			requested: "",
			available: []string{"en", "it"},
			fallback:  "en",
			expected:  "en",
		},
		{
			name:      "script subtag matches",
			requested: "zh-Hans-CN",
			available: []string{"zh-Hans", "en"},
			fallback:  "en",
			expected:  "zh-Hans",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, localization.Resolve(tt.requested, tt.available, tt.fallback))
		})
	}

	t.Run("always returns a member of available or the fallback", func(t *testing.T) {
		t.Parallel()
		available := []string{"en", "en-US", "it", "zh-Hans"}
		requests := []string{"en", "en-US", "en-US-POSIX", "it-IT", "zh-Hans-CN", "fr", "fr-CA", ""}
		for _, requested := range requests {
			result := localization.Resolve(requested, available, "en")
			require.Contains(t, available, result, "requested %q", requested)
		}
	})
}

func TestNormalizeTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tag      string
		expected string
	}{
		{name: "underscore to hyphen", tag: "en_US", expected: "en-US"},
		{name: "multiple underscores", tag: "zh_Hans_CN", expected: "zh-Hans-CN"},
		{name: "already hyphenated", tag: "en-US", expected: "en-US"},
		{name: "trims whitespace", tag: "  it_IT ", expected: "it-IT"},
		{name: "empty tag", tag: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, localization.NormalizeTag(tt.tag))
		})
	}
}
