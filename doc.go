// Package localization provides runtime string localization: it selects the
// best-matching language for a requested locale, merges translated strings
// with a default-language fallback, and exposes a flat lookup surface with
// positional placeholder formatting.
//
// # Basic Usage
//
// Register languages at construction; the first registered language is the
// default/fallback. The host interface language (underscore-delimited on
// most platforms) selects the initial language:
//
//	loc, err := localization.New("it_IT",
//		localization.WithLanguage("en", map[string]any{
//			"how":            "How do you want your egg today?",
//			"boiledEgg":      "Boiled egg",
//			"choice":         "I'd like {0} and {1}, or just {0}",
//		}),
//		localization.WithLanguage("it", map[string]any{
//			"how":       "Come vuoi il tuo uovo oggi?",
//			"boiledEgg": "Uovo sodo",
//		}),
//	)
//
//	loc.T("how")       // "Come vuoi il tuo uovo oggi?"
//	loc.T("choice")    // falls back to the English text
//	loc.Language()     // "it"
//
// # Language Matching
//
// A requested tag matches the most specific registered tag: an exact match
// wins, then trailing subtags are stripped one at a time ("en-US-POSIX" →
// "en-US" → "en"), and finally the default language applies:
//
//	localization.Resolve("en-US", []string{"en", "it"}, "en") // "en"
//	localization.Resolve("fr-CA", []string{"en", "it"}, "en") // "en"
//
// # Fallback Merge
//
// Switching languages rebuilds a merged table: keys from the resolved
// language override the default's, keys missing from the resolved language
// keep the default's value, and nested groups are merged field by field.
// Every key present in the default language is always populated:
//
//	loc.SetLanguage("it")
//	loc.T("greet.morning") // Italian text, or English when untranslated
//
// # Nested Tables
//
// Translation values are either text or nested groups. Dotted key paths
// descend through groups; Lookup returns the typed value:
//
//	if v, ok := loc.Lookup("greet"); ok && v.IsGroup() {
//		entries := v.Group()
//		_ = entries
//	}
//
// # Formatting
//
// Templates reference values by position with {N}. Format returns the
// ordered segments for a rendering layer; FormatString concatenates them:
//
//	localization.FormatString("I'd like some {0} and {1}", "bread", "butter")
//	// "I'd like some bread and butter"
//
//	segments := localization.Format(loc.T("choice"), "egg", "toast")
//	// literal and substituted segments, each with a distinct key
//
// # File-Based Translations
//
// Load languages from JSON or YAML files in an fs.FS, one file per language
// tag (en.json, it.yaml):
//
//	//go:embed locales
//	var localesFS embed.FS
//
//	subFS, _ := fs.Sub(localesFS, "locales")
//	loc, err := localization.New("en_US", localization.WithJSONFS(subFS))
//
// # Diagnostics
//
// Missing translations and failed direct lookups never fail; they are
// reported through an optional log/slog logger:
//
//	loc, err := localization.New("en_US",
//		localization.WithLogger(slog.Default()),
//		localization.WithLanguage("en", table),
//	)
//
// # Concurrency
//
// A Strings instance is mutated only by SetLanguage and carries no internal
// locking; callers sharing an instance across goroutines must synchronize
// externally.
package localization
