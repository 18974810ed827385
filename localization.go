package localization

import (
	"io"
	"log/slog"
	"maps"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Strings owns a dictionary of per-language string tables, tracks the active
// resolved language, and exposes the merged lookup surface over it.
//
// The dictionary is immutable after construction. The resolved language and
// the merged table are derived state recomputed by SetLanguage; a Strings
// instance must be mutated by a single owner and provides no internal
// locking.
type Strings struct {
	logger            *slog.Logger
	props             *orderedmap.OrderedMap[string, Table]
	merged            Table
	interfaceLanguage string
	language          string
	available         []string
}

// New creates a Strings instance from the languages registered by the
// options. The first registered language becomes the default/fallback
// language; at least one language is required.
//
// interfaceLanguage is the host interface language tag, typically
// underscore-delimited ("en_US"); it is normalized once and used as the
// initial requested language. An empty value is reported through the logger
// and resolves to the default language.
func New(interfaceLanguage string, opts ...Option) (*Strings, error) {
	s := &Strings{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		props:  orderedmap.New[string, Table](),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.props.Len() == 0 {
		return nil, ErrNoLanguages
	}

	if interfaceLanguage == "" {
		s.logger.Warn("interface language not provided, falling back to default language",
			slog.String("default", s.defaultLanguage()))
	}
	s.interfaceLanguage = NormalizeTag(interfaceLanguage)

	s.SetLanguage(s.interfaceLanguage)

	return s, nil
}

// SetLanguage resolves the requested tag against the available languages and
// rebuilds the merged string table for the result. Keys missing from the
// resolved language fall back to the default language's values and are
// reported through the logger. Calling SetLanguage with the same tag twice
// yields identical state both times.
func (s *Strings) SetLanguage(tag string) {
	defaultTag := s.defaultLanguage()
	resolved := Resolve(NormalizeTag(tag), s.tags(), defaultTag)

	res, ok := s.props.Get(resolved)
	if !ok {
		// Resolve guarantees membership; never reached.
		return
	}
	def, _ := s.props.Get(defaultTag)

	s.language = resolved
	s.merged = mergeTables(def, res, func(path string) {
		s.logger.Warn("missing translation",
			slog.String("language", resolved),
			slog.String("key", path))
	})
}

// Language returns the currently resolved language tag. It is always one of
// the registered languages.
func (s *Strings) Language() string {
	return s.language
}

// InterfaceLanguage returns the normalized host interface language supplied
// at construction. It is constant for the life of the instance.
func (s *Strings) InterfaceLanguage() string {
	return s.interfaceLanguage
}

// AvailableLanguages returns the registered language tags in registration
// order. The list is computed on first call and cached; it never changes for
// the life of the instance.
func (s *Strings) AvailableLanguages() []string {
	if s.available == nil {
		s.available = s.tags()
	}
	return s.available
}

// T returns the text at the given key in the merged table for the active
// language, descending through nested groups on dotted paths
// ("greet.morning"). When the key is absent, or names a group rather than a
// text value, the key itself is returned and a diagnostic is logged.
func (s *Strings) T(key string) string {
	if v, ok := s.merged.lookup(key); ok && !v.IsGroup() {
		return v.Text()
	}
	s.logger.Warn("missing key",
		slog.String("language", s.language),
		slog.String("key", key))
	return key
}

// Lookup returns the value at the given key in the merged table, group
// values included. Dotted paths descend through nested groups.
func (s *Strings) Lookup(key string) (Value, bool) {
	return s.merged.lookup(key)
}

// Map returns a copy of the merged table's top level for the active
// language. Every key reachable from the default language's table is
// populated, with the resolved language's value or the default's as
// fallback.
func (s *Strings) Map() Table {
	return maps.Clone(s.merged)
}

// GetString returns the text stored at key for the given language tag,
// bypassing resolution and fallback entirely. The boolean reports whether
// the language/key pair exists and holds text; misses are logged and never
// fatal.
func (s *Strings) GetString(key, tag string) (string, bool) {
	table, ok := s.props.Get(tag)
	if !ok {
		s.logger.Warn("no language registered for tag", slog.String("language", tag))
		return "", false
	}
	v, ok := table.lookup(key)
	if !ok || v.IsGroup() {
		s.logger.Warn("no key for language",
			slog.String("language", tag),
			slog.String("key", key))
		return "", false
	}
	return v.Text(), true
}

func (s *Strings) defaultLanguage() string {
	return s.props.Oldest().Key
}

func (s *Strings) tags() []string {
	tags := make([]string, 0, s.props.Len())
	for pair := s.props.Oldest(); pair != nil; pair = pair.Next() {
		tags = append(tags, pair.Key)
	}
	return tags
}
