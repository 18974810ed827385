package localization

import (
	"log/slog"
	"maps"
)

// Option configures a Strings instance during construction.
type Option func(*Strings) error

// WithLanguage registers translations for a language tag. The tag is
// normalized to hyphen-delimited form; the first language registered becomes
// the default/fallback language. Registering the same tag again merges the
// new top-level keys over the existing ones.
//
// The translations map can be nested; strings become text values, nested
// maps become groups, and other scalars are rendered with fmt.
func WithLanguage(tag string, translations map[string]any) Option {
	return func(s *Strings) error {
		return s.addLanguage(tag, tableFromMap(translations))
	}
}

// WithTable registers an already-typed string table for a language tag. See
// WithLanguage for ordering and merge semantics.
func WithTable(tag string, table Table) Option {
	return func(s *Strings) error {
		return s.addLanguage(tag, maps.Clone(table))
	}
}

// WithLogger sets the logger used for diagnostics (missing translations,
// failed direct lookups). Diagnostics are observational only and never alter
// behavior. Defaults to a logger that discards all output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Strings) error {
		if logger == nil {
			return ErrNilLogger
		}
		s.logger = logger
		return nil
	}
}

func (s *Strings) addLanguage(tag string, table Table) error {
	if tag == "" {
		return ErrEmptyLanguage
	}

	norm := NormalizeTag(tag)
	if existing, ok := s.props.Get(norm); ok {
		maps.Copy(existing, table)
		return nil
	}
	s.props.Set(norm, table)

	return nil
}
