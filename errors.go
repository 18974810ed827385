package localization

import "errors"

var (
	ErrNoLanguages     = errors.New("localization: at least one language is required")
	ErrEmptyLanguage   = errors.New("localization: language tag cannot be empty")
	ErrNilLogger       = errors.New("localization: logger cannot be nil")
	ErrInvalidLanguage = errors.New("localization: invalid language tag")
	ErrInvalidFile     = errors.New("localization: invalid translation file")
)
