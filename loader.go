package localization

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// WithJSONFS returns an Option that loads translations from JSON files in an
// fs.FS (including embed.FS). The file basename is the language tag:
//
//	en.json
//	it.json
//	zh-Hans.json
//
// Files load in lexical walk order, so the first file encountered becomes
// the default language unless a language was registered by an earlier
// option.
func WithJSONFS(fsys fs.FS) Option {
	return func(s *Strings) error {
		return loadFS(s, fsys, ".json", func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

// WithYAMLFS returns an Option that loads translations from YAML files
// (.yaml or .yml) in an fs.FS. See WithJSONFS for the file convention and
// ordering.
func WithYAMLFS(fsys fs.FS) Option {
	return func(s *Strings) error {
		return loadFS(s, fsys, ".yaml", func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

func loadFS(s *Strings, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		fileExt := strings.ToLower(path.Ext(filePath))
		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			return nil
		}

		tag := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
		parsed, err := language.Parse(tag)
		if err != nil {
			return fmt.Errorf("%w: %q in %q", ErrInvalidLanguage, tag, filePath)
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var translations map[string]any
		if err := unmarshal(data, &translations); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		return s.addLanguage(parsed.String(), tableFromMap(translations))
	})
}
