package i18n

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is the language served at unprefixed paths when no configuration is supplied.
const DefaultLanguage = "en"

// langCodePattern restricts configured codes to what ExtractPathLocale can recognise in a path.
var langCodePattern = regexp.MustCompile(`^[a-z]{2}$`)

// Language is a single supported content language.
type Language struct {
	Code    string `yaml:"code"`
	Label   string `yaml:"label"`
	Default bool   `yaml:"default"`
}

// Languages is the validated, read-only set of supported languages.
// Exactly one language is the default one.
type Languages struct {
	langs []Language
	index map[string]int
	def   int
}

// NewLanguages validates the given list and returns an immutable language set.
// Order is preserved as configured.
func NewLanguages(langs ...Language) (*Languages, error) {
	if len(langs) == 0 {
		return nil, ErrNoLanguages
	}

	set := &Languages{
		langs: make([]Language, 0, len(langs)),
		index: make(map[string]int, len(langs)),
		def:   -1,
	}

	for _, l := range langs {
		if !langCodePattern.MatchString(l.Code) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLanguageCode, l.Code)
		}
		tag, err := language.Parse(l.Code)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("%w: %q", ErrInvalidLanguageCode, l.Code), err)
		}
		if _, ok := set.index[l.Code]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLanguage, l.Code)
		}
		if l.Default {
			if set.def >= 0 {
				return nil, fmt.Errorf("%w: %q and %q", ErrMultipleDefaultLanguages, set.langs[set.def].Code, l.Code)
			}
			set.def = len(set.langs)
		}
		if l.Label == "" {
			l.Label = display.Self.Name(tag)
		}

		set.index[l.Code] = len(set.langs)
		set.langs = append(set.langs, l)
	}

	if set.def < 0 {
		return nil, ErrNoDefaultLanguage
	}

	return set, nil
}

// MustNewLanguages is like NewLanguages but panics on invalid configuration.
func MustNewLanguages(langs ...Language) *Languages {
	set, err := NewLanguages(langs...)
	if err != nil {
		panic(fmt.Sprintf("invalid language configuration: %v", err))
	}
	return set
}

// DefaultLanguages returns the built-in language set: English (default), Simplified Chinese and Japanese.
func DefaultLanguages() *Languages {
	return MustNewLanguages(
		Language{Code: DefaultLanguage, Label: "English", Default: true},
		Language{Code: "zh", Label: "简体中文"},
		Language{Code: "ja", Label: "日本語"},
	)
}

type languagesFile struct {
	Languages []Language `yaml:"languages"`
}

// LoadLanguagesFile reads a YAML file with a top-level "languages" list.
//
//	languages:
//	  - code: en
//	    label: English
//	    default: true
//	  - code: ar
func LoadLanguagesFile(path string) (*Languages, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadLanguages, err)
	}

	var f languagesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Join(ErrFailedToParseLanguages, err)
	}

	return NewLanguages(f.Languages...)
}

// Default returns the default language.
func (s *Languages) Default() Language {
	return s.langs[s.def]
}

// DefaultCode returns the code of the default language.
func (s *Languages) DefaultCode() string {
	return s.Default().Code
}

// Get returns the language with the given code.
func (s *Languages) Get(code string) (Language, bool) {
	i, ok := s.index[code]
	if !ok {
		return Language{}, false
	}
	return s.langs[i], true
}

// IsSupported reports whether code is one of the configured languages.
func (s *Languages) IsSupported(code string) bool {
	_, ok := s.index[code]
	return ok
}

// IsNonDefault reports whether code is a configured language other than the default one.
func (s *Languages) IsNonDefault(code string) bool {
	i, ok := s.index[code]
	return ok && i != s.def
}

// Codes returns all language codes in configuration order.
func (s *Languages) Codes() []string {
	codes := make([]string, len(s.langs))
	for i, l := range s.langs {
		codes[i] = l.Code
	}
	return codes
}

// NonDefaultCodes returns the codes of every language served under a path prefix.
func (s *Languages) NonDefaultCodes() []string {
	codes := make([]string, 0, len(s.langs)-1)
	for i, l := range s.langs {
		if i != s.def {
			codes = append(codes, l.Code)
		}
	}
	return codes
}
