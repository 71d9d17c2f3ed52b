package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/napalu/ezopt/types"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrDefaultLanguageNotFound            = errors.New("default " + ErrLanguageNotFound.Error())
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
)

// Bundle holds the translations of every supported language together with the
// message printers used to format them.
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
	supported    []language.Tag
	matcher      language.Matcher
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundleWithFS(defaultLocales, "locales")
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the bundle built from the embedded locales
func Default() *Bundle {
	return defaultBundle
}

// NewBundle returns a fresh bundle built from the embedded locales
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
		supported:    []language.Tag{language.English},
		matcher:      language.NewMatcher([]language.Tag{language.English}),
	}
}

// NewBundleWithFS loads every <lang>.json file found in dirPrefix. English must be among them.
func NewBundleWithFS(fsys fs.FS, dirPrefix string) (*Bundle, error) {
	b := NewEmptyBundle()

	if err := b.loadWithFS(fsys, dirPrefix); err != nil {
		return nil, err
	}

	if _, exists := b.translations[b.defaultLang]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	return b, nil
}

// T returns the translation for the given key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	return b.TL(b.DefaultLanguage(), key, args...)
}

// TL returns the translation for the given language and key
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if p, exists := b.printers[lang]; exists {
		return p.Sprintf(key, args...)
	}

	if p := b.printers[b.defaultLang]; p != nil {
		return p.Sprintf(key, args...)
	}

	return key
}

// AddLanguage adds a new language to the bundle or merges into an existing one.
// A new non-default language must define exactly the keys of the default language.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	original := b.translations[lang]
	merged := make(map[string]string, len(original)+len(translations))
	for k, v := range original {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}
	b.translations[lang] = merged

	if lang != b.defaultLang && original == nil {
		if errs := b.validateLanguage(lang); len(errs) > 0 {
			delete(b.translations, lang)
			return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, lang, errs)
		}
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			delete(merged, key)
			return fmt.Errorf("%w: %s: %w", ErrFailedToSetString, key, err)
		}
	}

	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	b.supported = b.sortedLanguages()
	b.matcher = language.NewMatcher(b.supported)

	return nil
}

// Match returns the best supported language for the requested tag
func (b *Bundle) Match(lang language.Tag) language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, idx, confidence := b.matcher.Match(lang)
	if confidence == language.No || idx >= len(b.supported) {
		return b.defaultLang
	}

	return b.supported[idx]
}

// HasLanguage checks if a language is supported
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang]
	return exists
}

// Languages returns a list of supported languages
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.sortedLanguages()
}

// HasKey checks if a key exists in a language
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	translations, exists := b.translations[lang]
	if !exists {
		return false
	}

	_, exists = translations[key]
	return exists
}

// Lookup returns the raw, unformatted translation of key
func (b *Bundle) Lookup(lang language.Tag, key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if msg, ok := b.translations[lang][key]; ok {
		return msg, true
	}
	msg, ok := b.translations[b.defaultLang][key]

	return msg, ok
}

func (b *Bundle) DefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.defaultLang
}

// SetDefaultLanguage sets the default language
func (b *Bundle) SetDefaultLanguage(lang language.Tag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.defaultLang = lang
}

// the default language is always first so that the matcher falls back to it
func (b *Bundle) sortedLanguages() []language.Tag {
	langs := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		if lang != b.defaultLang {
			langs = append(langs, lang)
		}
	}

	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})

	if _, ok := b.translations[b.defaultLang]; ok {
		langs = append([]language.Tag{b.defaultLang}, langs...)
	}

	return langs
}

func (b *Bundle) loadWithFS(fsys fs.FS, dirPrefix string) error {
	entries, err := fs.ReadDir(fsys, dirPrefix)
	if err != nil {
		return err
	}

	langEntries := make([]types.KeyValue[language.Tag, string], 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		lang := strings.TrimSuffix(entry.Name(), ".json")
		parsedLang, err := language.Parse(lang)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		file := path.Join(dirPrefix, entry.Name())
		if parsedLang != b.defaultLang {
			langEntries = append(langEntries, types.KeyValue[language.Tag, string]{Key: parsedLang, Value: file})
		} else if err := b.processLangFile(fsys, parsedLang, file); err != nil {
			return err
		}
	}

	// other languages are validated against the default, so they load last
	for _, langEntry := range langEntries {
		if err := b.processLangFile(fsys, langEntry.Key, langEntry.Value); err != nil {
			return err
		}
	}

	return nil
}

func (b *Bundle) processLangFile(fsys fs.FS, lang language.Tag, file string) error {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return err
	}

	return b.AddLanguage(lang, translations)
}

func (b *Bundle) validateLanguage(lang language.Tag) []error {
	var errors []error

	translations := b.translations[lang]
	if len(translations) == 0 {
		errors = append(errors, fmt.Errorf("%w: %s", ErrEmptyTranslations, lang))
	}

	defaultTranslations, exists := b.translations[b.defaultLang]
	if !exists {
		return append(errors, fmt.Errorf("%w: %s", ErrDefaultLanguageNotFound, b.defaultLang))
	}

	for key := range defaultTranslations {
		if _, exists := translations[key]; !exists {
			errors = append(errors, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}

	for key := range translations {
		if _, exists := defaultTranslations[key]; !exists {
			errors = append(errors, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}

	return errors
}
