package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

const (
	LangRU = "ru"
	LangEN = "en"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

type Manager struct {
	defaultLanguage string
	locales         map[string]map[string]string
	supported       []string
	matcher         language.Matcher
}

// NewEmbeddedManager loads the locales compiled into the binary.
func NewEmbeddedManager(defaultLanguage string) (*Manager, error) {
	locales, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, fmt.Errorf("open embedded locales: %w", err)
	}
	return NewManager(defaultLanguage, locales)
}

// NewManager reads every <lang>.json file at the root of locales.
func NewManager(defaultLanguage string, locales fs.FS) (*Manager, error) {
	manager := &Manager{
		locales: map[string]map[string]string{},
	}

	entries, err := fs.ReadDir(locales, ".")
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}

		lang := strings.TrimSuffix(strings.ToLower(entry.Name()), path.Ext(entry.Name()))
		content, err := fs.ReadFile(locales, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}

		messages := map[string]string{}
		if err := json.Unmarshal(content, &messages); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}
		if len(messages) == 0 {
			return nil, fmt.Errorf("locale %s is empty", lang)
		}

		manager.locales[lang] = messages
		manager.supported = append(manager.supported, lang)
	}

	if len(manager.supported) == 0 {
		return nil, fmt.Errorf("no locales found")
	}
	for _, required := range []string{LangEN, LangRU} {
		if _, ok := manager.locales[required]; !ok {
			return nil, fmt.Errorf("required locale %q missing", required)
		}
	}

	sort.Strings(manager.supported)
	manager.defaultLanguage = LangEN
	manager.defaultLanguage = manager.NormalizeLanguage(defaultLanguage)

	// The default goes first so the matcher falls back to it.
	tags := []language.Tag{language.Make(manager.defaultLanguage)}
	for _, lang := range manager.supported {
		if lang != manager.defaultLanguage {
			tags = append(tags, language.Make(lang))
		}
	}
	manager.matcher = language.NewMatcher(tags)
	return manager, nil
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

func (manager *Manager) SupportedLanguages() []string {
	result := make([]string, len(manager.supported))
	copy(result, manager.supported)
	return result
}

func (manager *Manager) NormalizeLanguage(raw string) string {
	normalized := normalizeLanguageTag(raw)
	if manager.isSupported(normalized) {
		return normalized
	}
	return manager.defaultLanguage
}

// Supports reports whether raw names a loaded locale, ignoring region.
func (manager *Manager) Supports(raw string) bool {
	return manager.isSupported(normalizeLanguageTag(raw))
}

// DetectFromAcceptLanguage picks the best supported language for an
// Accept-Language header, honouring q-values.
func (manager *Manager) DetectFromAcceptLanguage(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return manager.defaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return manager.defaultLanguage
	}

	matched, _, confidence := manager.matcher.Match(tags...)
	if confidence == language.No {
		return manager.defaultLanguage
	}
	base, _ := matched.Base()
	return manager.NormalizeLanguage(base.String())
}

func (manager *Manager) Messages(lang string) map[string]string {
	defaultMessages := manager.locales[manager.defaultLanguage]
	targetMessages := manager.locales[manager.NormalizeLanguage(lang)]

	result := make(map[string]string, len(defaultMessages)+len(targetMessages))
	for key, value := range defaultMessages {
		result[key] = value
	}
	for key, value := range targetMessages {
		result[key] = value
	}
	return result
}

// Translate falls back to the default language, then to the key itself.
func (manager *Manager) Translate(lang string, key string) string {
	if value, ok := manager.locales[manager.NormalizeLanguage(lang)][key]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	if value, ok := manager.locales[manager.defaultLanguage][key]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	return key
}

func (manager *Manager) isSupported(lang string) bool {
	if lang == "" {
		return false
	}
	_, ok := manager.locales[lang]
	return ok
}

func normalizeLanguageTag(raw string) string {
	lang := strings.ToLower(strings.TrimSpace(raw))
	if lang == "" {
		return ""
	}
	lang = strings.ReplaceAll(lang, "_", "-")
	if separator := strings.Index(lang, "-"); separator >= 0 {
		lang = lang[:separator]
	}
	return lang
}
