// Package locale provides the translated UI strings and the list of
// languages nodeconf can display.
package locale

import (
	"embed"
	"fmt"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// supported lists the catalogs under locales/, default first.
var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Japanese,
}

var matcher = language.NewMatcher(supported)

// Language describes a selectable UI language.
type Language struct {
	Code        string `json:"code" yaml:"code"`
	NativeName  string `json:"native_name" yaml:"native_name"`
	EnglishName string `json:"english_name" yaml:"english_name"`
}

// Supported returns the selectable languages in display order.
func Supported() []Language {
	out := make([]Language, 0, len(supported))
	for _, tag := range supported {
		out = append(out, Language{
			Code:        tag.String(),
			NativeName:  NativeName(tag),
			EnglishName: display.English.Tags().Name(tag),
		})
	}
	return out
}

// NativeName returns the name of tag in its own language.
func NativeName(tag language.Tag) string {
	return display.Self.Name(tag)
}

// Match resolves any BCP 47 code to the closest supported language.
// Unknown or malformed codes fall back to English.
func Match(code string) language.Tag {
	tag, err := language.Parse(code)
	if err != nil {
		return language.English
	}
	_, idx, _ := matcher.Match(tag)
	return supported[idx]
}

// Translator looks up UI strings for one language.
type Translator struct {
	bundle    *i18n.Bundle
	lang      language.Tag
	localizer *i18n.Localizer
}

// NewTranslator loads every catalog and selects code.
func NewTranslator(code string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, path.Join("locales", entry.Name())); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", entry.Name(), err)
		}
	}

	t := &Translator{bundle: bundle}
	t.SetLanguage(code)
	return t, nil
}

// SetLanguage switches to the closest supported language.
func (t *Translator) SetLanguage(code string) {
	t.lang = Match(code)
	t.localizer = i18n.NewLocalizer(t.bundle, t.lang.String())
}

// Language returns the active language.
func (t *Translator) Language() language.Tag {
	return t.lang
}

// T returns the string for id. Missing ids come back unchanged so a gap in a
// catalog is visible instead of blank.
func (t *Translator) T(id string) string {
	return t.TData(id, nil)
}

// TData is T with template data.
func (t *Translator) TData(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
