// Package i18n localizes the user-facing strings of the navigator: header
// titles and the back button label. Message IDs are the English text.
package i18n

import (
	"embed"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Catalog holds every loaded message file.
type Catalog struct {
	bundle *goi18n.Bundle
}

// NewCatalog loads the embedded message files. English is the fallback.
func NewCatalog() (*Catalog, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, f := range files {
		p := path.Join("locales", f.Name())
		buf, err := locales.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		if _, err := bundle.ParseMessageFileBytes(buf, p); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
	}

	return &Catalog{bundle: bundle}, nil
}

// Languages returns the languages with a message file.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// Localizer returns a Localizer for locale, e.g. "es" or "en-GB".
// Unparseable locales fall back to English.
func (c *Catalog) Localizer(locale string) *Localizer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Localizer{
		tag:       tag,
		localizer: goi18n.NewLocalizer(c.bundle, tag.String()),
	}
}

// Localizer translates message IDs for one locale.
type Localizer struct {
	tag       language.Tag
	localizer *goi18n.Localizer
}

// Tag returns the requested locale.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Translate returns the localized text for id, or id itself when no
// language has a message for it.
func (l *Localizer) Translate(id string) string {
	s, err := l.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil || s == "" {
		return id
	}
	return s
}
