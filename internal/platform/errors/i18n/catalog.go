// Package i18n renders user-facing error messages from templates.
package i18n

import (
	"strings"
	"text/template"
)

// BaseLocale is the only locale shipped with the catalog.
const BaseLocale = "en-US"

// Catalog holds the compiled message templates of one locale, keyed by
// error code. Codes are plain strings so this package does not import the
// errors package.
type Catalog struct {
	locale    string
	raw       map[string]string
	templates map[string]*template.Template
}

// Default returns the base catalog.
func Default() *Catalog {
	return enUSCatalog
}

// NewCatalog compiles messages for locale. A template that fails to parse
// is kept raw and rendered verbatim.
func NewCatalog(locale string, messages map[string]string) *Catalog {
	c := &Catalog{
		locale:    locale,
		raw:       make(map[string]string, len(messages)),
		templates: make(map[string]*template.Template, len(messages)),
	}
	for code, text := range messages {
		c.raw[code] = text
		t, err := template.New(code).Option("missingkey=zero").Parse(text)
		if err != nil {
			continue
		}
		c.templates[code] = t
	}
	return c
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message for code with metadata. Unknown codes render
// as the code itself; templates that fail render raw.
func (c *Catalog) Format(code string, metadata map[string]string) string {
	raw, ok := c.raw[code]
	if !ok {
		return code
	}
	t, ok := c.templates[code]
	if !ok {
		return raw
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	var b strings.Builder
	if err := t.Execute(&b, metadata); err != nil {
		return raw
	}
	return b.String()
}
