// Package i18n resolves message keys to French or English text.
//
// Keys not found in the requested language fall back to French, then to
// the key itself. Parameters are substituted into {name} placeholders.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Supported languages.
const (
	French  = "fr"
	English = "en"
)

// DefaultLanguage is used when nothing better matches.
const DefaultLanguage = French

// Translator resolves a key and its parameters to display text.
type Translator interface {
	Translate(key string, params map[string]string) string
}

// Catalog is a Translator bound to one language of the built-in bundles.
type Catalog struct {
	lang     string
	messages map[string]string
}

// New returns the catalog for lang. Unknown languages get French.
func New(lang string) *Catalog {
	lang = MatchLanguage(lang)
	return &Catalog{lang: lang, messages: bundles[lang]}
}

// Language returns the catalog's language code.
func (c *Catalog) Language() string {
	return c.lang
}

// Translate implements Translator.
func (c *Catalog) Translate(key string, params map[string]string) string {
	msg, ok := c.messages[key]
	if !ok {
		msg, ok = bundles[DefaultLanguage][key]
	}
	if !ok {
		return key
	}
	return substitute(msg, params)
}

// Has reports whether key exists in the catalog's own language.
func (c *Catalog) Has(key string) bool {
	_, ok := c.messages[key]
	return ok
}

// T translates key in lang without parameters.
func T(lang, key string) string {
	return New(lang).Translate(key, nil)
}

// Keys returns every key of the French bundle.
func Keys() []string {
	keys := make([]string, 0, len(bundles[DefaultLanguage]))
	for k := range bundles[DefaultLanguage] {
		keys = append(keys, k)
	}
	return keys
}

var matcher = language.NewMatcher([]language.Tag{language.French, language.English})

// MatchLanguage maps a BCP 47 tag such as "en-GB" to a supported
// language code. Anything unrecognised yields French.
func MatchLanguage(tag string) string {
	t, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return DefaultLanguage
	}
	return fromMatch(t)
}

// DetectLanguage picks a language from an Accept-Language header value.
func DetectLanguage(header string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	return fromMatch(tags...)
}

func fromMatch(tags ...language.Tag) string {
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLanguage
	}
	if index == 1 {
		return English
	}
	return French
}

func substitute(msg string, params map[string]string) string {
	if len(params) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(params)*2)
	for name, value := range params {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
