// Package i18n negotiates the response language and localizes the labels
// the API hands to renderers.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"folioapi/internal/model"
	"folioapi/internal/search"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "folio_lang"
)

var (
	supported = []language.Tag{language.French, language.English}
	matcher   = language.NewMatcher(supported)
)

// Supported returns the supported language tags, default first.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Default returns the fallback language.
func Default() language.Tag {
	return supported[0]
}

// ParseTag parses value and reports whether it names a supported language.
func ParseTag(value string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Und, false
	}
	base, _ := tag.Base()
	for _, s := range supported {
		if sb, _ := s.Base(); sb == base {
			return s, true
		}
	}
	return language.Und, false
}

// MatchTags picks the best supported language for the preference list.
func MatchTags(tags []language.Tag) language.Tag {
	return NewResolver(Default()).match(tags)
}

// ResolveTag resolves with the package default as fallback.
func ResolveTag(query, cookie, acceptLanguage string) (language.Tag, bool) {
	return NewResolver(Default()).Resolve(query, cookie, acceptLanguage)
}

// Resolver negotiates a language with a configurable fallback.
type Resolver struct {
	fallback language.Tag
}

// NewResolver returns a Resolver falling back to the supported language
// closest to fallback.
func NewResolver(fallback language.Tag) Resolver {
	if tag, ok := ParseTag(fallback.String()); ok {
		return Resolver{fallback: tag}
	}
	return Resolver{fallback: Default()}
}

// Fallback returns the language used when nothing else matches.
func (r Resolver) Fallback() language.Tag {
	return r.fallback
}

// Resolve determines the response language from, in order, an explicit
// query value, the stored cookie, and the Accept-Language header.
// The bool reports whether the query value should be persisted.
func (r Resolver) Resolve(query, cookie, acceptLanguage string) (language.Tag, bool) {
	if query != "" {
		if tag, ok := ParseTag(query); ok {
			return tag, true
		}
	}
	if cookie != "" {
		if tag, ok := ParseTag(cookie); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(acceptLanguage); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return r.match(tags), false
		}
	}
	return r.fallback, false
}

func (r Resolver) match(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return r.fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return r.fallback
	}
	return supported[idx]
}

// CategoryLabel returns the localized display label of a category.
func CategoryLabel(tag language.Tag, c model.Category) string {
	return message.NewPrinter(tag).Sprintf(categoryKey(c))
}

// SortLabel returns the localized display label of a sort order.
func SortLabel(tag language.Tag, o search.SortOrder) string {
	return message.NewPrinter(tag).Sprintf("sort." + string(o))
}

// Text returns the localized string registered under key.
func Text(tag language.Tag, key string) string {
	return message.NewPrinter(tag).Sprintf(key)
}

func categoryKey(c model.Category) string {
	return "category." + string(c)
}
