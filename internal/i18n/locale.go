package i18n

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

type Locale string

const (
	LocaleEN Locale = "en"
	LocaleNL Locale = "nl"

	DefaultLocale = LocaleEN
)

// Locales returns the supported locales in preference order.
func Locales() []Locale {
	return []Locale{LocaleEN, LocaleNL}
}

func IsSupported(s string) bool {
	return s == string(LocaleEN) || s == string(LocaleNL)
}

// Tag maps a locale onto its collation language tag.
func (l Locale) Tag() language.Tag {
	if l == LocaleNL {
		return language.Dutch
	}
	return language.English
}

// Negotiate picks a locale from an Accept-Language header value. Entries are
// ranked by quality, matched first exactly, then on base language, with any
// Dutch variant mapping to nl. Falls back to the default locale.
func Negotiate(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return DefaultLocale
	}

	type candidate struct {
		locale  string
		quality float64
	}

	var candidates []candidate
	for _, part := range strings.Split(acceptLanguage, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		locale := part
		quality := 1.0
		if idx := strings.Index(part, ";q="); idx >= 0 {
			locale = part[:idx]
			if q, err := strconv.ParseFloat(part[idx+3:], 64); err == nil {
				quality = q
			}
		}

		candidates = append(candidates, candidate{
			locale:  strings.ToLower(strings.TrimSpace(locale)),
			quality: quality,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].quality > candidates[j].quality
	})

	for _, c := range candidates {
		if IsSupported(c.locale) {
			return Locale(c.locale)
		}
		if base, _, ok := strings.Cut(c.locale, "-"); ok && IsSupported(base) {
			return Locale(base)
		}
		if strings.HasPrefix(c.locale, "nl") {
			return LocaleNL
		}
	}

	return DefaultLocale
}

// SplitPath extracts the locale prefix from a request path. It returns the
// locale, the remainder of the path without the prefix, and whether a
// supported locale prefix was present.
func SplitPath(path string) (Locale, string, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	seg, rest, _ := strings.Cut(trimmed, "/")
	if !IsSupported(seg) {
		return DefaultLocale, path, false
	}
	return Locale(seg), "/" + rest, true
}
