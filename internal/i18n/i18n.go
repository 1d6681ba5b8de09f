// Package i18n provides the Japanese/English string tables for situation
// descriptions, explanations and verdict labels. Lookup is a flat key map
// with {name} interpolation and English fallback, mirroring how the strings
// were originally maintained.
package i18n

import (
	"os"
	"strings"
)

// Locale selects a message language.
type Locale string

const (
	Ja Locale = "ja"
	En Locale = "en"
)

// Parse returns the locale for a user-supplied code.
func Parse(s string) (Locale, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ja", "ja-jp", "ja_jp":
		return Ja, true
	case "en", "en-us", "en_us", "en-gb":
		return En, true
	}
	return "", false
}

// Detect sniffs the process locale from the usual environment variables.
// Japanese maps to ja; everything else (including unset) maps to en.
func Detect() Locale {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			if strings.HasPrefix(strings.ToLower(v), "ja") {
				return Ja
			}
			return En
		}
	}
	return En
}

// Vars holds interpolation values for {name} placeholders.
type Vars map[string]string

// T resolves key in the given locale, interpolating vars. Missing keys fall
// back to English, then to the key itself so a typo is visible, not fatal.
func T(loc Locale, key string, vars Vars) string {
	msg, ok := tables[loc][key]
	if !ok {
		msg, ok = tables[En][key]
	}
	if !ok {
		msg = key
	}
	for name, val := range vars {
		msg = strings.ReplaceAll(msg, "{"+name+"}", val)
	}
	return msg
}
