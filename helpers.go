package ogmaker

import (
	"os"
	"strings"
	"unicode"
)

// Slugify converts a title to the file name stem used for its image.
//
// The title is lowercased, every rune that is neither an ASCII word
// character nor whitespace is dropped, and each run of whitespace becomes a
// single hyphen. Surrounding whitespace is not trimmed, so it turns into
// leading or trailing hyphens.
func Slugify(title string) string {
	title = strings.ToLower(title)
	var b strings.Builder
	inSpace := false
	for _, r := range title {
		switch {
		case isSpace(r):
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
		case isWordRune(r):
			b.WriteRune(r)
			inSpace = false
		}
	}
	return b.String()
}

// isSpace reports whether r is whitespace in the sense of a JavaScript \s
// class: unicode.IsSpace without U+0085, plus U+FEFF.
func isSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\ufeff':
		return true
	}
	return unicode.IsSpace(r)
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_'
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
