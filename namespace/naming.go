package namespace

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NamingScheme controls how derived names are cased.
type NamingScheme int

const (
	// PascalCase capitalizes the first letter of every word and drops separators.
	PascalCase NamingScheme = iota
	// Direct keeps names exactly as written.
	Direct
)

func (s NamingScheme) String() string {
	switch s {
	case PascalCase:
		return "PascalCase"
	case Direct:
		return "Direct"
	default:
		return fmt.Sprintf("NamingScheme(%d)", int(s))
	}
}

// TitleCase converts s according to scheme. For PascalCase the input is split on
// anything that is not a letter or digit; letters after the first of each word keep
// their original case.
func TitleCase(s string, scheme NamingScheme) string {
	if scheme == Direct {
		return s
	}

	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	// Caser carries state between calls and must not be shared.
	caser := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for _, word := range words {
		b.WriteString(caser.String(word))
	}
	return b.String()
}
