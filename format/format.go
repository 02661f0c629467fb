// Package format normalizes contact fields for storage and display.
package format

import (
	"fmt"
	"strings"
	"unicode"
)

// Digits strips every non-digit character from s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Name splits raw on whitespace, capitalizes each token and rejoins the
// tokens with single spaces: "  link " becomes "Link".
func Name(raw string) string {
	tokens := strings.Fields(raw)
	for i, t := range tokens {
		tokens[i] = Capitalize(t)
	}
	return strings.Join(tokens, " ")
}

// Phone renders a phone number as "(AAA) BBB-CCCC". The validator guarantees
// exactly 10 digits before this is reached; anything else is returned with
// the non-digits stripped but otherwise untouched.
func Phone(raw string) string {
	d := Digits(raw)
	if len(d) != 10 {
		return d
	}
	return fmt.Sprintf("(%s) %s-%s", d[0:3], d[3:6], d[6:10])
}
