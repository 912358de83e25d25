package crud

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TypeName converts a lowerCamelCase identifier into the SCREAMING_SNAKE_CASE
// action type used on the wire and prepends prefix verbatim.
//
//	TypeName("getOneCreateFrom", "SUPER_") // SUPER_GET_ONE_CREATE_FROM
//
// Only ASCII capitals start a new word. Acronyms are not grouped, so
// "getHTTP" becomes "GET_H_T_T_P". Upper-casing uses full case mapping:
// "straße" becomes "STRASSE".
func TypeName(identifier string, prefix string) ActionType {
	var b strings.Builder
	b.Grow(len(identifier) + 4)

	for i := 0; i < len(identifier); i++ {
		c := identifier[i]
		if i > 0 && c >= 'A' && c <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteByte(c)
	}

	return ActionType(prefix + cases.Upper(language.Und).String(b.String()))
}
