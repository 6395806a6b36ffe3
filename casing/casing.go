// Package casing converts AWS service operation identifiers between
// their canonical PascalCase form and the snake_case form used for
// method names.
package casing

import (
	"regexp"
	"strings"
)

// Word boundaries are inserted in two ordered passes. The first pass
// separates a capitalized word from whatever precedes it, which keeps
// acronym runs intact up to their last letter ("HTTPMethod" becomes
// "HTTP_Method"). The second pass separates a lowercase letter or
// digit from a following uppercase letter.
var (
	capitalizedWord = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	lowerToUpper    = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// ToSnake converts a camelCase or PascalCase identifier to snake_case.
// Acronym runs stay together ("testHTTPMethod" -> "test_http_method")
// and digits attach to the preceding token ("Test123Variable" ->
// "test123_variable").
//
// ToSnake is defined for identifiers composed of letters and digits.
// Other runes are passed through unchanged.
func ToSnake(name string) string {
	s := capitalizedWord.ReplaceAllString(name, "${1}_${2}")
	s = lowerToUpper.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}
