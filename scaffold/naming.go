package scaffold

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var featureNameRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateFeatureName enforces the naming convention for features:
// lower_snake_case starting with a letter.
func ValidateFeatureName(name string) error {
	if !featureNameRe.MatchString(name) {
		return fmt.Errorf("scaffold: feature name %q must be lower_snake_case", name)
	}
	return nil
}

// SnakeCase converts CamelCase or mixed input into lower_snake_case
// file naming.
func SnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		case r == '-' || r == ' ':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PascalCase converts lower_snake_case input into UpperCamelCase type
// naming.
func PascalCase(s string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CamelCase converts lower_snake_case input into lowerCamelCase
// identifier naming.
func CamelCase(s string) string {
	pascal := PascalCase(s)
	if pascal == "" {
		return ""
	}
	return string(unicode.ToLower(rune(pascal[0]))) + pascal[1:]
}
