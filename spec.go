package featural

import (
	"strings"
	"unicode/utf8"
)

// Spec is a feature specification like "+voice": a value and a feature
// name. The value is the first character of the written form, the rest
// is the feature name.
type Spec struct {
	Value   string
	Feature Feature
}

// ParseSpec splits a written feature specification into value and feature.
// The value is a single rune, which allows for value symbols like '±' or
// 'α' in addition to the usual '+', '-' and '0'.
//
// Specifications with less than two runes result in an error of kind
// SpecSyntax. Whitespace is not trimmed: " -cont" has value ' '.
func ParseSpec(s string) (Spec, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError && size == 1 || size == len(s) {
		return Spec{}, &Error{Kind: SpecSyntax, Spec: s}
	}
	return Spec{Value: s[:size], Feature: s[size:]}, nil
}

// ParseSpecList parses a comma-separated list of feature specifications,
// e.g. "+voice,-cont". An empty list item is a syntax error.
func ParseSpecList(s string) ([]Spec, error) {
	items := strings.Split(s, ",")
	specs := make([]Spec, 0, len(items))
	for _, item := range items {
		spec, err := ParseSpec(item)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (s Spec) String() string {
	return s.Value + s.Feature
}

// SpecListKey returns a canonical string for a list of specifications,
// suitable as a map key. Lists with identical specifications in identical
// order map to identical keys.
func SpecListKey(specs []Spec) string {
	var b strings.Builder
	for i, s := range specs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s.Value)
		b.WriteByte(0)
		b.WriteString(s.Feature)
	}
	return b.String()
}
