package main

import (
	"strings"
	"unicode"
)

// GoIdent converts an SPDX identifier into an exported Go type name.
//
// Rules, applied in order:
//   - "+" becomes the "_Plus" suffix
//   - "-" and "." become "_"
//   - letter-initial segments get their first letter upper-cased
//   - a leading all-digit segment is rotated to the end ("389-exception"
//     becomes Exception_389)
//   - a leading digit run inside an otherwise alphabetic first segment is
//     split off and rotated to the end ("0BSD" becomes BSD_0)
func GoIdent(id string) string {
	id = strings.ReplaceAll(id, "+", "-Plus")
	segments := splitSegments(id)

	if len(segments) == 0 {
		return ""
	}

	// Rotate a digit prefix out of the leading position so the result is a
	// legal exported identifier.
	first := segments[0]
	if allDigits(first) {
		segments = append(segments[1:], first)
	} else if digits, rest, ok := splitDigitPrefix(first); ok {
		segments[0] = rest
		segments = append(segments, digits)
	}

	for i, seg := range segments {
		segments[i] = capitalize(seg)
	}

	return strings.Join(segments, "_")
}

// TextVar converts a text-asset identifier into the name of its embedded
// string variable. Unlike GoIdent it never reorders segments: the "text"
// prefix already makes the result a legal identifier.
func TextVar(id string) string {
	segments := splitSegments(strings.ReplaceAll(id, "+", "-Plus"))
	for i, seg := range segments {
		segments[i] = capitalize(seg)
	}

	return "text" + strings.Join(segments, "_")
}

func splitSegments(id string) []string {
	return strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '.'
	})
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return len(s) > 0
}

// splitDigitPrefix splits a segment like "0BSD" into its digit run and the
// remainder. It reports false when the segment does not start with a digit or
// holds nothing but digits.
func splitDigitPrefix(s string) (digits, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	if i == 0 || i == len(s) {
		return "", "", false
	}

	return s[:i], s[i:], true
}

// capitalize upper-cases the first letter of a segment, leaving everything
// else untouched. Digit-initial segments pass through unchanged.
func capitalize(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}
