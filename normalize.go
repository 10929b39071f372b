package orcas

import "strings"

// Normalize canonicalizes a free-text metric name into a comparable token.
//
// The name is lowercased, trimmed, internal whitespace runs are collapsed to a
// single space and the characters '(', ')' and ',' are removed. Different
// spellings of the same metric collide on purpose: the token is the dedup key.
//
//	Normalize("Return on Assets (ROA)") == "return on assets roa"
func Normalize(name string) string {
	s := strings.ToLower(name)
	s = collapseSpaces(s)
	s = strings.NewReplacer("(", "", ")", "", ",", "").Replace(s)
	return collapseSpaces(s)
}

// NormalizeKey is Normalize where runs of '_' and '-' also act as separators,
// so that backend keys like "net_interest_margin" meet their display labels.
func NormalizeKey(name string) string {
	s := Normalize(name)
	s = strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, s)
	return collapseSpaces(s)
}

// collapseSpaces trims s and replaces every run of whitespace by one space.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
