// Package text provides utilities for text measurement. Queries and
// user-supplied strings are limited in Unicode characters, not bytes, so
// multi-byte input is not penalized.
package text

// CountRunes counts the number of Unicode characters (runes) in the given
// text. Multi-byte characters such as accented names, zodiac symbols and
// emoji count as one each.
//
// Examples:
//
//	CountRunes("hello")     // returns 5
//	CountRunes("Beyoncé")   // returns 7
//	CountRunes("♍ season")  // returns 8
//	CountRunes("")          // returns 0
func CountRunes(text string) int {
	return len([]rune(text))
}
