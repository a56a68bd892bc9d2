// Package yatgtext provides the UTF-16 text primitives the markup transcoder
// is built on: surrogate-pair expansion/contraction, code-unit length
// accounting, and a positional first-occurrence splice.
//
// Telegram counts entity offsets in UTF-16LE code units, so a character
// outside the Basic Multilingual Plane contributes 2 units. Expanding a
// string with [Expand] yields a representation whose indices are exactly
// those code-unit offsets.
//
// Example usage:
//
//	expanded := yatgtext.Expand("hi 🡆")
//	fmt.Println(len(expanded)) // 5, the 🡆 takes a surrogate pair
//	fmt.Println(expanded.Contract()) // "hi 🡆"
package yatgtext

import (
	"strings"
	"unicode/utf16"
)

const maxSingleUnitRune = 0xFFFF

// UTF16String is a string expanded to UTF-16 code units. Indexing it matches
// Telegram entity offset arithmetic, surrogate pairs included.
type UTF16String []uint16

// Expand converts a string into its UTF-16 code-unit form.
// It is the exact inverse of [UTF16String.Contract] for valid input.
func Expand(s string) UTF16String {
	return utf16.Encode([]rune(s))
}

// Contract converts the expanded form back into a regular string,
// recombining surrogate pairs losslessly.
func (u UTF16String) Contract() string {
	return string(utf16.Decode(u))
}

// InsertAt returns a copy of u with s spliced in at the given code-unit
// position. Positions are clamped to the valid range.
func (u UTF16String) InsertAt(position int, s string) UTF16String {
	if position < 0 {
		position = 0
	}

	if position > len(u) {
		position = len(u)
	}

	encoded := Expand(s)

	result := make(UTF16String, 0, len(u)+len(encoded))
	result = append(result, u[:position]...)
	result = append(result, encoded...)
	result = append(result, u[position:]...)

	return result
}

// Len returns the UTF-16 code-unit length of s.
//
// Example usage:
//
//	yatgtext.Len("a🡆") // 3
func Len(s string) int {
	var size int

	for _, r := range s {
		if r <= maxSingleUnitRune {
			size++
		} else {
			size += 2
		}
	}

	return size
}

// SpliceFirstAtOrAfter replaces exactly one occurrence of needle — the first
// found starting at or after fromIndex (a byte index) — with replacement.
// When no occurrence exists at or after that index the input is returned
// unchanged and the second result is false.
func SpliceFirstAtOrAfter(text, needle, replacement string, fromIndex int) (string, bool) {
	if fromIndex < 0 {
		fromIndex = 0
	}

	if fromIndex > len(text) || needle == "" {
		return text, false
	}

	relative := strings.Index(text[fromIndex:], needle)
	if relative == -1 {
		return text, false
	}

	at := fromIndex + relative

	return text[:at] + replacement + text[at+len(needle):], true
}
