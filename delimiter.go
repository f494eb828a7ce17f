package strsplit

import (
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/utils/strcomp"
)

// Delimiter locates the pattern separating pieces. Find must return byte offsets of the
// first (leftmost) occurrence in s, so that s[:start] and s[end:] are both valid strings.
// The end offset is start plus the length of the match in bytes.
type Delimiter interface {
	Find(s string) (start, end int, found bool)
}

// Literal matches the pattern byte-for-byte.
type Literal string

// Find returns the leftmost occurrence of the pattern. An empty pattern matches
// zero-width at offset 0.
func (l Literal) Find(s string) (start, end int, found bool) {
	start = strings.Index(s, string(l))
	if start == -1 {
		return 0, 0, false
	}

	return start, start + len(l), true
}

// Char matches a single character. Its encoded length varies from 1 to 4 bytes,
// therefore end-start isn't necessarily 1.
type Char rune

// Find returns the leftmost occurrence of the character. Invalid runes never match.
func (c Char) Find(s string) (start, end int, found bool) {
	size := utf8.RuneLen(rune(c))
	if size == -1 {
		return 0, 0, false
	}

	if size == 1 {
		start = strings.IndexByte(s, byte(c))
	} else {
		start = strings.IndexRune(s, rune(c))
	}

	if start == -1 {
		return 0, 0, false
	}

	return start, start + size, true
}

// FoldLiteral matches the pattern ignoring the case of ASCII letters. All other bytes,
// including every byte of multi-byte characters, must match exactly. Matches start and
// end only at character boundaries.
type FoldLiteral string

// Find returns the leftmost case-insensitive occurrence of the pattern. An empty pattern
// matches zero-width at offset 0.
func (f FoldLiteral) Find(s string) (start, end int, found bool) {
	n := len(f)
	if n == 0 {
		return 0, 0, true
	}

	for i := 0; i+n <= len(s); i++ {
		if !utf8.RuneStart(s[i]) {
			continue
		}

		if i+n < len(s) && !utf8.RuneStart(s[i+n]) {
			continue
		}

		// strcomp.EqualFold folds any pair of bytes differing in 0x20, so it's
		// only a filter; letters are checked afterwards.
		if strcomp.EqualFold(s[i:i+n], string(f)) && foldEqual(s[i:i+n], string(f)) {
			return i, i + n, true
		}
	}

	return 0, 0, false
}

// foldEqual reports whether a and b of the same length differ only in the case of ASCII letters.
func foldEqual(a, b string) bool {
	for i := 0; i < len(a); i++ {
		x, y := a[i], b[i]
		if x == y {
			continue
		}

		if !isLetter(x) || toLower(x) != toLower(y) {
			return false
		}
	}

	return true
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func toLower(c byte) byte {
	return c | 0x20
}
