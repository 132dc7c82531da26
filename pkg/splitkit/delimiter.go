package splitkit

import (
	"strings"
	"unicode/utf8"
)

//go:generate mockgen -destination mock_delimiter_test.go -source delimiter.go -package splitkit_test

// Delimiter knows how to locate its next occurrence in a text.
//
// Find returns the half-open byte range [start, end) of the first occurrence,
// where end is the offset right after the delimiter's own content.
// When the delimiter is not present, ok is false.
//
// Find must be a pure query: deterministic and free of side effects.
type Delimiter interface {
	Find(text string) (start, end int, ok bool)
}

// Str is a literal text delimiter.
//
// The empty Str never matches, thus splitting on it yields the whole input as a single element.
type Str string

func (d Str) Find(text string) (int, int, bool) {
	if len(d) == 0 {
		return 0, 0, false
	}
	i := strings.Index(text, string(d))
	if i < 0 {
		return 0, 0, false
	}
	return i, i + len(d), true
}

// Char is a single character delimiter.
//
// The text is scanned rune by rune, so a multi-byte character is matched as a whole,
// and never on a partial byte sequence of another character.
// Invalid UTF-8 sequences in the text are never matched.
type Char rune

func (d Char) Find(text string) (int, int, bool) {
	r := rune(d)
	if 0 <= r && r < utf8.RuneSelf {
		i := strings.IndexByte(text, byte(r))
		if i < 0 {
			return 0, 0, false
		}
		return i, i + 1, true
	}
	if !utf8.ValidRune(r) {
		return 0, 0, false
	}
	width := utf8.RuneLen(r)
	for i := 0; i < len(text); {
		c, size := utf8.DecodeRuneInString(text[i:])
		// size check keeps utf8.RuneError from matching an invalid byte
		if c == r && size == width {
			return i, i + width, true
		}
		i += size
	}
	return 0, 0, false
}
