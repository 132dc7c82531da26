// Package splitkit implements a lazy, zero-copy string splitter.
//
// A Splitter walks its input from left to right and, on every pull,
// yields the text between the current position and the next delimiter.
// The produced values are substrings of the original input,
// so no text is ever copied or allocated while splitting.
//
// The delimiter is a type parameter of the Splitter.
// Two delimiter kinds are provided:
//
//	splitkit.Str(", ")  // literal text
//	splitkit.Char('é')  // a single rune, matched on UTF-8 boundaries
//
// Every pull yields exactly the text found between two consecutive delimiters
// (or the start and the end of the input), so nothing is ever dropped:
//
//	"a b c d " split on " " -> "a", "b", "c", "d", ""
//	""         split on " " -> ""
package splitkit
