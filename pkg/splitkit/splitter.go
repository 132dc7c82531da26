package splitkit

import (
	"fmt"
	"iter"

	"github.com/adamluzsi/strsplit/pkg/errorkit"
	"github.com/adamluzsi/strsplit/pkg/iterkit"
)

// ErrNoFirstElement is raised when a Splitter finished without yielding anything.
// A Splitter always yields at least one element, so seeing this means a broken invariant.
const ErrNoFirstElement errorkit.Error = "splitkit: splitter yielded no first element"

// Span is a byte offset pair [Start, End) that points into the original input of a Splitter.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

func (s Span) String() string { return fmt.Sprintf("%d:%d", s.Start, s.End) }

// Splitter is a pull iterator that splits a text on a Delimiter.
//
// Values returned by a Splitter are substrings of the input text.
// A Splitter is single use: once it is exhausted, it yields nothing.
// To split the same text again, create a new Splitter.
//
// A Splitter is not safe for concurrent use,
// but any number of Splitter can work on the same input text in parallel.
type Splitter[D Delimiter] struct {
	delimiter D

	remainder string
	// offset of remainder within the original input
	offset int
	done   bool

	value string
	span  Span
}

var _ iterkit.PullIter[string] = (*Splitter[Str])(nil)

// New creates a Splitter that splits text on delimiter.
func New[D Delimiter](text string, delimiter D) *Splitter[D] {
	return &Splitter[D]{
		delimiter: delimiter,
		remainder: text,
	}
}

// Pull returns the next element.
// When the Splitter is exhausted, it returns false.
//
// A match that has zero width is treated as no match,
// so a Delimiter can't make the Splitter yield forever.
func (s *Splitter[D]) Pull() (string, bool) {
	if s.done {
		return "", false
	}
	start, end, ok := s.delimiter.Find(s.remainder)
	if !ok || end <= start {
		s.value = s.remainder
		s.span = Span{Start: s.offset, End: s.offset + len(s.remainder)}
		s.remainder = ""
		s.done = true
		return s.value, true
	}
	s.value = s.remainder[:start]
	s.span = Span{Start: s.offset, End: s.offset + start}
	s.remainder = s.remainder[end:]
	s.offset += end
	return s.value, true
}

// Next will ensure that Value returns the next element.
func (s *Splitter[D]) Next() bool {
	_, ok := s.Pull()
	return ok
}

// Value returns the current element.
func (s *Splitter[D]) Value() string { return s.value }

// Span returns the position of the current element in the original input.
func (s *Splitter[D]) Span() Span { return s.span }

// Err always returns nil, splitting a text can't fail.
func (s *Splitter[D]) Err() error { return nil }

// Close exhausts the Splitter.
func (s *Splitter[D]) Close() error {
	s.done = true
	s.remainder = ""
	return nil
}

// Seq returns the remaining elements as a single use sequence.
// Stopping the iteration early leaves the rest of the elements in the Splitter.
func (s *Splitter[D]) Seq() iterkit.SingleUseSeq[string] {
	return iterkit.FromPull(s.Pull)
}

// Collect drains the remaining elements into a slice.
func (s *Splitter[D]) Collect() []string {
	vs, _ := iterkit.CollectPullIter[string](s)
	return vs
}

func (s *Splitter[D]) String() string {
	if s.done {
		return fmt.Sprintf("Splitter{delimiter: %#v, exhausted}", s.delimiter)
	}
	return fmt.Sprintf("Splitter{delimiter: %#v, remainder: %q}", s.delimiter, s.remainder)
}

// Split returns a sequence of the elements of text split on delimiter.
// Each iteration of the sequence starts a new Splitter.
func Split[D Delimiter](text string, delimiter D) iter.Seq[string] {
	return func(yield func(string) bool) {
		s := New(text, delimiter)
		for s.Next() {
			if !yield(s.Value()) {
				return
			}
		}
	}
}

// Spans is like Split, but yields the position of each element in text instead of the element itself.
func Spans[D Delimiter](text string, delimiter D) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		s := New(text, delimiter)
		for s.Next() {
			if !yield(s.Span()) {
				return
			}
		}
	}
}

// Before returns the text before the first occurrence of c.
// If c is not in text, the whole text is returned.
func Before(text string, c rune) string {
	v, ok := iterkit.First(New(text, Char(c)).Seq())
	if !ok {
		panic(ErrNoFirstElement)
	}
	return v
}
