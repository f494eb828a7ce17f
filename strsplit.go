// Package strsplit lazily splits text by a delimiter without copying it.
//
// Every produced piece is a sub-string of the source, so it shares the memory
// with it. For byte buffers (see NewBytes) this means that mutating the buffer
// mutates already produced pieces as well.
package strsplit

import (
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/indigo-web/strsplit/config"
	"github.com/indigo-web/strsplit/errors"
)

// Splitter is a forward-only cursor over the source. It must not be advanced
// from multiple goroutines simultaneously.
type Splitter struct {
	remainder string
	active    bool
	delimiter Delimiter
	policy    config.EmptyDelimiterPolicy
}

// New returns a Splitter with default settings.
func New(source string, d Delimiter) *Splitter {
	return NewWithConfig(source, d, nil)
}

// NewWithConfig returns a Splitter tuned by the cfg. Nil cfg stands for config.Default().
func NewWithConfig(source string, d Delimiter, cfg *config.Config) *Splitter {
	policy := policyOf(cfg)
	probe(d, policy)

	return &Splitter{
		remainder: source,
		active:    true,
		delimiter: d,
		policy:    policy,
	}
}

// Next returns the text before the next delimiter occurrence. The delimiter itself is
// never returned. After the last piece is returned, all consequent calls return false.
func (s *Splitter) Next() (piece string, ok bool) {
	if !s.active {
		return "", false
	}

	start, end, found := s.delimiter.Find(s.remainder)
	if !found {
		s.active = false
		piece, s.remainder = s.remainder, ""
		return piece, true
	}

	if start == end {
		return s.step(start)
	}

	piece, s.remainder = s.remainder[:start], s.remainder[end:]
	return piece, true
}

// step handles a zero-width match at the offset.
func (s *Splitter) step(offset int) (piece string, ok bool) {
	if s.policy == config.Reject {
		panic(fmt.Errorf("strsplit: %w", errors.ErrEmptyDelimiter))
	}

	if len(s.remainder) == 0 {
		s.active = false
		return "", false
	}

	if offset == 0 {
		_, offset = utf8.DecodeRuneInString(s.remainder)
	}

	piece, s.remainder = s.remainder[:offset], s.remainder[offset:]
	return piece, true
}

// Remainder returns the text that wasn't scanned yet. The second value is false once
// the splitter is exhausted.
func (s *Splitter) Remainder() (rest string, active bool) {
	return s.remainder, s.active
}

// All returns an iterator over pieces left. Breaking the loop early leaves the
// Splitter right after the last consumed piece.
func (s *Splitter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			piece, ok := s.Next()
			if !ok || !yield(piece) {
				return
			}
		}
	}
}

// Split returns a lazy sequence of pieces of the source.
func Split(source string, d Delimiter) iter.Seq[string] {
	return New(source, d).All()
}

// Collect returns all the pieces at once. Those are still views into the source.
func Collect(source string, d Delimiter) (pieces []string) {
	for piece := range Split(source, d) {
		pieces = append(pieces, piece)
	}

	return pieces
}

// Count returns the number of pieces the source would be split into.
func Count(source string, d Delimiter) (n int) {
	sp := New(source, d)
	for _, ok := sp.Next(); ok; _, ok = sp.Next() {
		n++
	}

	return n
}

// UntilFirst returns the text preceding the first occurrence of the character, or the
// whole source if there is none.
func UntilFirst(source string, c rune) string {
	piece, ok := New(source, Char(c)).Next()
	if !ok {
		panic(fmt.Errorf("strsplit: until first %q: at least one piece must be produced: %w", c, errors.ErrNoPieces))
	}

	return piece
}

func policyOf(cfg *config.Config) config.EmptyDelimiterPolicy {
	if cfg == nil {
		cfg = config.Default()
	}

	return cfg.EmptyDelimiter
}

// probe rejects delimiters matching an empty region, if the policy says so. No
// non-empty pattern can occur in an empty string, so a match means a zero-width one.
func probe(d Delimiter, policy config.EmptyDelimiterPolicy) {
	if policy != config.Reject {
		return
	}

	if _, _, found := d.Find(""); found {
		panic(fmt.Errorf("strsplit: %w", errors.ErrEmptyDelimiter))
	}
}
