package strsplit

import (
	"iter"

	"github.com/indigo-web/strsplit/config"
	"github.com/indigo-web/utils/uf"
)

// BytesSplitter is the Splitter over a byte buffer. Pieces are sub-slices of the
// source, their capacity is clipped, so appending to a piece never overwrites the source.
type BytesSplitter struct {
	source []byte
	inner  *Splitter
	// offset of the next piece in the source. Pieces and remainders of inner are views
	// into the source, so the offset is recovered from their lengths.
	offset int
}

// NewBytes returns a BytesSplitter with default settings.
func NewBytes(source []byte, d Delimiter) *BytesSplitter {
	return NewBytesWithConfig(source, d, nil)
}

// NewBytesWithConfig returns a BytesSplitter tuned by the cfg. Nil cfg stands for config.Default().
func NewBytesWithConfig(source []byte, d Delimiter, cfg *config.Config) *BytesSplitter {
	return &BytesSplitter{
		source: source,
		inner:  NewWithConfig(uf.B2S(source), d, cfg),
	}
}

// Next returns the bytes before the next delimiter occurrence.
func (b *BytesSplitter) Next() (piece []byte, ok bool) {
	str, ok := b.inner.Next()
	if !ok {
		return nil, false
	}

	rest, _ := b.inner.Remainder()
	start := b.offset
	end := start + len(str)
	piece = b.source[start:end:end]
	b.offset = len(b.source) - len(rest)

	return piece, true
}

// All returns an iterator over pieces left.
func (b *BytesSplitter) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for {
			piece, ok := b.Next()
			if !ok || !yield(piece) {
				return
			}
		}
	}
}
