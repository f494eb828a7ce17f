package strutil

import (
	"iter"
	"strings"
)

// Join works in the same way as the strings.Join does, except that it operates an iterator
// as opposed to greedy string slice. Empty elements are separated as well, therefore joining
// pieces of a split with the same delimiter restores the original text.
func Join(elems iter.Seq[string], sep string) string {
	var (
		b     strings.Builder
		first = true
	)

	for elem := range elems {
		if !first {
			b.WriteString(sep)
		}

		first = false
		b.WriteString(elem)
	}

	return b.String()
}
