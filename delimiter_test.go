package strsplit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type match struct {
	start, end int
	found      bool
}

func find(d Delimiter, s string) match {
	start, end, found := d.Find(s)
	return match{start, end, found}
}

func TestLiteral(t *testing.T) {
	require.Equal(t, match{5, 7, true}, find(Literal(", "), "hello, world, again"))
	require.Equal(t, match{0, 3, true}, find(Literal("abc"), "abc"))
	require.Equal(t, match{1, 4, true}, find(Literal("€"), "a€b"))
	require.False(t, find(Literal("xyz"), "hello").found)
	require.False(t, find(Literal("a"), "").found)
	require.Equal(t, match{0, 0, true}, find(Literal(""), "hello"))
}

func TestChar(t *testing.T) {
	require.Equal(t, match{4, 5, true}, find(Char('o'), "hello, world"))
	require.Equal(t, match{1, 3, true}, find(Char('ж'), "aжb"))
	require.Equal(t, match{1, 4, true}, find(Char('€'), "a€b"))
	require.Equal(t, match{2, 6, true}, find(Char('🙂'), "ab🙂"))
	require.False(t, find(Char('x'), "hello").found)
	require.False(t, find(Char('x'), "").found)
	require.False(t, find(Char(0x110000), "hello").found)

	t.Run("ascii byte within multi-byte characters", func(t *testing.T) {
		s := "жжж!"
		m := find(Char('!'), s)
		require.Equal(t, match{6, 7, true}, m)
		require.Equal(t, "жжж", s[:m.start])
	})
}

func TestFoldLiteral(t *testing.T) {
	require.Equal(t, match{9, 16, true}, find(FoldLiteral("chunked"), "identity,CHUNKED"))
	require.Equal(t, match{0, 4, true}, find(FoldLiteral("gzip"), "GZip"))
	require.False(t, find(FoldLiteral("gzip"), "gzi").found)
	require.False(t, find(FoldLiteral("br"), "").found)
	require.Equal(t, match{0, 0, true}, find(FoldLiteral(""), ""))
	require.Equal(t, match{1, 4, true}, find(FoldLiteral("€"), "a€b"))
	require.Equal(t, match{0, 0, true}, find(FoldLiteral(""), "hello"))

	t.Run("non-letters match exactly", func(t *testing.T) {
		require.False(t, find(FoldLiteral("-"), "a\r\nb").found)
		require.False(t, find(FoldLiteral("@"), "a`b").found)
		require.False(t, find(FoldLiteral("["), "a{b").found)
		require.False(t, find(FoldLiteral("€"), "a₂b").found)
		require.False(t, find(FoldLiteral("x-y"), "X\ry").found)
		require.Equal(t, match{2, 5, true}, find(FoldLiteral("x-y"), "X\rX-Y"))
	})
}
