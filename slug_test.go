package postpack_test

import (
	"testing"

	"github.com/fwojciec/postpack"
	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "lower-cases ascii", title: "Hello World", want: "hello-world"},
		{name: "keeps allowed punctuation", title: "v1.2_beta-3", want: "v1.2_beta-3"},
		{name: "collapses runs", title: "a  &&  b", want: "a-b"},
		{name: "trims dashes", title: "--Go!--", want: "go"},
		{name: "mixed script", title: "샘플 Product 2", want: "product-2"},
		{name: "falls back when empty", title: "샘플", want: "naver-post"},
		{name: "falls back on blank title", title: "", want: "naver-post"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, postpack.Slug(tt.title, "naver-post"))
		})
	}
}

func TestShorten(t *testing.T) {
	t.Parallel()

	t.Run("returns short text with collapsed whitespace", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a b c", postpack.Shorten("a\n b\t\tc", 10, "…"))
	})

	t.Run("truncates at word boundary", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "hello…", postpack.Shorten("hello brave new world", 10, "…"))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		t.Parallel()
		got := postpack.Shorten("가나 다라 마바 사아", 6, "…")
		assert.Equal(t, "가나 다라…", got)
	})

	t.Run("cuts a single long word", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "abcd…", postpack.Shorten("abcdefghij", 5, "…"))
	})

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, postpack.Shorten("", 10, "…"))
	})
}
