package goquery_test

import (
	"testing"

	"github.com/fwojciec/postpack/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockText(t *testing.T) {
	t.Parallel()

	t.Run("joins block elements with blank lines", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.BlockText(`<div><h2>Heading</h2><p>First <b>bold</b> para</p><ul><li>item</li></ul></div>`)

		require.NoError(t, err)
		assert.Equal(t, "Heading\n\nFirst\nbold\npara\n\nitem", text)
	})

	t.Run("skips script and style content", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.BlockText(`<p>keep<script>var x = 1;</script></p><p><style>p{}</style></p>`)

		require.NoError(t, err)
		assert.Equal(t, "keep", text)
	})

	t.Run("ignores non-block text", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.BlockText(`<div>loose text</div><h4>small heading</h4>`)

		require.NoError(t, err)
		assert.Empty(t, text)
	})
}
