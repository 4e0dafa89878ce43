package trafilatura_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/postpack"
	"github.com/fwojciec/postpack/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements postpack.TextExtractor at compile time.
var _ postpack.TextExtractor = (*trafilatura.Extractor)(nil)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
<title>무선 청소기 리뷰</title>
<meta property="og:title" content="무선 청소기 리뷰">
</head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/about">About</a></li>
<li><a href="/shop">Shop</a></li>
</ul>
</nav>
<article>
<h1>무선 청소기 리뷰</h1>
<p>This is the main article body describing the product in detail. It explains how the cleaner performs on carpets and hard floors.</p>
<p>The battery lasts for about forty minutes on the normal setting, which is enough for a medium sized apartment without recharging.</p>
<p>Overall the device is light, quiet and easy to empty, which makes it a good choice for everyday cleaning in small homes.</p>
</article>
<footer>
<p>Copyright 2024 Example Corp</p>
</footer>
</body>
</html>`

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		text, err := trafilatura.NewExtractor().ExtractText(articleHTML)

		require.NoError(t, err)
		assert.Contains(t, text, "main article body")
		assert.Contains(t, text, "battery lasts")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		text, err := trafilatura.NewExtractor().ExtractText(articleHTML)

		require.NoError(t, err)
		assert.NotContains(t, text, "About")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		text, err := trafilatura.NewExtractor().ExtractText(articleHTML)

		require.NoError(t, err)
		assert.NotContains(t, text, "Copyright 2024 Example Corp")
	})

	t.Run("produces text above its threshold for a full article", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		text, err := ext.ExtractText(articleHTML)

		require.NoError(t, err)
		assert.Greater(t, len([]rune(strings.TrimSpace(text))), ext.MinLength())
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().ExtractText("")

		require.Error(t, err)
		assert.Equal(t, postpack.EINVALID, postpack.ErrorCode(err))
	})

	t.Run("reports name and threshold", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		assert.Equal(t, "trafilatura", ext.Name())
		assert.Equal(t, 200, ext.MinLength())
	})
}
