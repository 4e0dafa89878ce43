package goquery_test

import (
	"testing"

	"github.com/fwojciec/postpack/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataExtractor_ExtractMetadata(t *testing.T) {
	t.Parallel()

	t.Run("prefers social preview title", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<title>Document Title</title>
<meta property="og:title" content=" Social Title ">
</head></html>`

		meta, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "Social Title", meta.Title)
	})

	t.Run("falls back to trimmed title element", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>
  샘플
</title><meta property="og:title" content=""></head></html>`

		meta, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "샘플", meta.Title)
	})

	t.Run("prefers social preview description", func(t *testing.T) {
		t.Parallel()

		html := `<head>
<meta name="description" content="plain">
<meta property="og:description" content="social">
</head>`

		meta, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "social", meta.Description)
	})

	t.Run("falls back to meta description", func(t *testing.T) {
		t.Parallel()

		html := `<head><title>샘플</title><meta name='description' content='요약'></head>`

		meta, err := goquery.NewMetadataExtractor().ExtractMetadata(html)

		require.NoError(t, err)
		assert.Equal(t, "요약", meta.Description)
	})

	t.Run("returns empty values when absent", func(t *testing.T) {
		t.Parallel()

		meta, err := goquery.NewMetadataExtractor().ExtractMetadata(`<p>no head</p>`)

		require.NoError(t, err)
		assert.Empty(t, meta.Title)
		assert.Empty(t, meta.Description)
	})
}
