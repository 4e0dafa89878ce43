package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/postpack"
	"github.com/fwojciec/postpack/mock"
	ppslog "github.com/fwojciec/postpack/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTextExtractor(t *testing.T) {
	t.Parallel()

	t.Run("logs strategy and rune length", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TextExtractor{
			NameValue:      "trafilatura",
			MinLengthValue: 200,
			ExtractTextFn: func(html string) (string, error) {
				return "한국어", nil
			},
		}

		ext := ppslog.NewLoggingTextExtractor(inner, logger)
		text, err := ext.ExtractText("<p>한국어</p>")

		require.NoError(t, err)
		assert.Equal(t, "한국어", text)
		assert.Equal(t, "trafilatura", ext.Name())
		assert.Equal(t, 200, ext.MinLength())
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "strategy=trafilatura")
		assert.Contains(t, output, "length=3")
		assert.Contains(t, output, "min=200")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TextExtractor{
			NameValue: "readability",
			ExtractTextFn: func(html string) (string, error) {
				return "", errors.New("no article")
			},
		}

		_, err := ppslog.NewLoggingTextExtractor(inner, logger).ExtractText("<p></p>")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"no article\"")
	})

	t.Run("wraps strategies in order", func(t *testing.T) {
		t.Parallel()

		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		strategies := []postpack.TextExtractor{
			&mock.TextExtractor{NameValue: "a"},
			&mock.TextExtractor{NameValue: "b"},
		}

		wrapped := ppslog.WrapTextExtractors(strategies, logger)

		require.Len(t, wrapped, 2)
		assert.Equal(t, "a", wrapped[0].Name())
		assert.Equal(t, "b", wrapped[1].Name())
	})
}
