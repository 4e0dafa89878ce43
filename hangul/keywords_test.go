package hangul_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/postpack"
	"github.com/fwojciec/postpack/hangul"
	"github.com/stretchr/testify/assert"
)

// Ensure Extractor implements postpack.KeywordExtractor at compile time.
var _ postpack.KeywordExtractor = (*hangul.Extractor)(nil)

func TestExtractor_Tokenize(t *testing.T) {
	t.Parallel()

	t.Run("keeps runs of two or more syllables", func(t *testing.T) {
		t.Parallel()

		ext := hangul.NewExtractor(postpack.NewStopwordSet(), 12)
		tokens := ext.Tokenize("문단1 테스트, 가 나다 English 노트북!")

		assert.Equal(t, []string{"문단", "테스트", "나다", "노트북"}, tokens)
	})

	t.Run("drops stopwords", func(t *testing.T) {
		t.Parallel()

		ext := hangul.NewExtractor(postpack.DefaultStopwords(), 12)
		tokens := ext.Tokenize("그리고 노트북 하지만 가격")

		assert.Equal(t, []string{"노트북", "가격"}, tokens)
	})
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("orders by frequency then first occurrence", func(t *testing.T) {
		t.Parallel()

		ext := hangul.NewExtractor(postpack.NewStopwordSet(), 12)
		ks := ext.Extract("사과 바나나 포도 바나나 포도 딸기")

		assert.Equal(t, postpack.KeywordSet{
			{Token: "바나나", Frequency: 2},
			{Token: "포도", Frequency: 2},
			{Token: "사과", Frequency: 1},
			{Token: "딸기", Frequency: 1},
		}, ks)
	})

	t.Run("keeps top limit", func(t *testing.T) {
		t.Parallel()

		ext := hangul.NewExtractor(postpack.NewStopwordSet(), 2)
		ks := ext.Extract("하나 둘셋 넷다섯 여섯")

		assert.Equal(t, []string{"하나", "둘셋"}, ks.Tokens())
	})

	t.Run("defaults limit to twelve", func(t *testing.T) {
		t.Parallel()

		words := []string{"가가", "나나", "다다", "라라", "마마", "바바", "사사", "아아", "자자", "차차", "카카", "타타", "파파", "하하"}
		ext := hangul.NewExtractor(postpack.NewStopwordSet(), 0)
		ks := ext.Extract(strings.Join(words, " "))

		assert.Len(t, ks, hangul.DefaultLimit)
	})

	t.Run("returns empty set without hangul", func(t *testing.T) {
		t.Parallel()

		ext := hangul.NewExtractor(postpack.DefaultStopwords(), 12)
		ks := ext.Extract("only english words here")

		assert.Empty(t, ks)
		assert.Empty(t, ks.Hashtags(postpack.SeparatorComma))
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		ext := hangul.NewExtractor(postpack.DefaultStopwords(), 12)
		text := "샘플\n문단1 테스트 문단2 테스트"

		assert.Equal(t, ext.Extract(text), ext.Extract(text))
		assert.Equal(t, "#문단, #테스트, #샘플", ext.Extract(text).Hashtags(postpack.SeparatorComma))
	})
}
