package postpack_test

import (
	"testing"

	"github.com/fwojciec/postpack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := postpack.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8, cfg.MaxImages)
	assert.Equal(t, 1280, cfg.TargetWidth)
	assert.Equal(t, 3, cfg.ParagraphInterval)
	assert.Equal(t, postpack.SeparatorComma, cfg.HashtagSeparator)
	assert.Equal(t, 24, cfg.CandidateLimit())
	assert.True(t, cfg.Stopwords.Contains("그리고"))
	assert.False(t, cfg.Stopwords.Contains("노트북"))
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*postpack.Config)
	}{
		{name: "negative max images", modify: func(c *postpack.Config) { c.MaxImages = -1 }},
		{name: "unsupported width", modify: func(c *postpack.Config) { c.TargetWidth = 1000 }},
		{name: "zero interval", modify: func(c *postpack.Config) { c.ParagraphInterval = 0 }},
		{name: "unknown separator", modify: func(c *postpack.Config) { c.HashtagSeparator = "tab" }},
		{name: "zero keyword limit", modify: func(c *postpack.Config) { c.KeywordLimit = 0 }},
		{name: "empty text extension", modify: func(c *postpack.Config) { c.TextExt = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := postpack.DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, postpack.EINVALID, postpack.ErrorCode(err))
		})
	}
}

func TestConfig_CandidateLimit(t *testing.T) {
	t.Parallel()

	cfg := postpack.DefaultConfig()
	cfg.MaxImages = 0
	assert.Equal(t, 0, cfg.CandidateLimit())

	cfg.MaxImages = 2
	cfg.CandidateFactor = 0
	assert.Equal(t, 2, cfg.CandidateLimit())
}

func TestHashtagSeparator_Join(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ", ", postpack.SeparatorComma.Join())
	assert.Equal(t, " ", postpack.SeparatorSpace.Join())
}
