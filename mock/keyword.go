package mock

import "github.com/fwojciec/postpack"

var _ postpack.KeywordExtractor = (*KeywordExtractor)(nil)

// KeywordExtractor is a mock implementation of postpack.KeywordExtractor.
type KeywordExtractor struct {
	ExtractFn func(text string) postpack.KeywordSet
}

func (k *KeywordExtractor) Extract(text string) postpack.KeywordSet {
	return k.ExtractFn(text)
}
