package mock

import "github.com/fwojciec/postpack"

var _ postpack.Archiver = (*Archiver)(nil)

// Archiver is a mock implementation of postpack.Archiver.
type Archiver struct {
	ArchiveFn func(textName string, text []byte, imagePaths []string) (*postpack.Archive, error)
}

func (a *Archiver) Archive(textName string, text []byte, imagePaths []string) (*postpack.Archive, error) {
	return a.ArchiveFn(textName, text, imagePaths)
}
