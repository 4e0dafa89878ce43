// Package zip packages a composed post and its images into a ZIP archive.
package zip

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/postpack"
)

// Ensure Archiver implements postpack.Archiver at compile time.
var _ postpack.Archiver = (*Archiver)(nil)

// Archiver writes deflate-compressed archives in memory.
type Archiver struct{}

// NewArchiver creates a new Archiver.
func NewArchiver() *Archiver {
	return &Archiver{}
}

// Archive writes the text entry first, then each readable image under
// images/<basename> in the given order.
func (a *Archiver) Archive(textName string, text []byte, imagePaths []string) (*postpack.Archive, error) {
	if textName == "" {
		return nil, postpack.Errorf(postpack.EINVALID, "text entry name required")
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	archive := &postpack.Archive{}

	if err := writeEntry(zw, textName, bytes.NewReader(text)); err != nil {
		return nil, postpack.Errorf(postpack.EARCHIVE, "write %s: %v", textName, err)
	}
	archive.Entries = append(archive.Entries, textName)

	for _, p := range imagePaths {
		name := postpack.ImagePrefix + filepath.Base(p)
		// Read before creating the entry; a zip entry cannot be rolled back.
		data, err := os.ReadFile(p)
		if err != nil {
			archive.Omitted = append(archive.Omitted, p)
			continue
		}
		if err := writeEntry(zw, name, bytes.NewReader(data)); err != nil {
			return nil, postpack.Errorf(postpack.EARCHIVE, "write %s: %v", name, err)
		}
		archive.Entries = append(archive.Entries, name)
	}

	if err := zw.Close(); err != nil {
		return nil, postpack.Errorf(postpack.EARCHIVE, "close archive: %v", err)
	}
	archive.Data = buf.Bytes()
	return archive, nil
}

func writeEntry(zw *zip.Writer, name string, r io.Reader) error {
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, r)
	return err
}
