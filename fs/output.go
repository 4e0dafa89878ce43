package fs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/postpack"
)

// ArchiveName returns the archive file name for slug, stamped with t to
// the minute: <slug>_<YYYYmmdd_HHMM>.zip.
func ArchiveName(slug string, t time.Time) string {
	return slug + "_" + t.Format("20060102_1504") + ".zip"
}

// WriteFile writes data to path atomically. Data goes to a temporary file
// in the same directory which is renamed over path once complete, so path
// never holds a partial write. Parent directories are created as needed.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return postpack.Errorf(postpack.EARCHIVE, "create %s: %v", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return postpack.Errorf(postpack.EARCHIVE, "create temp file: %v", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return postpack.Errorf(postpack.EARCHIVE, "write %s: %v", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return postpack.Errorf(postpack.EARCHIVE, "write %s: %v", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return postpack.Errorf(postpack.EARCHIVE, "chmod %s: %v", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return postpack.Errorf(postpack.EARCHIVE, "rename %s: %v", path, err)
	}
	return nil
}
