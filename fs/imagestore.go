// Package fs provides file-based storage for processed images and run
// artifacts.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/postpack"
)

// Ensure ImageStore implements postpack.ImageStore at compile time.
var _ postpack.ImageStore = (*ImageStore)(nil)

// ImageStore saves images into a temporary directory owned by one run.
// Files are named image_01.jpg, image_02.jpg, ... in save order.
type ImageStore struct {
	mu    sync.Mutex
	dir   string
	paths []string
}

// NewImageStore creates a fresh directory under parentDir. An empty
// parentDir uses the system temp directory.
func NewImageStore(parentDir string) (*ImageStore, error) {
	if parentDir != "" {
		if err := os.MkdirAll(parentDir, 0755); err != nil {
			return nil, postpack.Errorf(postpack.EINTERNAL, "create %s: %v", parentDir, err)
		}
	}
	dir, err := os.MkdirTemp(parentDir, "postpack_")
	if err != nil {
		return nil, postpack.Errorf(postpack.EINTERNAL, "create image directory: %v", err)
	}
	return &ImageStore{dir: dir}, nil
}

// Save writes data under the next sequential name and returns its path.
func (s *ImageStore) Save(data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := fmt.Sprintf("image_%02d.jpg", len(s.paths)+1)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", postpack.Errorf(postpack.EIMAGE, "save %s: %v", name, err)
	}
	s.paths = append(s.paths, path)
	return path, nil
}

// Dir returns the directory holding the saved images.
func (s *ImageStore) Dir() string {
	return s.dir
}

// Paths returns the saved image paths in save order.
func (s *ImageStore) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.paths...)
}

// Remove deletes the directory and everything saved in it.
func (s *ImageStore) Remove() error {
	return os.RemoveAll(s.dir)
}
