package postpack

// ImagePrefix is the archive directory holding image entries.
const ImagePrefix = "images/"

// Archive is a packaged post.
type Archive struct {
	// Data is the compressed container.
	Data []byte
	// Entries lists the entry names written, text entry first.
	Entries []string
	// Omitted lists image paths that could not be read.
	Omitted []string
}

// Archiver packages the post text and processed images into one container.
type Archiver interface {
	// Archive writes text under textName and each readable image under
	// ImagePrefix plus its base name. Unreadable images are omitted, not
	// fatal; a failure writing the container is.
	Archive(textName string, text []byte, imagePaths []string) (*Archive, error)
}
