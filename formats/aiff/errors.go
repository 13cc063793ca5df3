package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedAiffDepth indicates a bit depth outside 8, 16, 24 or 32
	ErrUnsupportedAiffDepth = errors.New("unsupported AIFF bit depth")

	// ErrUnsupportedAiffLayout indicates an unsupported AIFF layout
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	// ErrUnsupportedAiffChunks indicates malformed chunk structure
	ErrUnsupportedAiffChunks = errors.New("unsupported or malformed AIFF chunks")
)
