package flac

import "errors"

var (
	// ErrNotFlacFile indicates the input is not a valid FLAC stream
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrUnsupportedFlacDepth indicates a bit depth outside 8, 16, 24 or 32
	ErrUnsupportedFlacDepth = errors.New("unsupported FLAC bit depth")

	// ErrUnsupportedFlacLayout indicates an unsupported FLAC stream layout
	ErrUnsupportedFlacLayout = errors.New("unsupported FLAC layout")
)
