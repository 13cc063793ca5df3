package playback

import "errors"

var (
	// ErrNoBuffer means a Player was asked to wrap a nil take.
	ErrNoBuffer = errors.New("no sample buffer to play")
	// ErrBadSampleRate means the take carries a non-positive rate.
	ErrBadSampleRate = errors.New("sample rate must be positive")
)
