package capture

import "errors"

var (
	ErrSessionActive     = errors.New("capture session already active")
	ErrMicAccessDenied   = errors.New("microphone access denied")
	ErrRecordingTooShort = errors.New("recording too short")
	ErrDecodeFailed      = errors.New("cannot decode audio input")
)
