// SPDX-License-Identifier: EPL-2.0

// Package capture records microphone audio into takes and decodes
// uploaded clips into the same Recording shape.
//
// # Recording
//
// A Session drives one take at a time through an explicit state
// machine: idle, recording, processing. Audio arrives in chunks from a
// backend stream; chunks accumulate in arrival order and feed a live
// meter.Analyzer so level and metrics can be shown while the take
// runs.
//
//	engine := capture.NewEngine()
//	defer engine.Close()
//
//	session := capture.NewSession(engine, capture.Config{
//		MinDuration: time.Second,
//		MaxDuration: 2 * time.Minute,
//	})
//	if err := session.Start(ctx); err != nil {
//		// handle ErrMicAccessDenied, ErrSessionActive
//	}
//	// ... session.Level(), session.Snapshot() while recording ...
//	rec, err := session.Stop()
//
// Stop assembles the chunks, folds multi-channel input to mono and
// returns a Recording carrying both the raw samples and their
// canonical WAV encoding. Takes shorter than Config.MinDuration are
// discarded with ErrRecordingTooShort. Takes that reach
// Config.MaxDuration end on their own: the device stream is released
// immediately, Done() signals, and the eventual Stop returns the take
// marked Truncated.
//
// The PortAudio runtime behind the default Engine initializes on the
// first start and is shared by every later session; Engine.Close
// terminates it.
//
// # Uploads
//
// LoadFile and LoadReader decode existing clips through the format
// registry: the extension picks a decoder first, and when that fails
// the leading bytes are sniffed. Undecodable input wraps
// ErrDecodeFailed.
package capture
