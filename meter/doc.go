// SPDX-License-Identifier: EPL-2.0

// Package meter derives live audio metrics from a streaming window.
//
// An Analyzer keeps the most recent samples of a stream in a fixed
// power-of-two ring buffer. Capture or playback code feeds it with
// Write as chunks arrive; a UI or render loop asks for Metrics once
// per frame:
//
//	analyzer := meter.NewAnalyzer(2048)
//
//	// on the audio goroutine
//	analyzer.Write(chunk)
//
//	// on the render goroutine
//	m := analyzer.Metrics(48000)
//	fmt.Printf("level=%.2f peak=%.2f freq=%.0fHz\n",
//	    m.Level, m.Peak, m.Frequency)
//
// # Metrics
//
// Each snapshot reports:
//   - Level: mean absolute amplitude of the window, [0, 1]
//   - Peak: maximum absolute amplitude of the window, [0, 1]
//   - Frequency: dominant frequency in Hz, from a Hann-windowed
//     radix-2 FFT restricted to the lower quarter of the positive
//     spectrum (the voice band)
//   - Clarity: peak to level ratio; spiky signals score high, steady
//     tones score near 1
//
// A silent window (level below an epsilon) reports zero frequency and
// clarity.
//
// # Concurrency
//
// Write and Metrics may be called from different goroutines. Snapshots
// copy the window under a short lock and run the FFT outside it, so
// metering never stalls the audio path.
//
// The package starts no goroutines and does no logging; it is pure
// computation.
package meter
