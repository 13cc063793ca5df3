// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC (Free Lossless Audio Codec) decoding.
//
// This package uses github.com/mewkiz/flac to decode FLAC streams.
// FLAC is the most common lossless compressed audio format.
//
// # Supported Formats
//
// Currently supported:
//   - Native FLAC streams (fLaC marker)
//   - PCM at 8, 16, 24 and 32 bits per sample
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding FLAC Files
//
// Use the Decoder to read FLAC files:
//
//	decoder := flac.Decoder{}
//	file, _ := os.Open("audio.flac")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// FLAC frames carry one subframe per channel. The decoder interleaves
// them and normalizes by the stream bit depth, so output is standard
// interleaved float32 like every other format package.
//
// # Format Detection
//
// Decoder implements the optional Sniff method used by audio.Registry:
// the four byte fLaC marker identifies the stream.
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotFlacFile: The input is not a valid FLAC stream
//   - ErrUnsupportedFlacDepth: Bit depth outside 8/16/24/32
//   - ErrUnsupportedFlacLayout: Channel layout the decoder cannot serve
//
// # Limitations
//
// Note:
//   - FLAC writing is not supported (decoding only)
//   - Ogg-encapsulated FLAC is not supported, only native streams
package flac
