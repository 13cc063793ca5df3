// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Supported Formats
//
// Currently supported:
//   - AIFF and AIFC containers
//   - PCM at 8, 16, 24 and 32 bits per sample
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding AIFF Files
//
// Use the Decoder to read AIFF files:
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aif")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values normalized to the range [-1.0, 1.0] by the source bit depth.
// AIFF 8-bit samples are signed, so no recentering is needed.
//
// # Format Detection
//
// Decoder implements the optional Sniff method used by audio.Registry:
// a FORM header followed by an AIFF or AIFC type at byte 8 identifies
// the container.
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedAiffDepth: Bit depth outside 8/16/24/32
//   - ErrUnsupportedAiffLayout: Unsupported AIFF file structure
//   - ErrUnsupportedAiffChunks: Malformed chunk structure
//
// Example:
//
//	source, err := decoder.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    fmt.Println("Not an AIFF file")
//	}
//
// # AIFF vs. WAV
//
// AIFF is similar to WAV but:
//   - Uses big-endian byte order (WAV uses little-endian)
//   - Originated on Apple platforms (WAV on Windows)
//   - Stores sample rate as 80-bit float (WAV uses 32-bit int)
//   - Both are uncompressed PCM formats
//
// The decoder handles all format differences automatically.
//
// # Limitations
//
// Note:
//   - AIFF writing is not supported (decoding only)
//   - Compressed AIFC encodings are not supported
//
// # Example: AIFF to WAV Conversion
//
//	// Read AIFF file
//	aiffFile, _ := os.Open("input.aif")
//	aiffDecoder := aiff.Decoder{}
//	source, _ := aiffDecoder.Decode(aiffFile)
//
//	// Collect as 16kHz mono
//	buf, _ := audio.CollectMono(source, 16000)
//
//	// Write as WAV
//	wavFile, _ := os.Create("output.wav")
//	wav.EncodeTo(wavFile, buf)
//
// # File Extensions
//
// AIFF files typically use:
//   - .aif or .aiff for standard AIFF
//   - .aifc for AIFF-C
package aiff
