// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Canonical 16-bit PCM files are streamed directly out of the data chunk.
// Other encodings (8/24/32-bit integer and float) are decoded through
// github.com/go-audio/wav and served from memory.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0]. Chunks other than fmt and data (LIST,
// fact, bext and friends) are skipped, including odd-sized ones.
//
// # Writing WAV Files
//
// Encode renders a whole take in one call:
//
//	blob := wav.Encode(buffer) // mono 16-bit PCM bytes
//
// WriteWAV16 is the lower-level entry point for int16 PCM:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, samples)
//
// # Error Handling
//
// The package defines several error values:
//   - ErrNotWavFile: the input is not a RIFF/WAVE container
//   - ErrUnsupportedWavLayout: the fmt chunk is malformed
//   - ErrUnsupportedWavChunks: fmt or data chunk is missing
//
// # Sample Conversion
//
// Encoding uses the asymmetric scale from the utils package: positive
// samples map onto 0..32767, negative samples onto -32768..0. Decoding
// divides by 32768.
package wav
