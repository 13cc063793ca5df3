// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// Decoding is built on github.com/hajimehoshi/go-mp3, which outputs 16-bit
// little-endian stereo PCM regardless of the source channel layout.
//
// # Decoding MP3 Files
//
// Use the Decoder to read MP3 files:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The returned audio.Source always reports two channels. Wrap it in
// audio.NewMonoMixer when a mono stream is needed.
//
// # Format Detection
//
// Sniff recognizes both ID3v2-tagged files and raw MPEG streams by their
// frame sync, so headerless MP3 data is detected as well.
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0], converted from the decoder's int16
// output by dividing by 32768.
package mp3
