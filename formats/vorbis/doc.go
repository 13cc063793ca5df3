// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// Decoding is built on github.com/jfreymuth/oggvorbis, which already
// produces float32 samples, so no integer conversion is involved.
//
// # Decoding Ogg Vorbis Files
//
// Use the Decoder to read Ogg Vorbis files:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The source reports the channel count stored in the stream; mono and
// stereo are the common cases but any layout the codec allows comes
// through unchanged, interleaved per frame.
//
// # Format Detection
//
// Sniff matches the "OggS" page capture pattern at the start of the data.
package vorbis
