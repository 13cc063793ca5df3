// SPDX-License-Identifier: EPL-2.0

// Package voxlab is a voice-recording laboratory for Go applications:
// it captures microphone takes, meters and renders them, plays them
// back, and hands them to a remote voice service for suppression,
// transcription, and synthesis experiments.
//
// # Supported Formats
//
// Audio files are decoded through a shared registry. The following
// formats register themselves on import:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//   - FLAC via formats/flac
//
// # Quick Start
//
// The simplest way to load a file for the lab is ResampleToMono16:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("take.wav")
//	src, _ := decoder.Decode(file)
//
//	// Resample to 16kHz mono, 16-bit PCM
//	samples, rate, _ := voxlab.ResampleToMono16(src, 16000, 4096)
//
// # Recording
//
// Live takes come from the capture package. A session owns the device
// stream, meters incoming audio, and assembles the finished take:
//
//	engine := capture.NewEngine()
//	session := capture.NewSession(engine, capture.Config{SampleRate: 48000})
//	_ = session.Start(ctx)
//	// ... watch session.Level() ...
//	rec, _ := session.Stop()
//
// ExportRecording registers the take's WAV bytes with an artifact
// store under its canonical name, and SuppressionTracks arranges the
// original take next to the foreground/background split returned by
// the remote service.
//
// # Rendering and Playback
//
// The render package draws waveform and spectral views of a buffer
// onto a raster surface; playback drives the same buffer through the
// speaker with scrubbing and keyboard seeks:
//
//	renderer := render.NewRenderer(surface, render.Options{})
//	renderer.SetBuffer(rec.Buffer)
//
//	player, _ := playback.NewPlayer(nil, rec.Buffer)
//	ctl := playback.NewController(player, renderer, 30)
//	ctl.Play()
//
// # Remote Voice Operations
//
// The remote package wraps the voice service's JSON envelope protocol
// with one typed method per operation (SuppressBackground, Transcribe,
// Synthesize, EnrollVoice, VerifyVoice, ConvertPhonemes,
// GenerateSentence).
//
// See the individual subpackages for more detailed documentation.
package voxlab
