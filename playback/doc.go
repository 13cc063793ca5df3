// SPDX-License-Identifier: EPL-2.0

// Package playback plays mono takes through a beep speaker pipeline
// and binds the transport to a render.Renderer.
//
// Player wraps an audio.SampleBuffer in a beep StreamSeeker under a
// beep.Ctrl and drives it through an Output; the production Output is
// the beep speaker, tests pull a stub by hand. The pipeline is queued
// once and held in the sink, so Pause, Stop and Seek are state flips
// under the output lock rather than requeues.
//
// Controller layers input on top: pointer scrubs (a drag keeps seeking
// after the pointer leaves the surface), left/right transport keys with
// a fine modifier, hover timestamp previews, and transport methods that
// start and stop the render loop so the playhead follows playback.
//
//	player, err := playback.NewPlayer(nil, take)
//	if err != nil {
//		return err
//	}
//	ctl := playback.NewController(player, renderer, 30)
//	defer ctl.Close()
//
//	ctl.Play()
package playback
