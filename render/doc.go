// SPDX-License-Identifier: EPL-2.0

// Package render draws sample buffers onto an RGBA raster.
//
// A Surface is the raster: sized in CSS pixels times a device pixel
// ratio, cleared on resize, with clipped alpha-over primitives and PNG
// export. A Renderer paints a buffer onto its surface in one of two
// modes:
//
//   - Waveform: a per-column min/max amplitude envelope, split into
//     played and unplayed color at the playback progress point, with a
//     glowing playhead line.
//   - Spectral: each column's sample window partitioned into energy
//     bins mapped through a hue/lightness ramp. This view stays in the
//     time domain; frequency analysis lives in the meter package.
//
// Zoom is clamped to [MinZoom, MaxZoom] and redraws immediately. Live
// level input modulates waveform color intensity and drives particle
// spawning near the playhead; particles come from a fixed pool with a
// free list, reproducible under an injected rand source.
//
// A Loop repaints at a fixed frame rate on a single goroutine:
//
//	renderer := render.NewRenderer(render.NewSurface(800, 200, 2), render.Options{})
//	renderer.SetBuffer(take.Buffer)
//
//	loop := render.NewLoop(30, renderer.Frame)
//	loop.Start()
//	defer loop.Stop()
//
// Start and Stop are idempotent, and Stop joins the goroutine, so a
// stopped loop never paints again.
package render
