// SPDX-License-Identifier: EPL-2.0

package voxlab

import (
	"github.com/ik5/voxlab/artifact"
	"github.com/ik5/voxlab/audio"
	"github.com/ik5/voxlab/formats/wav"
)

// Stable colors for the suppression comparison set. Consumers key UI
// accents off these, so they must not change between runs.
const (
	ColorOriginal   = "#8ab4f8"
	ColorForeground = "#81c995"
	ColorBackground = "#f28b82"
)

// Track is a named, colored audio lane: one buffer plus the handle of
// its exported WAV artifact, if any.
type Track struct {
	Name    string
	Color   string
	Visible bool
	// Buffer holds the track's mono samples. May be nil for a lane
	// that has not been filled yet.
	Buffer *audio.SampleBuffer
	// Artifact is the handle of the last Export, or empty.
	Artifact artifact.Handle
}

// NewTrack builds a visible track around buf.
func NewTrack(name, color string, buf *audio.SampleBuffer) *Track {
	return &Track{
		Name:    name,
		Color:   color,
		Visible: true,
		Buffer:  buf,
	}
}

// Export encodes the track's buffer as a mono 16-bit WAV and registers
// it with store under "<name>.wav", revoking any previous artifact so
// stale blobs do not pile up. Returns the new handle.
func (t *Track) Export(store *artifact.Store) artifact.Handle {
	if t.Artifact != "" {
		store.Revoke(t.Artifact)
		t.Artifact = ""
	}

	data := wav.Encode(t.Buffer)
	t.Artifact = store.Create(data, "audio/wav", t.Name+".wav")

	return t.Artifact
}

// ReplaceBuffer swaps in buf wholesale. When store is non-nil the
// track is re-exported so its artifact reflects the new samples.
func (t *Track) ReplaceBuffer(store *artifact.Store, buf *audio.SampleBuffer) {
	t.Buffer = buf
	if store != nil {
		t.Export(store)
	}
}

// SuppressionTracks arranges a take and its foreground/background
// split into the three-lane comparison set. All lanes start visible.
func SuppressionTracks(original, foreground, background *audio.SampleBuffer) []*Track {
	return []*Track{
		NewTrack("original", ColorOriginal, original),
		NewTrack("foreground", ColorForeground, foreground),
		NewTrack("background", ColorBackground, background),
	}
}
