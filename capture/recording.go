// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"time"

	"github.com/ik5/voxlab/audio"
)

// Recording is a finished take: the mono samples, their canonical WAV
// encoding, and how the take ended.
type Recording struct {
	// Buffer holds the mono float32 samples.
	Buffer *audio.SampleBuffer
	// WAV is the canonical 16-bit RIFF encoding of Buffer.
	WAV []byte
	// Duration of the take.
	Duration time.Duration
	// Truncated reports that the take hit Config.MaxDuration.
	Truncated bool
}
