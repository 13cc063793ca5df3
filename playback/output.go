// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Output is the audio sink a Player drives. The production
// implementation is the beep speaker; tests substitute a stub that
// pulls the pipeline by hand.
//
// Lock and Unlock guard the pipeline: the sink pulls Stream
// concurrently, so every mutation of a queued streamer happens between
// them.
type Output interface {
	// Init prepares the sink for the given sample rate. It is called
	// once per Player, before anything is queued.
	Init(sampleRate int) error
	// Play queues s; the sink pulls it until Clear.
	Play(s beep.Streamer)
	Lock()
	Unlock()
	// Clear drops everything queued.
	Clear()
	// Close shuts the sink down.
	Close() error
}

// speakerOutput adapts the package-global beep speaker to Output.
type speakerOutput struct{}

// NewSpeakerOutput returns the beep speaker as an Output.
func NewSpeakerOutput() Output { return speakerOutput{} }

func (speakerOutput) Init(sampleRate int) error {
	sr := beep.SampleRate(sampleRate)
	return speaker.Init(sr, sr.N(time.Second/20))
}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }
func (speakerOutput) Clear()               { speaker.Clear() }

func (speakerOutput) Close() error {
	speaker.Close()
	return nil
}
