// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// CollectMono drains src into a SampleBuffer, folding multi-channel
// input down to mono on the way. The source is read to io.EOF but not
// closed; the caller owns the source's lifetime.
//
// The pipeline is the usual one:
//  1. Wrap src in a MonoMixer when it carries more than one channel
//  2. Read in BufSize slices until the stream ends
//  3. Accumulate into a single backing slice
func CollectMono(src Source) (*SampleBuffer, error) {
	var mono Source = src
	if src.Channels() > 1 {
		mono = NewMonoMixer(src)
	}

	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}

	samples := make([]float32, 0, bufSize)
	buf := make([]float32, bufSize)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("collecting samples: %w", err)
		}
	}

	return &SampleBuffer{Data: samples, Rate: mono.SampleRate()}, nil
}
