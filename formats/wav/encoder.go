// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"io"

	"github.com/ik5/voxlab/audio"
	"github.com/ik5/voxlab/utils"
)

// Encode renders buf as a complete mono 16-bit PCM WAV file in memory.
// Samples are clamped to [-1, 1] before conversion. A nil or empty buffer
// yields a header-only file.
func Encode(buf *audio.SampleBuffer) []byte {
	var n int
	if buf != nil {
		n = buf.Len()
	}

	out := bytes.NewBuffer(make([]byte, 0, 44+n*2))
	_ = EncodeTo(out, buf) // bytes.Buffer writes cannot fail
	return out.Bytes()
}

// EncodeTo writes buf to w as a mono 16-bit PCM WAV file.
func EncodeTo(w io.Writer, buf *audio.SampleBuffer) error {
	if buf == nil {
		return WriteWAV16(w, 0, nil)
	}

	pcm := make([]int16, buf.Len())
	for i, s := range buf.Data {
		pcm[i] = utils.Float32ToInt16(s)
	}

	return WriteWAV16(w, buf.Rate, pcm)
}
