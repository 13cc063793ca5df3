// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidDstSize signals a read buffer whose length is not a
	// multiple of the stream's channel count.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnknownFormat signals that no registered decoder recognized
	// the input, neither by key nor by sniffing its leading bytes.
	ErrUnknownFormat = errors.New("unknown audio format")
)
