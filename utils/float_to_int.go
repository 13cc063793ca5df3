// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized float sample to signed 16-bit PCM.
// The scale is asymmetric: non-negative samples scale by the positive
// full-scale 0x7FFF, negative samples by 0x8000, so both -1.0 and +1.0
// land exactly on the int16 range limits. The product truncates toward
// zero. Every encoder in this module converts through this one function.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(x * 0x8000)
	}

	return int16(x * 0x7FFF)
}

// Int16ToFloat32 normalizes a 16-bit PCM sample to [-1, 1) by the negative
// full-scale. Decoders use this direction.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
