package cielab

import "math"

// GammaDecode applies the sRGB electro-optical transfer function to a
// channel in [0, 1], returning linear light.
func GammaDecode(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

// GammaEncode is the inverse of GammaDecode. The result is not clamped.
func GammaEncode(v float64) float64 {
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return v * 12.92
}
