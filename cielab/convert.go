// Package cielab converts between sRGB, CIE XYZ and CIE L*a*b* (D65, 2°
// observer) and computes CIEDE2000 color differences.
//
// All functions are pure and safe for concurrent use.
package cielab

import "math"

// RGB is an sRGB color with channels in [0, 255].
type RGB struct {
	R, G, B float64
}

// XYZ is a CIE 1931 tristimulus value scaled so that Y of white is 100.
type XYZ struct {
	X, Y, Z float64
}

// LAB is a CIELAB color. L is nominally in [0, 100].
type LAB struct {
	L, A, B float64
}

// D65 white point, 2° observer.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 16.0 / 116.0
)

// RGBToXYZ converts an sRGB color to XYZ. No clamping is applied.
func RGBToXYZ(c RGB) XYZ {
	r := GammaDecode(c.R / 255)
	g := GammaDecode(c.G / 255)
	b := GammaDecode(c.B / 255)

	return XYZ{
		X: (r*0.4124 + g*0.3576 + b*0.1805) * 100,
		Y: (r*0.2126 + g*0.7152 + b*0.0722) * 100,
		Z: (r*0.0193 + g*0.1192 + b*0.9505) * 100,
	}
}

// XYZToRGB converts XYZ to sRGB. Colors outside the sRGB gamut saturate:
// every channel of the result lies in [0, 255].
func XYZToRGB(c XYZ) RGB {
	x, y, z := c.X/100, c.Y/100, c.Z/100

	r := x*3.2406 + y*-1.5372 + z*-0.4986
	g := x*-0.9689 + y*1.8758 + z*0.0415
	b := x*0.0557 + y*-0.2040 + z*1.0570

	return RGB{
		R: clamp01(GammaEncode(r)) * 255,
		G: clamp01(GammaEncode(g)) * 255,
		B: clamp01(GammaEncode(b)) * 255,
	}
}

// XYZToLAB converts XYZ to L*a*b* relative to the D65 white point.
func XYZToLAB(c XYZ) LAB {
	fx := labF(c.X / whiteX)
	fy := labF(c.Y / whiteY)
	fz := labF(c.Z / whiteZ)

	return LAB{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LABToXYZ is the inverse of XYZToLAB.
func LABToXYZ(c LAB) XYZ {
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200

	return XYZ{
		X: labFInv(fx) * whiteX,
		Y: labFInv(fy) * whiteY,
		Z: labFInv(fz) * whiteZ,
	}
}

// RGBToLAB converts an sRGB color to L*a*b* via XYZ.
func RGBToLAB(c RGB) LAB {
	return XYZToLAB(RGBToXYZ(c))
}

// LABToRGB converts an L*a*b* color to sRGB via XYZ, clamping to the
// sRGB gamut.
func LABToRGB(c LAB) RGB {
	return XYZToRGB(LABToXYZ(c))
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa*t + labOffset
}

func labFInv(f float64) float64 {
	if f3 := f * f * f; f3 > labEpsilon {
		return f3
	}
	return (f - labOffset) / labKappa
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
