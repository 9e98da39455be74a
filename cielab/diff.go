package cielab

import (
	"fmt"
	"math"
)

// pow25to7 is 25^7.
const pow25to7 = 6103515625.0

// seamTolerance absorbs last-ulp rounding of atan2 when two hues are
// exactly opposite, so such pairs stay on the short-arc side of the seam.
const seamTolerance = 1e-9

// BranchError reports that the hue wrap-around logic of CIEDE2000 reached
// a combination of hue angles that no finite input can produce.
type BranchError struct {
	Op     string
	H1, H2 float64
}

func (e *BranchError) Error() string {
	return fmt.Sprintf("cielab: %s: no hue branch for h1'=%v h2'=%v", e.Op, e.H1, e.H2)
}

// Diff returns the CIEDE2000 color difference between c1 and c2 with
// kL = kC = kH = 1. It panics with a *BranchError if the hue logic
// reaches an unreachable state; use Delta to get the error instead.
func Diff(c1, c2 LAB) float64 {
	d, err := Delta(c1, c2)
	if err != nil {
		panic(err)
	}
	return d
}

// Delta is like Diff but returns the *BranchError instead of panicking.
func Delta(c1, c2 LAB) (float64, error) {
	const kL, kC, kH = 1.0, 1.0, 1.0

	C1 := math.Hypot(c1.A, c1.B)
	C2 := math.Hypot(c2.A, c2.B)

	aC := (C1 + C2) / 2
	aC7 := math.Pow(aC, 7)
	G := 0.5 * (1 - math.Sqrt(aC7/(aC7+pow25to7)))

	a1p := (1 + G) * c1.A
	a2p := (1 + G) * c2.A

	C1p := math.Hypot(a1p, c1.B)
	C2p := math.Hypot(a2p, c2.B)

	h1p := hueAngle(c1.B, a1p)
	h2p := hueAngle(c2.B, a2p)

	dLp := c2.L - c1.L
	dCp := C2p - C1p

	dhp, err := hueDelta(C1, C2, h1p, h2p)
	if err != nil {
		return 0, err
	}
	dHp := 2 * math.Sqrt(C1p*C2p) * math.Sin(radians(dhp)/2)

	aL := (c1.L + c2.L) / 2
	aCp := (C1p + C2p) / 2

	aHp, err := hueMean(C1, C2, h1p, h2p)
	if err != nil {
		return 0, err
	}

	T := 1 -
		0.17*math.Cos(radians(aHp-30)) +
		0.24*math.Cos(radians(2*aHp)) +
		0.32*math.Cos(radians(3*aHp+6)) -
		0.20*math.Cos(radians(4*aHp-63))

	dRo := 30 * math.Exp(-math.Pow((aHp-275)/25, 2))

	aCp7 := math.Pow(aCp, 7)
	RC := math.Sqrt(aCp7 / (aCp7 + pow25to7))

	l50 := (aL - 50) * (aL - 50)
	SL := 1 + 0.015*l50/math.Sqrt(20+l50)
	SC := 1 + 0.045*aCp
	SH := 1 + 0.015*aCp*T

	RT := -2 * RC * math.Sin(radians(2*dRo))

	l := dLp / (SL * kL)
	c := dCp / (SC * kC)
	h := dHp / (SH * kH)

	return math.Sqrt(l*l + c*c + h*h + RT*c*h), nil
}

// hueAngle returns atan2(b, a) in degrees within [0, 360). The hue of
// the achromatic point a = b = 0 is defined as 0.
func hueAngle(b, a float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := degrees(math.Atan2(b, a))
	if h < 0 {
		h += 360
	}
	return h
}

// hueDelta returns h2 - h1 wrapped into [-180, 180]. Hue is undefined
// for zero chroma, in which case the delta is 0.
func hueDelta(C1, C2, h1, h2 float64) (float64, error) {
	d := h2 - h1
	switch {
	case C1 == 0 || C2 == 0:
		return 0, nil
	case shortArc(d):
		return d, nil
	case d > 180:
		return d - 360, nil
	case d < -180:
		return d + 360, nil
	}
	return 0, &BranchError{Op: "hue delta", H1: h1, H2: h2}
}

// hueMean returns the mean of h1 and h2 taken across the shorter arc.
// For zero chroma the plain sum is returned, the other hue being 0.
func hueMean(C1, C2, h1, h2 float64) (float64, error) {
	s := h1 + h2
	switch {
	case C1 == 0 || C2 == 0:
		return s, nil
	case shortArc(h1 - h2):
		return s / 2, nil
	case math.Abs(h1-h2) > 180 && s < 360:
		return (s + 360) / 2, nil
	case math.Abs(h1-h2) > 180 && s >= 360:
		return (s - 360) / 2, nil
	}
	return 0, &BranchError{Op: "hue mean", H1: h1, H2: h2}
}

// shortArc reports whether a hue difference d spans at most 180°.
// Differences within seamTolerance of ±180 count as 180.
func shortArc(d float64) bool {
	a := math.Abs(d)
	return a <= 180 || math.Abs(a-180) <= seamTolerance
}

func degrees(r float64) float64 { return r * (180 / math.Pi) }
func radians(d float64) float64 { return d * (math.Pi / 180) }
