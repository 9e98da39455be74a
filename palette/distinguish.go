// Package palette matches colors against a palette by perceptual
// distance.
package palette

import (
	"errors"
	"sort"

	"github.com/mmuldo/colorscheme/cielab"
)

var ErrEmpty = errors.New("palette: no candidates")

// Match is a palette entry and its CIEDE2000 distance from a target.
type Match struct {
	Index  int
	Color  cielab.LAB
	DeltaE float64
}

// Nearest returns the index of the candidate closest to target and its
// distance. Ties go to the earlier candidate.
func Nearest(target cielab.LAB, candidates []cielab.LAB) (int, float64, error) {
	if len(candidates) == 0 {
		return -1, 0, ErrEmpty
	}

	best, bestD := 0, cielab.Diff(target, candidates[0])
	for i, c := range candidates[1:] {
		if d := cielab.Diff(target, c); d < bestD {
			best, bestD = i+1, d
		}
	}
	return best, bestD, nil
}

// Rank returns every candidate ordered by ascending distance from target.
func Rank(target cielab.LAB, candidates []cielab.LAB) []Match {
	ms := make([]Match, len(candidates))
	for i, c := range candidates {
		ms[i] = Match{i, c, cielab.Diff(target, c)}
	}
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].DeltaE < ms[j].DeltaE })
	return ms
}

// Compare reports which of c0 and c1 is more distinct from base. The
// result is positive if c0 is further away, negative if c1 is, and zero
// if both are equally far.
func Compare(base, c0, c1 cielab.LAB) float64 {
	return cielab.Diff(c0, base) - cielab.Diff(c1, base)
}
