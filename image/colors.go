package image

import (
	"image"
	"math/rand"

	"github.com/esimov/colorquant"

	"github.com/mmuldo/colorscheme/cielab"
)

// Sample picks n pixels of img uniformly at random, with replacement.
// Alpha is ignored.
func Sample(img image.Image, n int, rng *rand.Rand) []cielab.RGB {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	s := make([]cielab.RGB, n)
	for i := range s {
		k := rng.Intn(w * h)
		s[i] = cielab.FromColor(img.At(b.Min.X+k%w, b.Min.Y+k/w))
	}
	return s
}

// Quantize reduces img to at most n colors without dithering.
func Quantize(img image.Image, n int) image.Image {
	b := img.Bounds()
	o := image.NewNRGBA(b)
	colorquant.NoDither.Quantize(img, o, n, false, true)
	return o
}
