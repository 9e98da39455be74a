// Package scheme extracts a color scheme from an image by clustering
// sampled pixels in CIELAB space under the CIEDE2000 metric.
package scheme

import (
	"errors"
	"image"
	"math/rand"
	"sort"
	"time"

	"github.com/mmuldo/colorscheme/cielab"
	cimage "github.com/mmuldo/colorscheme/image"
	"github.com/mmuldo/colorscheme/kmeans"
)

const (
	DefaultClusters = 8
	DefaultSamples  = 1000
)

var (
	ErrClusters        = errors.New("number of clusters must be positive")
	ErrSamples         = errors.New("number of samples must be positive")
	ErrTooManyClusters = errors.New("more clusters than samples")
	ErrEmptyImage      = errors.New("image has no pixels")
)

// Options controls Generate.
type Options struct {
	Clusters int
	Samples  int

	// Seed seeds the sampler and the clustering. Negative means random.
	Seed int64

	// Quantize, when positive, reduces the image to that many colors
	// before sampling.
	Quantize int

	MaxIterations int
}

// DefaultOptions returns the settings of the command line tool.
func DefaultOptions() Options {
	return Options{
		Clusters: DefaultClusters,
		Samples:  DefaultSamples,
		Seed:     -1,
	}
}

func (o Options) validate() error {
	switch {
	case o.Clusters < 1:
		return ErrClusters
	case o.Samples < 1:
		return ErrSamples
	case o.Clusters > o.Samples:
		return ErrTooManyClusters
	}
	return nil
}

// Swatch is one color of a scheme. Share is the fraction of samples that
// fell into its cluster.
type Swatch struct {
	RGB   cielab.RGB
	LAB   cielab.LAB
	Share float64
}

type byShare []Swatch

func (s byShare) Len() int           { return len(s) }
func (s byShare) Less(i, j int) bool { return s[i].Share > s[j].Share }
func (s byShare) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Distance is cielab.Diff over three-component points.
func Distance(a, b kmeans.Point) float64 {
	return cielab.Diff(cielab.LAB{L: a[0], A: a[1], B: a[2]}, cielab.LAB{L: b[0], A: b[1], B: b[2]})
}

// Generate returns up to opts.Clusters swatches for img, most prevalent
// first.
func Generate(img image.Image, opts Options) ([]Swatch, error) {
	if e := opts.validate(); e != nil {
		return nil, e
	}

	seed := opts.Seed
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if opts.Quantize > 0 {
		img = cimage.Quantize(img, opts.Quantize)
	}

	samples := cimage.Sample(img, opts.Samples, rng)
	if len(samples) == 0 {
		return nil, ErrEmptyImage
	}

	points := make([]kmeans.Point, len(samples))
	for i, c := range samples {
		lab := cielab.RGBToLAB(c)
		points[i] = kmeans.Point{lab.L, lab.A, lab.B}
	}

	res, e := kmeans.Run(points, opts.Clusters, kmeans.Options{
		Distance:      Distance,
		Rand:          rng,
		MaxIterations: opts.MaxIterations,
	})
	if e != nil {
		return nil, e
	}
	Logger().Debug("clustered samples",
		"samples", len(points),
		"clusters", len(res.Clusters),
		"iterations", res.Iterations,
		"converged", res.Converged,
		"seed", seed,
	)

	out := make([]Swatch, 0, len(res.Clusters))
	for _, c := range res.Clusters {
		if len(c.Members) == 0 {
			continue
		}
		lab := cielab.LAB{L: c.Centroid[0], A: c.Centroid[1], B: c.Centroid[2]}
		out = append(out, Swatch{
			RGB:   cielab.LABToRGB(lab),
			LAB:   lab,
			Share: float64(len(c.Members)) / float64(len(points)),
		})
	}
	sort.Stable(byShare(out))

	return out, nil
}
