// Package kmeans implements k-means clustering with a pluggable distance
// function.
package kmeans

import (
	"errors"
	"math"
	"math/rand"
	"time"
)

var (
	ErrNoPoints     = errors.New("kmeans: no points")
	ErrInvalidK     = errors.New("kmeans: number of clusters must be positive")
	ErrTooFewPoints = errors.New("kmeans: more clusters than points")
	ErrDimension    = errors.New("kmeans: points differ in dimension")
)

// DefaultMaxIterations bounds the assignment loop when Options leaves
// MaxIterations unset.
const DefaultMaxIterations = 100

// Point is a vector in n-dimensional space.
type Point []float64

// DistanceFunc measures the dissimilarity of two points.
type DistanceFunc func(a, b Point) float64

// Euclidean is the straight-line distance between a and b.
func Euclidean(a, b Point) float64 {
	var d2 float64
	for i := range a {
		d := a[i] - b[i]
		d2 += d * d
	}
	return math.Sqrt(d2)
}

// Cluster is a centroid and the indices of the points assigned to it.
// Radius is the largest distance from the centroid to a member.
type Cluster struct {
	Centroid Point
	Members  []int
	Radius   float64
}

type Options struct {
	Distance      DistanceFunc // Euclidean if nil
	Rand          *rand.Rand   // time-seeded if nil
	MaxIterations int          // DefaultMaxIterations if <= 0
}

type Result struct {
	Clusters   []Cluster
	Iterations int
	Converged  bool
}

// Run partitions points into at most k clusters.
//
// Initial centroids are chosen by farthest-point seeding: the first one is
// random and each following one is the unchosen point with the largest
// summed distance to the centroids chosen so far. When the points hold
// fewer than k distinct positions the result has fewer clusters.
func Run(points []Point, k int, opts Options) (Result, error) {
	if len(points) == 0 {
		return Result{}, ErrNoPoints
	}
	if k < 1 {
		return Result{}, ErrInvalidK
	}
	if k > len(points) {
		return Result{}, ErrTooFewPoints
	}
	dim := len(points[0])
	for _, p := range points {
		if len(p) != dim {
			return Result{}, ErrDimension
		}
	}

	dist := opts.Distance
	if dist == nil {
		dist = Euclidean
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	lo, hi := bounds(points, dim)
	clusters := seed(points, k, dist, rng)

	assign := make([]int, len(points))
	for i := range assign {
		assign[i] = -1
	}

	res := Result{}
	for res.Iterations < maxIter {
		res.Iterations++

		changed := false
		for i := range clusters {
			clusters[i].Members = clusters[i].Members[:0]
			clusters[i].Radius = 0
		}
		for j, p := range points {
			best, bestD := -1, math.Inf(1)
			for i := range clusters {
				if d := dist(clusters[i].Centroid, p); d < bestD {
					best, bestD = i, d
				}
			}
			if best == -1 {
				continue
			}
			c := &clusters[best]
			c.Members = append(c.Members, j)
			if bestD > c.Radius {
				c.Radius = bestD
			}
			if assign[j] != best {
				assign[j] = best
				changed = true
			}
		}

		if !changed {
			res.Converged = true
			break
		}

		for i := range clusters {
			c := &clusters[i]
			for d := 0; d < dim; d++ {
				if len(c.Members) == 0 {
					c.Centroid[d] = lo[d] + rng.Float64()*(hi[d]-lo[d])
					continue
				}
				var sum float64
				for _, j := range c.Members {
					sum += points[j][d]
				}
				c.Centroid[d] = sum / float64(len(c.Members))
			}
		}
	}

	res.Clusters = clusters
	return res, nil
}

func seed(points []Point, k int, dist DistanceFunc, rng *rand.Rand) []Cluster {
	chosen := make(map[int]bool, k)
	last := rng.Intn(len(points))
	chosen[last] = true
	order := []int{last}

	acc := make([]float64, len(points))
	for i := 1; i < k; i++ {
		maxD, maxJ := 0.0, -1
		for j, p := range points {
			acc[j] += dist(points[last], p)
			if acc[j] > maxD && !chosen[j] {
				maxD, maxJ = acc[j], j
			}
		}
		if maxJ == -1 {
			break
		}
		last = maxJ
		chosen[last] = true
		order = append(order, last)
	}

	clusters := make([]Cluster, len(order))
	for i, j := range order {
		clusters[i].Centroid = append(Point(nil), points[j]...)
	}
	return clusters
}

func bounds(points []Point, dim int) (lo, hi Point) {
	lo, hi = make(Point, dim), make(Point, dim)
	for d := 0; d < dim; d++ {
		lo[d], hi[d] = math.Inf(1), math.Inf(-1)
		for _, p := range points {
			lo[d] = math.Min(lo[d], p[d])
			hi[d] = math.Max(hi[d], p[d])
		}
	}
	return lo, hi
}
