package scheme

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/mmuldo/colorscheme/cielab"
)

// split returns an image whose left w1 columns are c1 and the rest c2.
func split(w1, w2, h int, c1, c2 color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w1+w2, h))
	for x := 0; x < w1+w2; x++ {
		for y := 0; y < h; y++ {
			if x < w1 {
				img.Set(x, y, c1)
			} else {
				img.Set(x, y, c2)
			}
		}
	}
	return img
}

func near(a, b cielab.RGB) bool {
	return math.Abs(a.R-b.R) <= 0.5 && math.Abs(a.G-b.G) <= 0.5 && math.Abs(a.B-b.B) <= 0.5
}

func TestGenerateTwoColors(t *testing.T) {
	img := split(30, 10, 10, color.NRGBA{255, 0, 0, 255}, color.NRGBA{0, 0, 255, 255})
	opts := Options{Clusters: 2, Samples: 400, Seed: 1}

	got, err := Generate(img, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d swatches, want 2", len(got))
	}

	if !near(got[0].RGB, cielab.RGB{R: 255}) || !near(got[1].RGB, cielab.RGB{B: 255}) {
		t.Errorf("swatches = %v, %v; want red then blue", got[0].RGB, got[1].RGB)
	}
	if got[0].Share < got[1].Share {
		t.Errorf("swatches not ordered by share: %v < %v", got[0].Share, got[1].Share)
	}
	if s := got[0].Share + got[1].Share; math.Abs(s-1) > 1e-12 {
		t.Errorf("shares sum to %v, want 1", s)
	}
	if got[0].Share < 0.6 || got[0].Share > 0.9 {
		t.Errorf("red share = %v, want about 0.75", got[0].Share)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	img := split(5, 5, 5, color.NRGBA{10, 200, 30, 255}, color.NRGBA{240, 240, 10, 255})
	opts := Options{Clusters: 3, Samples: 100, Seed: 99}

	a, err := Generate(img, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(img, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("swatch %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	img := split(1, 1, 1, color.Black, color.White)
	tests := []struct {
		opts Options
		want error
	}{
		{Options{Clusters: 0, Samples: 10}, ErrClusters},
		{Options{Clusters: 2, Samples: 0}, ErrSamples},
		{Options{Clusters: 11, Samples: 10}, ErrTooManyClusters},
	}
	for _, tt := range tests {
		if _, err := Generate(img, tt.opts); !errors.Is(err, tt.want) {
			t.Errorf("Generate(%+v) error = %v, want %v", tt.opts, err, tt.want)
		}
	}

	empty := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	if _, err := Generate(empty, DefaultOptions()); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Generate(empty) error = %v, want ErrEmptyImage", err)
	}
}

func TestGenerateLogs(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	img := split(2, 2, 2, color.Black, color.White)
	if _, err := Generate(img, Options{Clusters: 2, Samples: 20, Seed: 3}); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "clustered samples") || !strings.Contains(out, "seed=3") {
		t.Errorf("log output = %q", out)
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() = nil after SetLogger(nil)")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
