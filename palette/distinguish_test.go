package palette

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mmuldo/colorscheme/cielab"
)

var (
	black = cielab.RGBToLAB(cielab.RGB{R: 0, G: 0, B: 0})
	white = cielab.RGBToLAB(cielab.RGB{R: 255, G: 255, B: 255})
	red   = cielab.RGBToLAB(cielab.RGB{R: 255, G: 0, B: 0})
	pink  = cielab.RGBToLAB(cielab.RGB{R: 255, G: 105, B: 180})
)

func TestNearest(t *testing.T) {
	target := cielab.RGBToLAB(cielab.RGB{R: 230, G: 20, B: 20})
	i, d, err := Nearest(target, []cielab.LAB{black, white, red, pink})
	if err != nil {
		t.Fatal(err)
	}
	if i != 2 {
		t.Errorf("Nearest = %d, want 2 (red)", i)
	}
	if want := cielab.Diff(target, red); d != want {
		t.Errorf("distance = %v, want %v", d, want)
	}
}

func TestNearestEmpty(t *testing.T) {
	if _, _, err := Nearest(red, nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("err = %v, want ErrEmpty", err)
	}
}

func TestNearestTie(t *testing.T) {
	i, d, err := Nearest(red, []cielab.LAB{red, red})
	if err != nil || i != 0 || d != 0 {
		t.Errorf("Nearest = %d, %v, %v; want 0, 0, nil", i, d, err)
	}
}

func TestRank(t *testing.T) {
	got := Rank(black, []cielab.LAB{white, black, red})
	var order []int
	for _, m := range got {
		order = append(order, m.Index)
	}
	if d := cmp.Diff([]int{1, 2, 0}, order); d != "" {
		t.Errorf("rank order mismatch (-want +got):\n%s", d)
	}
	if got[0].DeltaE != 0 {
		t.Errorf("self distance = %v, want 0", got[0].DeltaE)
	}
}

func TestCompare(t *testing.T) {
	if Compare(black, white, red) <= 0 {
		t.Error("white should be more distinct from black than red is")
	}
	if Compare(black, red, white) >= 0 {
		t.Error("red should be less distinct from black than white is")
	}
	if Compare(black, red, red) != 0 {
		t.Error("equal colors should compare equal")
	}
}
