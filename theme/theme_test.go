package theme

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mmuldo/colorscheme/cielab"
	"github.com/mmuldo/colorscheme/scheme"
)

func swatch(hex string, share float64) scheme.Swatch {
	rgb, e := cielab.ParseHex(hex)
	if e != nil {
		panic(e)
	}
	return scheme.Swatch{RGB: rgb, LAB: cielab.RGBToLAB(rgb), Share: share}
}

func testSwatches() []scheme.Swatch {
	return []scheme.Swatch{
		swatch("#ffffff", 0.1),
		swatch("#101010", 0.2),
		swatch("#202020", 0.3),
		swatch("#eeeeee", 0.4),
	}
}

func TestDelegate(t *testing.T) {
	p := Delegate(testSwatches())

	got := map[int]string{}
	for k, v := range p {
		got[k] = v.RGB.Hex()
	}
	want := map[int]string{0: "#202020", 1: "#101010", 2: "#eeeeee", 3: "#ffffff"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Delegate mismatch (-want +got):\n%s", d)
	}
}

func TestDelegateLeavesInput(t *testing.T) {
	in := testSwatches()
	Delegate(in)
	if in[0].RGB.Hex() != "#ffffff" {
		t.Error("Delegate reordered its input")
	}
}

func TestCreate(t *testing.T) {
	th, e := Create(Delegate(testSwatches()), map[string]interface{}{"transparency": 0.9})
	if e != nil {
		t.Fatal(e)
	}
	want := Theme{
		"color0":       "#202020",
		"color1":       "#101010",
		"color2":       "#eeeeee",
		"color3":       "#ffffff",
		"background":   "#202020",
		"foreground":   "#eeeeee",
		"transparency": 0.9,
	}
	if d := cmp.Diff(want, th); d != "" {
		t.Errorf("Create mismatch (-want +got):\n%s", d)
	}
}

func TestCreateEmpty(t *testing.T) {
	if _, e := Create(Palette{}, nil); !errors.Is(e, ErrNoColors) {
		t.Errorf("err = %v, want ErrNoColors", e)
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "config.tpl")
	if e := ioutil.WriteFile(tpl, []byte("background = {{ background }}\ncolor1 = {{ color1 }}\n"), 0644); e != nil {
		t.Fatal(e)
	}

	th, e := Create(Delegate(testSwatches()), nil)
	if e != nil {
		t.Fatal(e)
	}
	out := filepath.Join(dir, "out", "config")
	if e := Render(th, tpl, out); e != nil {
		t.Fatal(e)
	}

	b, e := ioutil.ReadFile(out)
	if e != nil {
		t.Fatal(e)
	}
	if d := cmp.Diff("background = #202020\ncolor1 = #101010\n", string(b)); d != "" {
		t.Errorf("rendered mismatch (-want +got):\n%s", d)
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	th, e := Create(Delegate(testSwatches()), nil)
	if e != nil {
		t.Fatal(e)
	}
	if e := Save(th, dir, "grey"); e != nil {
		t.Fatal(e)
	}
	got, e := Load(dir, "grey")
	if e != nil {
		t.Fatal(e)
	}
	if d := cmp.Diff(th, got); d != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", d)
	}
}

func TestSaveLoadRejectsPaths(t *testing.T) {
	dir := t.TempDir()
	th, e := Create(Delegate(testSwatches()), nil)
	if e != nil {
		t.Fatal(e)
	}
	for _, name := range []string{"", ".", "..", "../x", "a/b", `a\b`, "../../escape"} {
		if e := Save(th, dir, name); !errors.Is(e, ErrName) {
			t.Errorf("Save(%q) error = %v, want ErrName", name, e)
		}
		if _, e := Load(dir, name); !errors.Is(e, ErrName) {
			t.Errorf("Load(%q) error = %v, want ErrName", name, e)
		}
	}
	if _, e := os.Stat(filepath.Join(filepath.Dir(dir), "x")); !os.IsNotExist(e) {
		t.Errorf("file written outside themes directory: %v", e)
	}
}
