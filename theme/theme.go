// Package theme turns a color scheme into a terminal theme: numbered
// color roles plus background and foreground, rendered through a
// template.
package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/colorscheme/scheme"
)

var (
	ErrNoColors = errors.New("theme: palette has no colors")
	ErrName     = errors.New("theme: invalid theme name")
)

// Palette maps color roles (color0, color1, ...) to swatches.
type Palette map[int]scheme.Swatch

// Theme is the template context of a desktop theme.
type Theme map[string]interface{}

type byShare []scheme.Swatch

func (s byShare) Len() int           { return len(s) }
func (s byShare) Less(i, j int) bool { return s[i].Share > s[j].Share }
func (s byShare) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

type byDarkness []scheme.Swatch

func (s byDarkness) Len() int           { return len(s) }
func (s byDarkness) Less(i, j int) bool { return s[i].LAB.L < s[j].LAB.L }
func (s byDarkness) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Delegate assigns roles to swatches. The darker half takes the low roles
// and the lighter half the high ones; within each half the more prevalent
// swatch gets the lower role.
func Delegate(swatches []scheme.Swatch) Palette {
	s := append([]scheme.Swatch(nil), swatches...)
	p := make(Palette, len(s))

	sort.Stable(byDarkness(s))
	d := s[:len(s)/2]
	l := s[len(s)/2:]

	sort.Stable(byShare(d))
	sort.Stable(byShare(l))
	for i, c := range d {
		p[i] = c
	}
	for i, c := range l {
		p[len(d)+i] = c
	}

	return p
}

// Lights returns the first role of the lighter half of p.
func (p Palette) Lights() int {
	return len(p) / 2
}

// Create builds a theme from p. Entries in opts override generated keys.
func Create(p Palette, opts map[string]interface{}) (Theme, error) {
	if len(p) == 0 {
		return nil, ErrNoColors
	}

	keys := make([]int, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	t := make(Theme)
	for _, k := range keys {
		t["color"+strconv.Itoa(k)] = p[k].RGB.Hex()
	}
	for k, v := range opts {
		t[k] = v
	}

	setDefaults(t, p.Lights())

	return t, nil
}

func setDefaults(t Theme, light int) {
	if _, ok := t["background"]; !ok {
		t["background"] = t["color0"]
	}

	if _, ok := t["transparency"]; !ok {
		t["transparency"] = 1.0
	}

	if _, ok := t["foreground"]; !ok {
		t["foreground"] = t["color"+strconv.Itoa(light)]
	}
}

// Render executes the pongo2 template at tpl with t as context and writes
// the result to out, creating parent directories as needed.
func Render(t Theme, tpl, out string) error {
	tmpl, e := pongo2.FromFile(tpl)
	if e != nil {
		return fmt.Errorf("theme: parse template %s: %w", tpl, e)
	}

	o, e := tmpl.Execute(pongo2.Context(t))
	if e != nil {
		return fmt.Errorf("theme: execute template %s: %w", tpl, e)
	}

	if e := os.MkdirAll(filepath.Dir(out), 0755); e != nil {
		return e
	}
	return ioutil.WriteFile(out, []byte(o), 0644)
}

// checkName rejects names that would resolve outside the themes directory.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrName, name)
	}
	return nil
}

// Save writes t as JSON to dir/name. The name must not contain a path
// separator.
func Save(t Theme, dir, name string) error {
	if e := checkName(name); e != nil {
		return e
	}
	b, e := json.MarshalIndent(t, "", "  ")
	if e != nil {
		return e
	}
	if e := os.MkdirAll(dir, 0755); e != nil {
		return e
	}
	return ioutil.WriteFile(filepath.Join(dir, name), b, 0644)
}

// Load reads a theme saved by Save.
func Load(dir, name string) (Theme, error) {
	if e := checkName(name); e != nil {
		return nil, e
	}
	b, e := ioutil.ReadFile(filepath.Join(dir, name))
	if e != nil {
		return nil, e
	}

	t := make(Theme)
	if e := json.Unmarshal(b, &t); e != nil {
		return nil, fmt.Errorf("theme: decode %s: %w", name, e)
	}
	return t, nil
}
