package cielab

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrHex is returned by ParseHex for malformed input.
var ErrHex = errors.New("cielab: invalid hex color")

// FromColor returns the non-premultiplied 8-bit channels of c.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{float64(n.R), float64(n.G), float64(n.B)}
}

// Color rounds c to the nearest opaque 8-bit color.
func (c RGB) Color() color.NRGBA {
	return color.NRGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: 0xff}
}

// Hex formats c as #rrggbb.
func (c RGB) Hex() string {
	n := c.Color()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// ParseHex parses #rgb or #rrggbb; the leading hash is optional.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrHex, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrHex, s)
	}
	return RGB{float64(v >> 16 & 0xff), float64(v >> 8 & 0xff), float64(v & 0xff)}, nil
}

func channel8(v float64) uint8 {
	return uint8(math.Round(math.Min(math.Max(v, 0), 255)))
}
