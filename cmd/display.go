package cmd

import (
	"fmt"
	"io"

	"github.com/mmuldo/colorscheme/scheme"
)

// display prints one line per swatch. With colorful set the line is drawn
// on the swatch color, in black on light swatches and white otherwise.
func display(w io.Writer, swatches []scheme.Swatch, colorful bool) {
	for _, s := range swatches {
		c := s.RGB.Color()
		if !colorful {
			fmt.Fprintf(w, "#%02x%02x%02x | %5.2f%%\n", c.R, c.G, c.B, s.Share*100)
			continue
		}

		var k uint8 = 255
		if c.R > 127 && c.G > 127 && c.B > 127 {
			k = 0
		}
		fmt.Fprintf(w, "\033[1m\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm  #%02x%02x%02x | %5.2f%%  \033[0m\n",
			k, k, k, c.R, c.G, c.B, c.R, c.G, c.B, s.Share*100)
	}
}
