package image

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/mitchellh/go-homedir"
	_ "golang.org/x/image/webp"
)

// Load decodes the image at path. A leading ~ is expanded to the user's
// home directory.
func Load(path string) (image.Image, error) {
	p, e := homedir.Expand(path)
	if e != nil {
		return nil, e
	}

	f, e := os.Open(p)
	if e != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, e)
	}
	defer f.Close()

	i, _, e := image.Decode(f)
	if e != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", path, e)
	}

	return i, nil
}
