package icongen

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// encodeImg encodes the rendered icon to a destination of type io.Writer.
// The encoder is selected based on the destination file extension, falling
// back to PNG for non-file writers.
func encodeImg(w io.Writer, img image.Image) error {
	switch w := w.(type) {
	case *os.File:
		ext := filepath.Ext(w.Name())
		switch ext {
		case "", ".png":
			return png.Encode(w, img)
		case ".bmp":
			return bmp.Encode(w, img)
		default:
			return errors.Errorf("%v file type not supported", ext)
		}
	default:
		return png.Encode(w, img)
	}
}
