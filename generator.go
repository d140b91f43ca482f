package icongen

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/esimov/icongen/utils"
	"github.com/pkg/errors"
)

// The supported output formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// DefaultSizes holds the icon edge lengths generated when none are provided.
var DefaultSizes = []int{16, 48, 128}

// Generator writes one icon file per requested size into the output directory.
type Generator struct {
	*Renderer

	// Sizes holds the icon edge lengths to generate.
	Sizes []int
	// OutDir is the directory the icon files are written into.
	// It gets created when missing.
	OutDir string
	// Format selects the output encoding, png or bmp.
	Format string
	// Resample renders only the largest size and derives the smaller
	// icons through Lanczos downsampling instead of rendering each
	// size independently.
	Resample bool
	// Log receives one status line per generated file.
	Log io.Writer
}

// NewGenerator initializes a new Generator with the default sizes,
// colors and output format, writing the icons into outDir.
func NewGenerator(outDir string) *Generator {
	return &Generator{
		Renderer: NewRenderer(),
		Sizes:    DefaultSizes,
		OutDir:   outDir,
		Format:   FormatPNG,
		Log:      os.Stdout,
	}
}

// Generate renders every configured size in ascending order and persists
// the results as icon<size>.<format> files inside the output directory.
// The first failure aborts the batch; files already written stay on disk.
func (g *Generator) Generate() error {
	if len(g.Sizes) == 0 {
		return errors.New("no icon sizes provided")
	}
	for _, size := range g.Sizes {
		if size <= 0 {
			return errors.Errorf("invalid icon size: %d", size)
		}
	}
	if !utils.Contains([]string{FormatPNG, FormatBMP}, g.Format) {
		return errors.Errorf("%s file type not supported", g.Format)
	}

	sizes := make([]int, len(g.Sizes))
	copy(sizes, g.Sizes)
	sort.Ints(sizes)

	if err := os.MkdirAll(g.OutDir, 0755); err != nil {
		return errors.Wrap(err, "unable to create the output directory")
	}

	for i, icon := range g.render(sizes) {
		fname := fmt.Sprintf("icon%d.%s", sizes[i], g.Format)
		if err := g.save(filepath.Join(g.OutDir, fname), icon); err != nil {
			return errors.Wrapf(err, "unable to save %s", fname)
		}
		fmt.Fprintf(g.log(), "Created %s\n", fname)
	}
	fmt.Fprintln(g.log(), "All icons created successfully!")

	return nil
}

// render produces the canvases, either independently per size or by
// downsampling the largest one when resample mode is active.
func (g *Generator) render(sizes []int) []*image.NRGBA {
	icons := make([]*image.NRGBA, len(sizes))

	if g.Resample {
		max := sizes[len(sizes)-1]
		src := g.Render(max)
		for i, size := range sizes {
			if size == max {
				icons[i] = src
				continue
			}
			icons[i] = imaging.Resize(src, size, size, imaging.Lanczos)
		}
		return icons
	}

	for i, size := range sizes {
		icons[i] = g.Render(size)
	}
	return icons
}

// save encodes the icon into the destination file.
func (g *Generator) save(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeImg(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (g *Generator) log() io.Writer {
	if g.Log != nil {
		return g.Log
	}
	return io.Discard
}
