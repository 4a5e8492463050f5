// Package preview rasterizes the CPU cloud field over the sky color into an
// image, a top-down view of what the cloud shader draws.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"github.com/Faultbox/skyoptics/internal/atmosphere"
)

// Options sizes the preview.
type Options struct {
	Size   int     // width and height in pixels
	Extent float64 // half-width of the sampled world square
}

// DefaultOptions covers the whole default scene at 256x256.
func DefaultOptions() Options {
	return Options{Size: 256, Extent: atmosphere.DefaultSceneSize}
}

// Clouds renders cloud coverage for the given time and density over the
// matching sky color.
func Clouds(field *atmosphere.CloudField, time, density float64, opts Options) *image.NRGBA {
	if opts.Size <= 0 {
		opts = DefaultOptions()
	}
	sky := atmosphere.SkyColor(time)
	img := image.NewNRGBA(image.Rect(0, 0, opts.Size, opts.Size))

	step := 2 * opts.Extent / float64(opts.Size)
	for py := 0; py < opts.Size; py++ {
		z := -opts.Extent + (float64(py)+0.5)*step
		for px := 0; px < opts.Size; px++ {
			x := -opts.Extent + (float64(px)+0.5)*step
			alpha := field.Coverage(x, z, time, density)
			c := sky.BlendRgb(field.Color(x, z, time, density), alpha).Clamped()
			r, g, b := c.RGB255()
			img.SetNRGBA(px, py, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// Upscale enlarges img by an integer factor with bilinear filtering.
func Upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// Encode writes img as PNG or BMP, chosen by the file extension of name.
func Encode(w io.Writer, name string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".png", "":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported preview format %q", ext)
	}
}
