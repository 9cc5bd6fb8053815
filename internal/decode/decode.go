// Package decode is the CLI's boundary collaborator: it turns a path on
// disk into the already-decoded raster.Image the comparison core
// consumes. Decoding and file I/O are explicitly out of the core's scope
// (spec.md §1, §6) — this package is where that boundary lives.
package decode

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/AnyUserName/imgphash/internal/raster"
)

// LoadImage opens, decodes, EXIF-auto-orients, and converts the raster at
// path into a raster.Image. Decode failures are wrapped with the
// offending path for context; I/O failures propagate from os.Open.
func LoadImage(path string) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	// imaging.Decode delegates to image.Decode (so every blank-imported
	// format above is available) and additionally rotates/flips JPEGs
	// whose EXIF orientation tag says they aren't stored upright.
	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return FromImage(img)
}

// FromImage converts a decoded image.Image to a raster.Image, taking a
// fast path over the concrete types the standard decoders and
// golang.org/x/image produce, and falling back to the generic At/RGBA
// path for anything else.
func FromImage(img image.Image) (*raster.Image, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: zero-sized image", raster.ErrInvalidInput)
	}

	switch src := img.(type) {
	case *image.NRGBA:
		return fromNRGBA(src, bounds, w, h)
	case *image.RGBA:
		return fromRGBAImg(src, bounds, w, h)
	case *image.Gray:
		return fromGray(src, bounds, w, h)
	case *image.YCbCr:
		return fromGeneric(src, bounds, w, h) // chroma subsampling makes a byte fast path not worth the complexity here
	default:
		return fromGeneric(img, bounds, w, h)
	}
}

func fromNRGBA(src *image.NRGBA, bounds image.Rectangle, w, h int) (*raster.Image, error) {
	buf := make([]byte, w*h*4)
	stride := src.Stride
	bY := bounds.Min.Y - src.Rect.Min.Y
	bX4 := (bounds.Min.X - src.Rect.Min.X) * 4
	di := 0
	for y := 0; y < h; y++ {
		off := (bY+y)*stride + bX4
		copy(buf[di:di+w*4], src.Pix[off:off+w*4])
		di += w * 4
	}
	return raster.FromBytes(buf, w, 4)
}

func fromRGBAImg(src *image.RGBA, bounds image.Rectangle, w, h int) (*raster.Image, error) {
	// RGBA is alpha-premultiplied; un-premultiply so channel means (grayscale,
	// box-average) operate on true color values, same as a PNG's NRGBA data.
	buf := make([]byte, w*h*4)
	stride := src.Stride
	bY := bounds.Min.Y - src.Rect.Min.Y
	bX4 := (bounds.Min.X - src.Rect.Min.X) * 4
	di := 0
	for y := 0; y < h; y++ {
		off := (bY+y)*stride + bX4
		for x := 0; x < w; x++ {
			r, g, b, a := src.Pix[off], src.Pix[off+1], src.Pix[off+2], src.Pix[off+3]
			if a > 0 {
				buf[di] = byte(uint16(r) * 255 / uint16(a))
				buf[di+1] = byte(uint16(g) * 255 / uint16(a))
				buf[di+2] = byte(uint16(b) * 255 / uint16(a))
			}
			buf[di+3] = a
			off += 4
			di += 4
		}
	}
	return raster.FromBytes(buf, w, 4)
}

func fromGray(src *image.Gray, bounds image.Rectangle, w, h int) (*raster.Image, error) {
	buf := make([]byte, w*h)
	stride := src.Stride
	bY := bounds.Min.Y - src.Rect.Min.Y
	bX := bounds.Min.X - src.Rect.Min.X
	di := 0
	for y := 0; y < h; y++ {
		off := (bY+y)*stride + bX
		copy(buf[di:di+w], src.Pix[off:off+w])
		di += w
	}
	return raster.FromBytes(buf, w, 1)
}

func fromGeneric(img image.Image, bounds image.Rectangle, w, h int) (*raster.Image, error) {
	buf := make([]byte, w*h*3)
	di := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			buf[di] = byte(r >> 8)
			buf[di+1] = byte(g >> 8)
			buf[di+2] = byte(b >> 8)
			di += 3
		}
	}
	return raster.FromBytes(buf, w, 3)
}
