// Package imaging decodes uploaded images, constrains their dimensions,
// and re-encodes them for storage.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxDimension is the longest edge allowed after normalization. Larger
// images are scaled down proportionally.
const MaxDimension = 1200

// ErrUnsupportedFormat is returned when the payload is not a decodable image.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Meta describes the normalized image.
type Meta struct {
	Width  int
	Height int
	Format string
	Bytes  int
}

// Normalize decodes r, scales the image down so neither edge exceeds
// MaxDimension, and re-encodes it. PNG and GIF keep their format; JPEG
// and WebP come out as JPEG. It returns the encoded bytes and their
// metadata.
func Normalize(r io.Reader) ([]byte, Meta, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	img = constrain(img)
	bounds := img.Bounds()

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	default:
		// jpeg and webp both re-encode as jpeg
		format = "jpg"
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return nil, Meta{}, fmt.Errorf("encode image: %w", err)
	}

	meta := Meta{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
		Bytes:  buf.Len(),
	}
	return buf.Bytes(), meta, nil
}

// constrain scales img down proportionally so that both edges fit within
// MaxDimension. Images already within bounds are returned unchanged.
func constrain(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= MaxDimension && h <= MaxDimension {
		return img
	}

	scale := float64(MaxDimension) / float64(w)
	if h > w {
		scale = float64(MaxDimension) / float64(h)
	}
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
