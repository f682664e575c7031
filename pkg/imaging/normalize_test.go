package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(t *testing.T, w, h int, encode func(b *bytes.Buffer, img image.Image) error) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, encode(&buf, img))
	return buf.Bytes()
}

func encodePNG(b *bytes.Buffer, img image.Image) error  { return png.Encode(b, img) }
func encodeJPEG(b *bytes.Buffer, img image.Image) error { return jpeg.Encode(b, img, nil) }

func TestNormalizeKeepsSmallImages(t *testing.T) {
	data := testImage(t, 640, 480, encodePNG)

	out, meta, err := Normalize(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 640, meta.Width)
	assert.Equal(t, 480, meta.Height)
	assert.Equal(t, "png", meta.Format)
	assert.Equal(t, len(out), meta.Bytes)
}

func TestNormalizeScalesDownWide(t *testing.T) {
	data := testImage(t, 2400, 1200, encodeJPEG)

	_, meta, err := Normalize(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 1200, meta.Width)
	assert.Equal(t, 600, meta.Height)
	assert.Equal(t, "jpg", meta.Format)
}

func TestNormalizeScalesDownTall(t *testing.T) {
	data := testImage(t, 600, 2400, encodePNG)

	_, meta, err := Normalize(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 300, meta.Width)
	assert.Equal(t, 1200, meta.Height)
}

func TestNormalizeJPEGOut(t *testing.T) {
	data := testImage(t, 10, 10, encodeJPEG)

	out, meta, err := Normalize(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpg", meta.Format)

	_, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestNormalizeRejectsGarbage(t *testing.T) {
	_, _, err := Normalize(strings.NewReader("this is not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
