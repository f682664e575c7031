package services

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajsingh19/wearhouse/pkg/storage"
)

func newTestUploadService(t *testing.T) (*UploadService, storage.Disk) {
	t.Helper()
	disk := storage.NewLocalDisk(t.TempDir(), "http://localhost:8080/storage")
	return NewUploadService(disk), disk
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadStoresImageAndReturnsDescriptor(t *testing.T) {
	svc, disk := newTestUploadService(t)
	data := pngBytes(t, 300, 200)

	img, err := svc.Upload(bytes.NewReader(data), int64(len(data)), "image/png")
	require.NoError(t, err)

	assert.Equal(t, 300, img.Width)
	assert.Equal(t, 200, img.Height)
	assert.Equal(t, "png", img.Format)
	assert.Greater(t, img.Bytes, 0)
	assert.True(t, strings.HasPrefix(img.PublicID, "products/"))
	assert.True(t, strings.HasSuffix(img.PublicID, ".png"))
	assert.Contains(t, img.URL, img.PublicID)
	assert.True(t, disk.Exists(img.PublicID))
}

func TestUploadConstrainsLargeImages(t *testing.T) {
	svc, _ := newTestUploadService(t)
	data := pngBytes(t, 2400, 1200)

	img, err := svc.Upload(bytes.NewReader(data), int64(len(data)), "image/png")
	require.NoError(t, err)
	assert.Equal(t, 1200, img.Width)
	assert.Equal(t, 600, img.Height)
}

func TestUploadRejectsMissingFile(t *testing.T) {
	svc, _ := newTestUploadService(t)

	_, err := svc.Upload(nil, 0, "image/png")
	assert.ErrorIs(t, err, ErrNoFile)
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	svc, _ := newTestUploadService(t)

	_, err := svc.Upload(strings.NewReader("%PDF-1.4"), 8, "application/pdf")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc, _ := newTestUploadService(t)

	_, err := svc.Upload(strings.NewReader("x"), svc.maxBytes+1, "image/png")
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestUploadRejectsCorruptImage(t *testing.T) {
	svc, _ := newTestUploadService(t)

	_, err := svc.Upload(strings.NewReader("not an image"), 12, "image/png")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestDeleteRemovesStoredObject(t *testing.T) {
	svc, disk := newTestUploadService(t)
	data := pngBytes(t, 10, 10)

	img, err := svc.Upload(bytes.NewReader(data), int64(len(data)), "image/png")
	require.NoError(t, err)
	require.True(t, disk.Exists(img.PublicID))

	require.NoError(t, svc.Delete(img.PublicID))
	assert.False(t, disk.Exists(img.PublicID))
}
