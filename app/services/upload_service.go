package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rajsingh19/wearhouse/config"
	"github.com/rajsingh19/wearhouse/pkg/imaging"
	"github.com/rajsingh19/wearhouse/pkg/metrics"
	"github.com/rajsingh19/wearhouse/pkg/storage"
)

var (
	ErrNoFile          = errors.New("no file provided")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file too large")
)

// allowedTypes is the upload media-type allow-list.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// UploadedImage is what the upload endpoint returns to the client. The
// descriptor is meant to be embedded verbatim in a later product
// create/update call.
type UploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	Bytes    int    `json:"bytes"`
}

// UploadService normalises uploaded images and hands them to the storage
// disk. Uploads are synchronous; a failure is surfaced to the caller
// immediately, there is no retry.
type UploadService struct {
	disk     storage.Disk
	maxBytes int64
}

func NewUploadService(disk storage.Disk) *UploadService {
	return &UploadService{
		disk:     disk,
		maxBytes: config.UploadMaxBytes(),
	}
}

// Upload validates, normalises, and stores a single image. contentType is
// the declared media type, size the declared byte size. The stored object
// is addressed by a freshly minted public ID.
func (s *UploadService) Upload(r io.Reader, size int64, contentType string) (UploadedImage, error) {
	if r == nil || size == 0 {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return UploadedImage{}, ErrNoFile
	}
	if !allowedTypes[contentType] {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return UploadedImage{}, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	if size > s.maxBytes {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return UploadedImage{}, fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, size, s.maxBytes)
	}

	data, meta, err := imaging.Normalize(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return UploadedImage{}, fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}

	publicID := mintPublicID(meta.Format)
	if err := s.disk.Put(publicID, data); err != nil {
		metrics.UploadsTotal.WithLabelValues("failed").Inc()
		return UploadedImage{}, fmt.Errorf("store image: %w", err)
	}

	metrics.UploadsTotal.WithLabelValues("accepted").Inc()
	metrics.UploadBytes.Observe(float64(meta.Bytes))

	return UploadedImage{
		URL:      s.disk.URL(publicID),
		PublicID: publicID,
		Width:    meta.Width,
		Height:   meta.Height,
		Format:   meta.Format,
		Bytes:    meta.Bytes,
	}, nil
}

// Delete removes a stored image by its public ID. No check is made for
// products still referencing the URL.
func (s *UploadService) Delete(publicID string) error {
	return s.disk.Delete(publicID)
}

// mintPublicID builds a unique storage identifier like
// "products/1756712345678-9f86d081.jpg".
func mintPublicID(format string) string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// Without entropy the nanosecond timestamp is still unique
		// enough for a single-node store.
		return fmt.Sprintf("products/%d.%s", time.Now().UnixNano(), format)
	}
	return fmt.Sprintf("products/%d-%s.%s", time.Now().UnixMilli(), hex.EncodeToString(buf), format)
}
