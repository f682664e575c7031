// Package storage provides the image-hosting abstraction behind uploads.
//
// Two drivers are available out of the box:
//   - "local"  — local filesystem (default; objects are served under /storage)
//   - "s3"     — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Quick start:
//
//	// boot once (in internal/server.Start):
//	storage.Connect()
//
//	// default disk
//	storage.Default().Put("products/abc123", data)
//	url := storage.Default().URL("products/abc123")
//
//	// named disk
//	storage.Use("s3").Delete("products/abc123")
package storage

import "io"

// Disk is the object-store driver interface. Objects are addressed by the
// opaque storage identifier (public ID) minted at upload time.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the object at path.
	Get(path string) ([]byte, error)

	// Exists reports whether an object exists at path.
	Exists(path string) bool

	// Size returns the byte size of the object.
	Size(path string) (int64, error)

	// URL returns the public URL for path.
	URL(path string) string

	// Delete removes an object. Returns nil if it did not exist.
	Delete(path string) error

	// Files lists the objects directly under directory.
	Files(directory string) ([]string, error)
}
