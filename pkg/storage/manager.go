package storage

import (
	"fmt"
	"sync"

	"github.com/rajsingh19/wearhouse/config"
	"github.com/rajsingh19/wearhouse/pkg/logger"
)

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// Connect boots the storage manager.
// Call once at application startup (internal/server.Start).
func Connect() {
	managerMu.Lock()
	defer managerMu.Unlock()

	defaultDisk = config.StorageDefault()

	// Always boot local disk.
	disks["local"] = newLocalDisk()

	// Boot S3 disk only if a bucket is configured.
	if config.StorageS3Bucket() != "" {
		d, err := newS3Disk()
		if err != nil {
			logger.Warn("storage/s3 disabled", "error", err.Error())
		} else {
			disks["s3"] = d
		}
	}
}

// Use returns the named disk ("local" or "s3").
func Use(name string) Disk {
	managerMu.RLock()
	d, ok := disks[name]
	managerMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("storage: disk %q is not configured", name))
	}
	return d
}

// Default returns the disk selected by STORAGE_DISK.
func Default() Disk { return Use(defaultDisk) }

// RegisterDisk plugs in a custom Disk implementation. Used at boot time and
// by tests that substitute a temp-dir disk.
func RegisterDisk(name string, d Disk) {
	managerMu.Lock()
	disks[name] = d
	managerMu.Unlock()
}

// LocalRoot returns the directory backing the local disk so the kernel can
// serve it statically under /storage.
func LocalRoot() string {
	managerMu.RLock()
	d, ok := disks["local"]
	managerMu.RUnlock()
	if !ok {
		return ""
	}
	if ld, ok := d.(*localDisk); ok {
		return ld.Root()
	}
	return ""
}
