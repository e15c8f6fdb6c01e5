package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DiskUploader keeps objects on the local filesystem and serves them
// through a static file route. Used in development and single-node
// deployments.
type DiskUploader struct {
	root    string
	baseURL string
}

func NewDiskUploader(root, baseURL string) (*DiskUploader, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &DiskUploader{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (u *DiskUploader) Put(ctx context.Context, obj *Object) (string, error) {
	path := filepath.Join(u.root, filepath.FromSlash(obj.Key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create object dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create object file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, obj.Body); err != nil {
		return "", fmt.Errorf("write object %s: %w", obj.Key, err)
	}
	return u.baseURL + "/" + obj.Key, nil
}

func (u *DiskUploader) Remove(ctx context.Context, key string) error {
	return os.Remove(filepath.Join(u.root, filepath.FromSlash(key)))
}

// SignedURL returns the plain public URL. Disk-backed objects have no
// expiring link scheme.
func (u *DiskUploader) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return u.baseURL + "/" + key, nil
}

func (u *DiskUploader) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(filepath.Join(u.root, filepath.FromSlash(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
