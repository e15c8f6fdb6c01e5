package storage

import (
	"context"
	"io"
	"time"
)

// Object is a blob to persist under a caller-chosen key.
type Object struct {
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// Uploader stores and serves uploaded assets such as route images.
// Put returns the public URL of the stored object.
type Uploader interface {
	Put(ctx context.Context, obj *Object) (string, error)
	Remove(ctx context.Context, key string) error
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
}
