package usecase

import (
	"context"
	"io"
)

// ObjectStorage is satisfied by *s3.Client.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, body io.ReadSeeker, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// ViewCache is satisfied by *cache.JSONCache.
type ViewCache interface {
	Get(ctx context.Context, key string, dst interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context) error
}

type noCache struct{}

func (noCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (noCache) Set(context.Context, string, interface{}) error         { return nil }
func (noCache) Invalidate(context.Context) error                       { return nil }

func cacheOrNoop(c ViewCache) ViewCache {
	if c == nil {
		return noCache{}
	}
	return c
}
