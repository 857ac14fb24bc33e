package storage

import (
	"context"
	"io"
)

type PutInput struct {
	Filename    string
	ContentType string
	// KeyHint pins the stored key (e.g. "slider/slide1.jpg" from the
	// seed fixtures). Empty means a random key is generated.
	KeyHint string
}

type PutResult struct {
	Key string
	URL string
}

// Storage persists media files (slider, category and product images)
// and returns the public URL the templates embed.
type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}
